package atmosphere

import (
	"fmt"
	"math"
)

// International Standard Atmosphere constants for dry air, SI units
const (
	GasConstant         = 287.05  // J/(kg·K)
	Gravity             = 9.80665 // m/s²
	Gamma               = 1.4
	SeaLevelPressure    = 101325. // Pa
	SeaLevelTemperature = 288.15  // K
	SeaLevelDensity     = 1.225   // kg/m³
	SutherlandConstant  = 110.4   // K
	LapseRate           = -0.0065 // K/m, troposphere
	TropopauseAltitude  = 11000.  // m
)

// Atmosphere holds the standard-atmosphere properties at a fixed altitude.
// All fields are computed once at construction.
type Atmosphere struct {
	Altitude           float64 // m
	Temperature        float64 // K
	Pressure           float64 // Pa
	Density            float64 // kg/m³
	SpeedOfSound       float64 // m/s
	DynamicViscosity   float64 // Pa·s
	KinematicViscosity float64 // m²/s
	Cp, Cv             float64 // J/(kg·K)
}

func New(altitudeM float64) (atm Atmosphere) {
	atm = Atmosphere{Altitude: altitudeM}
	atm.Temperature = temperature(altitudeM)
	atm.Pressure = pressure(altitudeM)
	atm.Density = atm.Pressure / (GasConstant * atm.Temperature)
	atm.SpeedOfSound = math.Sqrt(Gamma * GasConstant * atm.Temperature)
	atm.DynamicViscosity = sutherland(atm.Temperature)
	atm.KinematicViscosity = atm.DynamicViscosity / atm.Density
	atm.Cp = Gamma * GasConstant / (Gamma - 1)
	atm.Cv = GasConstant / (Gamma - 1)
	return
}

// Lookup is the pure-function face consumed by the boundary layer
// calculator: altitude in, density and dynamic viscosity out.
func Lookup(altitudeM float64) (rho, mu float64) {
	var (
		atm = New(altitudeM)
	)
	return atm.Density, atm.DynamicViscosity
}

// Linear lapse through the troposphere, isothermal above 11 km
func temperature(altitudeM float64) (T float64) {
	if altitudeM > TropopauseAltitude {
		altitudeM = TropopauseAltitude
	}
	T = SeaLevelTemperature + LapseRate*altitudeM
	return
}

func pressure(altitudeM float64) (p float64) {
	var (
		exponent = -Gravity / (GasConstant * LapseRate)
	)
	if altitudeM <= TropopauseAltitude {
		p = SeaLevelPressure * math.Pow(1+LapseRate*altitudeM/SeaLevelTemperature, exponent)
	} else {
		// Exponential decay above the tropopause at the constant tropopause temperature
		pTropo := SeaLevelPressure * math.Pow(1+LapseRate*TropopauseAltitude/SeaLevelTemperature, exponent)
		p = pTropo * math.Exp(-Gravity*(altitudeM-TropopauseAltitude)/(GasConstant*temperature(altitudeM)))
	}
	return
}

// Sutherland's formula for dynamic viscosity of air
func sutherland(T float64) float64 {
	return 1.458e-6 * math.Pow(T, 1.5) / (T + SutherlandConstant)
}

func (a Atmosphere) String() string {
	return fmt.Sprintf("Altitude: %g m\n"+
		"Temperature: %.2f K\n"+
		"Pressure: %.2f Pa\n"+
		"Density: %.4f kg/m³\n"+
		"Speed of Sound: %.2f m/s\n"+
		"Dynamic Viscosity: %.6e Pa·s\n"+
		"Kinematic Viscosity: %.6e m²/s\n"+
		"Cp: %.2f J/(kg·K)\n"+
		"Cv: %.2f J/(kg·K)",
		a.Altitude, a.Temperature, a.Pressure, a.Density, a.SpeedOfSound,
		a.DynamicViscosity, a.KinematicViscosity, a.Cp, a.Cv)
}
