package utils

import (
	"errors"
	"fmt"
)

// ErrSearchDidNotConverge is returned when a parameter search exhausts its
// iteration budget without landing on the target.
var ErrSearchDidNotConverge = errors.New("parameter search did not converge")

// DampedSearch adjusts a scalar parameter until probe reports a match.
// probe returns >0 when the parameter must grow, <0 when it must shrink,
// and 0 on a hit.
// Each adjustment moves the parameter by the current increment and then
// shrinks the increment by the damping factor, whichever direction was
// taken. This is a heuristic, not a bisection: the increment sign never
// flips, only its magnitude decays, so an unreachable target would cycle
// forever without the iteration cap.
type DampedSearch struct {
	Start     float64
	Increment float64
	Damping   float64
	MaxIter   int
}

func (ds DampedSearch) Run(probe func(param float64) int) (param float64, iterations int, err error) {
	var (
		increment = ds.Increment
		damping   = ds.Damping
	)
	if damping == 0 {
		damping = 0.9
	}
	param = ds.Start
	for iterations = 0; iterations < ds.MaxIter; iterations++ {
		switch c := probe(param); {
		case c > 0:
			param += increment
			increment *= damping
		case c < 0:
			param -= increment
			increment *= damping
		default:
			return
		}
	}
	err = fmt.Errorf("%w after %d iterations, last parameter %g",
		ErrSearchDidNotConverge, ds.MaxIter, param)
	return
}
