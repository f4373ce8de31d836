package boundarylayer

import (
	"errors"
	"fmt"

	"github.com/mscotty/cfdmesh/utils"
)

const (
	// DefaultGrowthFactor seeds the grow-to-thickness accumulation
	DefaultGrowthFactor = 1.2
	// DefaultSearchGrowthFactor and DefaultSearchIncrement seed the
	// grow-to-layer-count search
	DefaultSearchGrowthFactor = 1.3
	DefaultSearchIncrement    = 0.1
	// DefaultMaxSearchIter bounds the outer search loop; reachable targets
	// in practice converge within a few dozen iterations
	DefaultMaxSearchIter = 200

	// maxSequenceLen bounds a single accumulation pass. The search can
	// drive the trial growth factor to 1 or below, where the series sum
	// converges and the accumulation loop would never exit; truncating
	// reads as "too many layers" and pushes the search back up.
	maxSequenceLen = 1 << 14
)

// ErrGrowthSearchDidNotConverge is returned when the damped growth factor
// search exhausts its iteration cap, which happens when no growth factor
// produces exactly the requested layer count.
var ErrGrowthSearchDidNotConverge = errors.New("growth factor search did not converge")

// Growth is the outcome of growing one first layer thickness to a target:
// the outermost layer thickness plus the whole sequence.
type Growth struct {
	FinalIncrement float64
	Layers         LayerSequence
}

// GrowthResult extends Growth with the converged growth factor from the
// layer count search.
type GrowthResult struct {
	Growth
	GrowthFactor float64
	LayerCount   int
}

// accumulate builds [0, deltaS, deltaS·g, ...], appending while the running
// total is at or below the target thickness.
func accumulate(deltaS, targetDelta, growthFactor float64, maxLen int) (seq LayerSequence) {
	var (
		total = deltaS
	)
	seq = LayerSequence{0, deltaS}
	for total <= targetDelta && len(seq) < maxLen {
		next := seq[len(seq)-1] * growthFactor
		seq = append(seq, next)
		total += next
	}
	return
}

// GrowToThickness grows a geometric layer sequence from each first layer
// thickness until the cumulative thickness exceeds targetDelta. Elements
// are independent and processed in parallel. A first layer already thicker
// than the target yields just [0, deltaS].
func GrowToThickness(deltaS []float64, targetDelta, growthFactor float64) (growths []Growth, err error) {
	if err = checkPositive("target delta", targetDelta); err != nil {
		return
	}
	if growthFactor <= 1 {
		err = fmt.Errorf("%w: growth factor = %g, must exceed 1", ErrInvalidPhysicalInput, growthFactor)
		return
	}
	for i, ds := range deltaS {
		if err = checkPositive(fmt.Sprintf("delta_s[%d]", i), ds); err != nil {
			return
		}
	}
	growths = make([]Growth, len(deltaS))
	utils.RangeParallel(len(deltaS), func(k int) {
		seq := accumulate(deltaS[k], targetDelta, growthFactor, maxSequenceLen)
		growths[k] = Growth{FinalIncrement: seq.FinalIncrement(), Layers: seq}
	})
	return
}

// GrowToLayerCount searches for the growth factor that makes the layer
// sequence of each first layer thickness come out at exactly totalLayers
// entries, zero sentinel and first layer included. Only totalLayers-2 cells
// are actually grown; this off by two counting is a historical convention
// baked into the downstream mesh configs and is kept verbatim. The search
// state is fresh per element, so elements are independent and run in
// parallel.
func GrowToLayerCount(deltaS []float64, targetDelta float64, totalLayers int,
	growthFactor, increment float64) ([]GrowthResult, error) {
	return growToLayerCount(deltaS, targetDelta, totalLayers, growthFactor, increment, DefaultMaxSearchIter)
}

func growToLayerCount(deltaS []float64, targetDelta float64, totalLayers int,
	growthFactor, increment float64, maxIter int) (results []GrowthResult, err error) {
	if err = checkPositive("target delta", targetDelta); err != nil {
		return
	}
	if err = checkPositive("growth factor", growthFactor); err != nil {
		return
	}
	if err = checkPositive("increment", increment); err != nil {
		return
	}
	if totalLayers <= 2 {
		err = fmt.Errorf("%w: total layers = %d, must exceed 2 (zero sentinel and first layer included)",
			ErrInvalidPhysicalInput, totalLayers)
		return
	}
	for i, ds := range deltaS {
		if err = checkPositive(fmt.Sprintf("delta_s[%d]", i), ds); err != nil {
			return
		}
	}
	var (
		errs = make([]error, len(deltaS))
	)
	results = make([]GrowthResult, len(deltaS))
	utils.RangeParallel(len(deltaS), func(k int) {
		var (
			seq    LayerSequence
			search = utils.DampedSearch{
				Start:     growthFactor,
				Increment: increment,
				Damping:   0.9,
				MaxIter:   maxIter,
			}
		)
		g, _, searchErr := search.Run(func(trial float64) int {
			seq = accumulate(deltaS[k], targetDelta, trial, maxSequenceLen)
			return len(seq) - totalLayers
		})
		if searchErr != nil {
			errs[k] = fmt.Errorf("%w: element %d: %v", ErrGrowthSearchDidNotConverge, k, searchErr)
			return
		}
		results[k] = GrowthResult{
			Growth:       Growth{FinalIncrement: seq.FinalIncrement(), Layers: seq},
			GrowthFactor: g,
			LayerCount:   len(seq),
		}
	})
	for _, e := range errs {
		if e != nil {
			return nil, e
		}
	}
	return
}
