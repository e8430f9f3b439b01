// Package dice rolls dice on top of a purerand generator.
//
// Each die draws from its own derived generator, labeled by its position in
// the request, so a roll's outcome depends only on the caller's seed path
// and the die's position — never on how many dice were rolled before it or
// on unrelated rolls elsewhere in the program.
package dice

import (
	"github.com/louisbranch/purerand"
	apperrors "github.com/louisbranch/purerand/internal/errors"
)

var (
	// ErrMissingDice indicates a roll request without any dice specs.
	ErrMissingDice = apperrors.New(apperrors.CodeDiceMissing, "at least one dice spec is required")
	// ErrInvalidSpec indicates a dice spec with non-positive sides or count.
	ErrInvalidSpec = apperrors.New(apperrors.CodeDiceInvalidSpec, "dice spec requires positive sides and count")
)

// Spec describes a homogeneous group of dice, e.g. {Sides: 6, Count: 2} for 2d6.
type Spec struct {
	Sides int
	Count int
}

// Roll holds the results for one Spec, in rolled order.
type Roll struct {
	Sides   int
	Results []int
	Total   int
}

// Result aggregates every die rolled for a request.
type Result struct {
	Rolls []Roll
	Total int
}

// RollDice rolls the given specs against the generator.
//
// Specs are processed in slice order and Result.Rolls mirrors that order.
// Each die derives the child generator (spec index, die index) from gen, so
// the outcome for any die is reproducible in isolation. The generator itself
// is only derived from, never consumed: rolling the same specs against the
// same generator yields the same result, which is the point — callers that
// want a different roll derive a fresh branch (e.g. by turn number) first.
//
//	g := root.Derive("attack", turn)
//	result, err := dice.RollDice(g, dice.Spec{Sides: 6, Count: 2})
func RollDice(gen *purerand.Generator, specs ...Spec) (Result, error) {
	if len(specs) == 0 {
		return Result{}, ErrMissingDice
	}

	rolls := make([]Roll, 0, len(specs))
	total := 0

	for i, spec := range specs {
		if spec.Sides <= 0 || spec.Count <= 0 {
			return Result{}, ErrInvalidSpec
		}

		results := make([]int, spec.Count)
		rollTotal := 0
		for j := 0; j < spec.Count; j++ {
			value := gen.Derive(i, j).IntN(spec.Sides) + 1
			results[j] = value
			rollTotal += value
		}

		rolls = append(rolls, Roll{
			Sides:   spec.Sides,
			Results: results,
			Total:   rollTotal,
		})
		total += rollTotal
	}

	return Result{
		Rolls: rolls,
		Total: total,
	}, nil
}
