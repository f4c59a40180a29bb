package taskgen

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

var (
	// ErrUnknownKind is returned for a kind with no registered generator.
	ErrUnknownKind = errors.New("unknown task kind")

	// ErrUnknownTier is returned for a tier outside easy, medium and hard.
	ErrUnknownTier = errors.New("unknown tier")
)

// Generator produces exercises.
type Generator interface {
	// Generate produces a single task of the given kind and tier.
	// The task has passed every configured validator.
	Generate(kind Kind, tier Tier) (*Task, error)
}

// generateFunc builds one task. Implementations must not fail for a
// known tier.
type generateFunc func(r Rand, tier Tier) *Task

// registry maps each kind to its generator. New kinds register here.
var registry = map[Kind]generateFunc{
	KindNumeralSystem:  generateNumeralSystem,
	KindDataUnits:      generateDataUnits,
	KindAddition:       generateAddition,
	KindMultiplication: generateMultiplication,
	KindSquare:         generateSquare,
	KindPython:         generatePython,
}

// RandomGenerator draws tasks from the registered generators.
type RandomGenerator struct {
	rnd    Rand
	config Config
}

var _ Generator = (*RandomGenerator)(nil)

// New creates a RandomGenerator. A nil r uses the process-wide source.
func New(r Rand, cfg Config) *RandomGenerator {
	if r == nil {
		r = globalRand{}
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	return &RandomGenerator{rnd: r, config: cfg}
}

// Generate produces a task, regenerating up to MaxAttempts times when a
// validator rejects the candidate.
func (g *RandomGenerator) Generate(kind Kind, tier Tier) (*Task, error) {
	gen, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if !validTier(tier) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTier, tier)
	}

	var lastErr error
	for attempt := 0; attempt < g.config.MaxAttempts; attempt++ {
		t := gen(g.rnd, tier)
		if err := runValidators(g.config.Validators, t); err != nil {
			lastErr = err
			continue
		}
		return t, nil
	}
	return nil, fmt.Errorf("generate %s/%s: %w", kind, tier, lastErr)
}

func runValidators(validators []Validator, t *Task) error {
	for _, v := range validators {
		if verr := v.Validate(t); verr != nil {
			return verr
		}
	}
	return nil
}

func validTier(t Tier) bool {
	switch t {
	case TierEasy, TierMedium, TierHard:
		return true
	}
	return false
}

// globalRand forwards to the math/rand/v2 top-level functions.
type globalRand struct{}

func (globalRand) IntN(n int) int   { return rand.IntN(n) }
func (globalRand) Float64() float64 { return rand.Float64() }

// intIn returns a uniform integer in [lo, hi].
func intIn(r Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}

// pick returns a uniform element of items.
func pick[T any](r Rand, items []T) T {
	return items[r.IntN(len(items))]
}

// dilute applies the difficulty smoothing used by the arithmetic kinds:
// medium falls back to easy 30% of the time, hard falls back to easy and
// medium 25% of the time each.
func dilute(r Rand, tier Tier) Tier {
	switch tier {
	case TierMedium:
		if r.Float64() < 0.3 {
			return TierEasy
		}
	case TierHard:
		x := r.Float64()
		switch {
		case x < 0.25:
			return TierEasy
		case x < 0.5:
			return TierMedium
		}
	}
	return tier
}
