package taskgen

// Config controls the behavior of the RandomGenerator.
type Config struct {
	// Validators run in order on every generated task. The first failure
	// discards the candidate.
	Validators []Validator

	// MaxAttempts bounds regeneration after a validator failure.
	MaxAttempts int
}

// DefaultConfig returns a Config with the standard validator chain.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&RecomputeValidator{},
		},
		MaxAttempts: 3,
	}
}
