package engine

// EngineConfig holds the knobs a host can set before creating an Engine.
// Generalized from me4hit-goviet-ime's EngineConfig/DefaultConfig pattern;
// the fields themselves are new (the teacher's ToneRule/EnableDoubleKeyRevert
// /EnableWAsVowel flags encoded its own, now-replaced, tone heuristic).
type EngineConfig struct {
	// Method selects Telex or VNI.
	Method Method

	// EnableValidation flips a word into foreign (literal-only) mode as soon
	// as its syllable shape stops being legal Vietnamese.
	EnableValidation bool

	// FreeTonePlacement allows a tone to be applied even when the resulting
	// syllable shape would fail validation. When false, a tone that would
	// produce an invalid cluster is refused: the key is appended as a
	// literal and the word drops into foreign mode instead.
	FreeTonePlacement bool
}

// Option configures an EngineConfig. Mirrors the functional-option
// constructor me4hit-goviet-ime uses for its own engine configuration.
type Option func(*EngineConfig)

// WithMethod sets the input method.
func WithMethod(m Method) Option {
	return func(c *EngineConfig) { c.Method = m }
}

// WithValidation toggles syllable validation.
func WithValidation(enabled bool) Option {
	return func(c *EngineConfig) { c.EnableValidation = enabled }
}

// WithFreeTonePlacement toggles whether a tone may be applied to a syllable
// cluster the validator would otherwise reject.
func WithFreeTonePlacement(enabled bool) Option {
	return func(c *EngineConfig) { c.FreeTonePlacement = enabled }
}

// DefaultConfig returns Telex with validation on and free tone placement
// off: a tone is refused, not forced, on a cluster the validator rejects.
func DefaultConfig(opts ...Option) EngineConfig {
	c := EngineConfig{
		Method:            MethodTelex,
		EnableValidation:  true,
		FreeTonePlacement: false,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
