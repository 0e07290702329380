package commit

import "fmt"

// Config holds the shape parameters of one commitment run: the blow-up
// factor applied by the low-degree extension, the height of the Merkle
// cap, and the number of extra salt rows mixed into the leaves (§3, §4.D,
// §4.E). It follows gnark's functional-options convention rather than an
// exported struct literal, so new knobs can be added without breaking
// callers.
type Config struct {
	BlowupBits int
	CapHeight  int
	SaltCount  int
	MaxCPUs    int
}

// Option configures a Config.
type Option func(*Config)

// WithBlowupBits sets the log2 blow-up factor (r in §4.D: the extended
// domain has size N*2^r). Default 3 (8x blow-up), the common FRI setting.
func WithBlowupBits(r int) Option {
	return func(c *Config) { c.BlowupBits = r }
}

// WithCapHeight sets the Merkle cap height h (§4.E/§4.F): the cap holds
// 2^h digests, each the root of an independent capLen = M/2^h subtree.
func WithCapHeight(h int) Option {
	return func(c *Config) { c.CapHeight = h }
}

// WithSaltCount sets the number of extra random rows folded into every leaf
// before hashing (§9 supplemented feature: zero-knowledge blinding).
func WithSaltCount(s int) Option {
	return func(c *Config) { c.SaltCount = s }
}

// WithMaxCPUs caps the number of goroutines internal/utils.Parallelize uses
// for row-parallel work. Zero (the default) lets it use runtime.NumCPU().
func WithMaxCPUs(n int) Option {
	return func(c *Config) { c.MaxCPUs = n }
}

// NewConfig builds a Config from the given options, defaulting to
// BlowupBits=3, CapHeight=4, SaltCount=0.
func NewConfig(opts ...Option) Config {
	c := Config{
		BlowupBits: 3,
		CapHeight:  4,
		SaltCount:  0,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// maxCpusArg adapts MaxCPUs to the variadic cap internal/utils.Parallelize
// expects: omitted (nil) when MaxCPUs is unset, so callers fall through to
// Parallelize's own runtime.NumCPU() default rather than being pinned to 0
// workers.
func (c Config) maxCpusArg() []int {
	if c.MaxCPUs > 0 {
		return []int{c.MaxCPUs}
	}
	return nil
}

func (c Config) validate(m int) error {
	if c.BlowupBits < 0 {
		return &PipelineError{Kind: ErrKindShape, Op: "validate", Err: fmt.Errorf("negative blowup bits %d", c.BlowupBits)}
	}
	if c.SaltCount < 0 {
		return &PipelineError{Kind: ErrKindShape, Op: "validate", Err: fmt.Errorf("negative salt count %d", c.SaltCount)}
	}
	if c.CapHeight < 0 {
		return &PipelineError{Kind: ErrKindShape, Op: "validate", Err: fmt.Errorf("negative cap height %d", c.CapHeight)}
	}
	if m&(m-1) != 0 {
		return &PipelineError{Kind: ErrKindShape, Op: "validate", Err: fmt.Errorf("row length %d is not a power of two", m)}
	}
	capCount := 1 << uint(c.CapHeight)
	if capCount > m {
		return &PipelineError{Kind: ErrKindShape, Op: "validate", Err: fmt.Errorf("cap height %d exceeds log2(M) for M=%d", c.CapHeight, m)}
	}
	return nil
}
