package datastruct

import (
	"math"

	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/option"
)

const (
	// DefaultCapacity is the bucket array length of a HashTable when no capacity is configured.
	DefaultCapacity = 16
	// DefaultLoadFactor is the live key count to bucket count ratio above which a HashTable doubles.
	DefaultLoadFactor = 0.75
)

type Option interface {
	option.Option[Config]
}

// Config holds the construction time settings of a HashTable.
type Config struct {
	// Capacity is the initial bucket array length.
	//
	// Default: DefaultCapacity
	Capacity int
	// LoadFactor is the growth threshold.
	// Before a new key is placed, the table doubles if (Len()+1)/Cap() would exceed it.
	//
	// Default: DefaultLoadFactor
	LoadFactor float64
	// OnResize is called after each doubling of the bucket array.
	OnResize func(from, to int)
}

func (c *Config) Init() {
	c.Capacity = DefaultCapacity
	c.LoadFactor = DefaultLoadFactor
}

func (c Config) Configure(o *Config) {
	o.Capacity = zerokit.Coalesce(c.Capacity, o.Capacity)
	o.LoadFactor = zerokit.Coalesce(c.LoadFactor, o.LoadFactor)
	if c.OnResize != nil {
		o.OnResize = c.OnResize
	}
}

func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return ErrInvalidArgument.F("capacity must be positive, got %d", c.Capacity)
	}
	if c.LoadFactor <= 0 || math.IsNaN(c.LoadFactor) || math.IsInf(c.LoadFactor, 0) {
		return ErrInvalidArgument.F("load factor must be a positive finite number, got %v", c.LoadFactor)
	}
	return nil
}

// WithCapacity sets the initial bucket array length.
// Unlike the Config literal, an explicit zero or negative value is kept, and New rejects it.
func WithCapacity(capacity int) Option {
	return option.Func[Config](func(c *Config) { c.Capacity = capacity })
}

func WithLoadFactor(lf float64) Option {
	return option.Func[Config](func(c *Config) { c.LoadFactor = lf })
}

func WithOnResize(fn func(from, to int)) Option {
	return option.Func[Config](func(c *Config) { c.OnResize = fn })
}
