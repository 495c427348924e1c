package containerset

import "github.com/mattsta/flex/internal/options"

// config holds the tunable construction parameters for a Set.
type config struct {
	initialCapacity int
}

// Option configures a Set at construction time.
type Option = options.Option[*config]

// WithInitialCapacity preallocates room for n members up front, avoiding
// repeated slice growth when the final member count is known ahead of
// time.
func WithInitialCapacity(n int) Option {
	return options.NoError(func(c *config) {
		if n > 0 {
			c.initialCapacity = n
		}
	})
}
