package container

import (
	"github.com/mattsta/flex/format"
	"github.com/mattsta/flex/internal/errs"
	"github.com/mattsta/flex/section"
)

// numeric reads an entry's value as a float64, regardless of which numeric
// Kind it decoded to. Non-numeric entries (bytes, containers, booleans,
// null) are rejected — Sum and Product only make sense over a
// homogeneously numeric container.
func numeric(v format.Value) (float64, error) {
	switch v.Kind {
	case format.KindInt:
		return float64(v.Int), nil
	case format.KindUint:
		return float64(v.Uint), nil
	case format.KindFloat32:
		return float64(v.Float32), nil
	case format.KindFloat64:
		return v.Float64, nil
	default:
		return 0, errs.ErrBadArgument
	}
}

// Sum adds every entry's value together as float64. It returns
// ErrBadArgument if any entry is not a numeric kind.
func (c *Container) Sum() (float64, error) {
	var total float64

	err := c.eachNumeric(func(f float64) { total += f })

	return total, err
}

// Product multiplies every entry's value together as float64. An empty
// container's product is 1, the multiplicative identity.
func (c *Container) Product() (float64, error) {
	total := 1.0

	err := c.eachNumeric(func(f float64) { total *= f })

	return total, err
}

func (c *Container) eachNumeric(fn func(float64)) error {
	h, err := c.header()
	if err != nil {
		return err
	}

	pos := h.Len()
	for i := 0; i < int(h.Count); i++ {
		v, consumed, err := section.DecodeForward(c.buf[pos:])
		if err != nil {
			return err
		}

		f, err := numeric(v)
		if err != nil {
			return err
		}

		fn(f)
		pos += consumed
	}

	return nil
}
