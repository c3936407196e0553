package gradual

import (
	"fmt"
	"math"
	"reflect"

	"github.com/funvibe/gradual/internal/label"
	"github.com/funvibe/gradual/internal/term"
)

// maxExactInt is the largest magnitude up to which every integer has an
// exact float64 representation.
const maxExactInt = 1 << 53

// Marshaller handles conversion between Go values and terms.
type Marshaller struct{}

func NewMarshaller() *Marshaller {
	return &Marshaller{}
}

// ToTerm converts a Go value to a term. Terms and labels pass through;
// numbers become Num and booleans become Bool.
func (m *Marshaller) ToTerm(val interface{}) (term.Term, error) {
	switch v := val.(type) {
	case nil:
		return nil, fmt.Errorf("cannot convert nil to a term")
	case term.Term:
		return v, nil
	case label.Label:
		return term.NewLbl(v), nil
	case *label.Label:
		if v == nil {
			return nil, fmt.Errorf("cannot convert a nil label")
		}
		return term.NewLbl(*v), nil
	}

	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := rv.Int()
		if i > maxExactInt || i < -maxExactInt {
			return nil, fmt.Errorf("%d cannot be represented exactly as a number", i)
		}
		return term.NewNum(float64(i)), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > maxExactInt {
			return nil, fmt.Errorf("%d cannot be represented exactly as a number", u)
		}
		return term.NewNum(float64(u)), nil
	case reflect.Float32, reflect.Float64:
		return term.NewNum(rv.Float()), nil
	case reflect.Bool:
		return term.NewBool(rv.Bool()), nil
	default:
		return nil, fmt.Errorf("unsupported type for conversion: %T", val)
	}
}

// FromTerm converts a value term back to Go. Numbers come back as float64
// unless targetType asks for an integer kind. Functions stay terms.
func (m *Marshaller) FromTerm(t term.Term, targetType reflect.Type) (interface{}, error) {
	switch n := t.(type) {
	case *term.Num:
		if targetType == nil {
			return n.Value, nil
		}
		switch targetType.Kind() {
		case reflect.Int:
			i, err := toInt64(n.Value, math.MinInt, math.MaxInt)
			if err != nil {
				return nil, err
			}
			return int(i), nil
		case reflect.Int64:
			i, err := toInt64(n.Value, math.MinInt64, math.MaxInt64)
			if err != nil {
				return nil, err
			}
			return i, nil
		case reflect.Float64:
			return n.Value, nil
		default:
			return nil, fmt.Errorf("cannot convert %s to %s", n, targetType)
		}
	case *term.Bool:
		return n.Value, nil
	case *term.Lbl:
		return n.Label, nil
	case *term.Fun:
		return n, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("%s is not a value", t)
	}
}

// toInt64 converts f only if it is integral and within [lo, hi].
func toInt64(f float64, lo, hi int64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%v is not an integer", f)
	}
	// float64(hi) rounds up to a power of two, which is itself out of range.
	if f < float64(lo) || f >= float64(hi) {
		return 0, fmt.Errorf("%v overflows the target integer type", f)
	}
	return int64(f), nil
}
