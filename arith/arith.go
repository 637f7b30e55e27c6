package arith

import (
	"errors"
	"fmt"

	"github.com/tarmac-project/mockapi/logging"
)

// ErrInvalidOperand is returned when an operand is not an integer or float.
var ErrInvalidOperand = errors.New("operands must be integers or floats")

// Number is the set of built-in integer and float types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Add returns a + b.
func Add[T Number](a, b T) T { return a + b }

// Multiply returns a * b.
func Multiply[T Number](a, b T) T { return a * b }

// Config configures a Calculator.
type Config struct {
	// Logger receives a Debug entry per call and an Error entry per rejected
	// call. Nil discards them.
	Logger logging.Client
}

// Calculator performs arithmetic on untyped operands.
type Calculator struct {
	log logging.Client
}

// New creates a Calculator.
func New(cfg Config) *Calculator {
	log := cfg.Logger
	if log == nil {
		log = logging.Nop()
	}
	return &Calculator{log: log}
}

// Add returns a + b as a float64.
func (c *Calculator) Add(a, b any) (float64, error) {
	return c.apply("addition", "add", a, b, Add[float64])
}

// Multiply returns a * b as a float64.
func (c *Calculator) Multiply(a, b any) (float64, error) {
	return c.apply("multiplication", "multiply", a, b, Multiply[float64])
}

func (c *Calculator) apply(operation, name string, a, b any, fn func(float64, float64) float64) (float64, error) {
	x, okA := toFloat(a)
	y, okB := toFloat(b)
	if !okA || !okB {
		c.log.Error(fmt.Sprintf("invalid operand types for %s: %v, %v", operation, a, b))
		return 0, fmt.Errorf("%w: %T, %T", ErrInvalidOperand, a, b)
	}

	c.log.Debug(fmt.Sprintf("%s(%v, %v) called", name, a, b))
	return fn(x, y), nil
}

// toFloat converts built-in numeric values. Bools and strings are rejected.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
