package goof

import (
	"cmp"
	"fmt"
	"math"
	"strings"
)

// operandError records an operator applied to kinds it does not accept. The
// operator is filled in by the caller, which knows the node.
type operandError struct {
	kinds   []ValueKind
	compare bool
}

func (e *operandError) Error() string {
	return e.describe("")
}

func (e *operandError) describe(op TokenType) string {
	names := make([]string, len(e.kinds))
	for i, kind := range e.kinds {
		names[i] = kind.String()
	}
	operands := strings.Join(names, " and ")
	if e.compare {
		return fmt.Sprintf("cannot compare %s with %s", operands, operatorName(op))
	}
	return fmt.Sprintf("cannot apply %s to %s", operatorName(op), operands)
}

func mismatch(values ...Value) error {
	kinds := make([]ValueKind, len(values))
	for i, v := range values {
		kinds[i] = v.Kind()
	}
	return &operandError{kinds: kinds}
}

func operatorName(op TokenType) string {
	if op == "" {
		return "operator"
	}
	return "'" + strings.ToLower(string(op)) + "'"
}

func bothInt(left, right Value) bool {
	return left.Kind() == KindInt && right.Kind() == KindInt
}

func bothNumeric(left, right Value) bool {
	return left.isNumeric() && right.isNumeric()
}

func addValues(left, right Value) (Value, error) {
	switch {
	case bothInt(left, right):
		a, b := left.Int(), right.Int()
		sum := a + b
		if (a^sum)&(b^sum) < 0 {
			return NewFloat(float64(a) + float64(b)), nil
		}
		return NewInt(sum), nil
	case bothNumeric(left, right):
		return NewFloat(left.Float() + right.Float()), nil
	case left.Kind() == KindText && right.Kind() == KindText:
		return NewText(left.Text() + right.Text()), nil
	default:
		return NewNothing(), mismatch(left, right)
	}
}

func subtractValues(left, right Value) (Value, error) {
	switch {
	case bothInt(left, right):
		a, b := left.Int(), right.Int()
		diff := a - b
		if (a^b)&(a^diff) < 0 {
			return NewFloat(float64(a) - float64(b)), nil
		}
		return NewInt(diff), nil
	case bothNumeric(left, right):
		return NewFloat(left.Float() - right.Float()), nil
	default:
		return NewNothing(), mismatch(left, right)
	}
}

func multiplyValues(left, right Value) (Value, error) {
	switch {
	case bothInt(left, right):
		if product, ok := checkedMul(left.Int(), right.Int()); ok {
			return NewInt(product), nil
		}
		return NewFloat(left.Float() * right.Float()), nil
	case bothNumeric(left, right):
		return NewFloat(left.Float() * right.Float()), nil
	default:
		return NewNothing(), mismatch(left, right)
	}
}

// divideValues truncates between ints. A zero divisor or MinInt64 over -1
// falls back to float division.
func divideValues(left, right Value) (Value, error) {
	switch {
	case bothInt(left, right):
		a, b := left.Int(), right.Int()
		if b == 0 || (a == math.MinInt64 && b == -1) {
			return NewFloat(float64(a) / float64(b)), nil
		}
		return NewInt(a / b), nil
	case bothNumeric(left, right):
		return NewFloat(left.Float() / right.Float()), nil
	default:
		return NewNothing(), mismatch(left, right)
	}
}

func moduloValues(left, right Value) (Value, error) {
	switch {
	case bothInt(left, right):
		a, b := left.Int(), right.Int()
		if b == 0 {
			return NewFloat(math.Mod(float64(a), 0)), nil
		}
		return NewInt(a % b), nil
	case bothNumeric(left, right):
		return NewFloat(math.Mod(left.Float(), right.Float())), nil
	default:
		return NewNothing(), mismatch(left, right)
	}
}

// powerValues keeps int results for non-negative int exponents that fit.
func powerValues(left, right Value) (Value, error) {
	switch {
	case bothInt(left, right):
		if result, ok := checkedPow(left.Int(), right.Int()); ok {
			return NewInt(result), nil
		}
		return NewFloat(math.Pow(left.Float(), right.Float())), nil
	case bothNumeric(left, right):
		return NewFloat(math.Pow(left.Float(), right.Float())), nil
	default:
		return NewNothing(), mismatch(left, right)
	}
}

func negateValue(v Value) (Value, error) {
	switch v.Kind() {
	case KindInt:
		if v.Int() == math.MinInt64 {
			return NewFloat(-v.Float()), nil
		}
		return NewInt(-v.Int()), nil
	case KindFloat:
		return NewFloat(-v.Float()), nil
	default:
		return NewNothing(), mismatch(v)
	}
}

func compareValues(left, right Value, test func(int) bool) (Value, error) {
	var c int
	switch {
	case bothInt(left, right):
		c = cmp.Compare(left.Int(), right.Int())
	case bothNumeric(left, right):
		a, b := left.Float(), right.Float()
		if math.IsNaN(a) || math.IsNaN(b) {
			return NewChoice(false), nil
		}
		c = cmp.Compare(a, b)
	case left.Kind() == KindText && right.Kind() == KindText:
		c = strings.Compare(left.Text(), right.Text())
	default:
		return NewNothing(), &operandError{kinds: []ValueKind{left.Kind(), right.Kind()}, compare: true}
	}
	return NewChoice(test(c)), nil
}

func checkedMul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	product := a * b
	if product/b != a {
		return 0, false
	}
	return product, true
}

func checkedPow(base, exp int64) (int64, bool) {
	if exp < 0 {
		return 0, false
	}
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			var ok bool
			if result, ok = checkedMul(result, base); !ok {
				return 0, false
			}
		}
		exp >>= 1
		if exp > 0 {
			var ok bool
			if base, ok = checkedMul(base, base); !ok {
				return 0, false
			}
		}
	}
	return result, true
}
