package goof

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	yesText     = "yes"
	noText      = "no"
	nothingText = "nothing"
)

// ToChoice never fails.
func (v Value) ToChoice() Value {
	switch v.kind {
	case KindChoice:
		return v
	case KindInt:
		return NewChoice(v.Int() != 0)
	case KindFloat:
		return NewChoice(v.Float() != 0)
	case KindText:
		return NewChoice(v.Text() != "")
	default:
		return NewChoice(false)
	}
}

// ToNumber never fails. yes maps to 0 and no maps to 1; text that is not a
// number becomes nothing.
func (v Value) ToNumber() Value {
	switch v.kind {
	case KindChoice:
		if v.Choice() {
			return NewInt(0)
		}
		return NewInt(1)
	case KindInt, KindFloat:
		return v
	case KindText:
		if i, err := strconv.ParseInt(v.Text(), 10, 64); err == nil {
			return NewInt(i)
		}
		if f, ok := parseDecimal(v.Text()); ok {
			return NewFloat(f)
		}
		return NewNothing()
	default:
		return NewInt(0)
	}
}

// parseDecimal accepts decimal float syntax only. Magnitudes past the float
// range become infinities rather than failing.
func parseDecimal(s string) (float64, bool) {
	digits := strings.TrimLeft(s, "+-")
	if len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

// ToText never fails.
func (v Value) ToText() Value {
	switch v.kind {
	case KindText:
		return v
	case KindInt:
		return NewText(strconv.FormatInt(v.Int(), 10))
	case KindFloat:
		return NewText(formatFloat(v.Float()))
	case KindChoice:
		if v.Choice() {
			return NewText(yesText)
		}
		return NewText(noText)
	default:
		return NewText(nothingText)
	}
}

// formatFloat prints the shortest decimal that round-trips, never in
// exponent form.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
