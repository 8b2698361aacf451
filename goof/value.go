package goof

type ValueKind int

const (
	KindNothing ValueKind = iota
	KindChoice
	KindInt
	KindFloat
	KindText
)

func (k ValueKind) String() string {
	switch k {
	case KindNothing:
		return "nothing"
	case KindChoice:
		return "choice"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Value is the runtime representation of every goofscript value. The zero
// Value is nothing.
type Value struct {
	kind ValueKind
	data any
}

func NewNothing() Value         { return Value{kind: KindNothing} }
func NewChoice(b bool) Value    { return Value{kind: KindChoice, data: b} }
func NewInt(i int64) Value      { return Value{kind: KindInt, data: i} }
func NewFloat(f float64) Value  { return Value{kind: KindFloat, data: f} }
func NewText(s string) Value    { return Value{kind: KindText, data: s} }
func (v Value) Kind() ValueKind { return v.kind }
func (v Value) IsNothing() bool { return v.kind == KindNothing }
func (v Value) isNumeric() bool { return v.kind == KindInt || v.kind == KindFloat }
func (v Value) String() string  { return v.ToText().Text() }

func (v Value) Choice() bool {
	if b, ok := v.data.(bool); ok {
		return b
	}
	return false
}

func (v Value) Int() int64 {
	switch n := v.data.(type) {
	case int64:
		return n
	case float64:
		return int64(n)
	default:
		return 0
	}
}

// Float widens ints so mixed arithmetic can share one code path.
func (v Value) Float() float64 {
	switch n := v.data.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	default:
		return 0
	}
}

func (v Value) Text() string {
	if s, ok := v.data.(string); ok {
		return s
	}
	return ""
}

// Equal implements the is operator. It never fails: numbers compare by value
// across int and float, every other mismatch is simply unequal. Nothing is
// not equal to anything, itself included.
func (v Value) Equal(other Value) bool {
	if v.isNumeric() && other.isNumeric() {
		if v.kind == KindInt && other.kind == KindInt {
			return v.Int() == other.Int()
		}
		return v.Float() == other.Float()
	}
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindChoice:
		return v.Choice() == other.Choice()
	case KindText:
		return v.Text() == other.Text()
	default:
		return false
	}
}
