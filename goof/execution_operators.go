package goof

import "errors"

func (exec *Execution) evalExpression(expr Expression) (Value, error) {
	switch e := expr.(type) {
	case *IntegerLiteral:
		return NewInt(e.Value), nil
	case *FloatLiteral:
		return NewFloat(e.Value), nil
	case *TextLiteral:
		return NewText(e.Value), nil
	case *ChoiceLiteral:
		return NewChoice(e.Value), nil
	case *Identifier:
		val, ok := exec.env.Get(e.Name)
		if !ok {
			return NewNothing(), exec.errorAt(e.Pos(), "variable '%s' not found", e.Name)
		}
		return val, nil
	case *ReadExpr:
		line, err := exec.console.ReadLine()
		if err != nil {
			return NewNothing(), &IOError{Err: err}
		}
		return NewText(line), nil
	case *UnaryExpr:
		return exec.evalUnaryExpr(e)
	case *BinaryExpr:
		return exec.evalBinaryExpr(e)
	default:
		return NewNothing(), exec.errorAt(expr.Pos(), "unsupported expression %T", expr)
	}
}

func (exec *Execution) evalUnaryExpr(e *UnaryExpr) (Value, error) {
	right, err := exec.evalExpression(e.Right)
	if err != nil {
		return NewNothing(), err
	}
	switch e.Operator {
	case tokenNeg:
		result, err := negateValue(right)
		if err != nil {
			return NewNothing(), exec.wrapError(err, e)
		}
		return result, nil
	case tokenNot:
		return NewChoice(!right.ToChoice().Choice()), nil
	case tokenNum:
		return right.ToNumber(), nil
	case tokenText:
		return right.ToText(), nil
	case tokenChoice:
		return right.ToChoice(), nil
	default:
		return NewNothing(), exec.errorAt(e.Pos(), "unsupported unary operator %s", operatorName(e.Operator))
	}
}

// evalBinaryExpr evaluates both operands before applying the operator; and
// and or do not short-circuit.
func (exec *Execution) evalBinaryExpr(e *BinaryExpr) (Value, error) {
	left, err := exec.evalExpression(e.Left)
	if err != nil {
		return NewNothing(), err
	}
	right, err := exec.evalExpression(e.Right)
	if err != nil {
		return NewNothing(), err
	}

	var result Value
	switch e.Operator {
	case tokenPlus:
		result, err = addValues(left, right)
	case tokenMinus:
		result, err = subtractValues(left, right)
	case tokenTimes:
		result, err = multiplyValues(left, right)
	case tokenOver:
		result, err = divideValues(left, right)
	case tokenMod:
		result, err = moduloValues(left, right)
	case tokenPow:
		result, err = powerValues(left, right)
	case tokenBelow:
		result, err = compareValues(left, right, func(c int) bool { return c < 0 })
	case tokenAbove:
		result, err = compareValues(left, right, func(c int) bool { return c > 0 })
	case tokenAtMost:
		result, err = compareValues(left, right, func(c int) bool { return c <= 0 })
	case tokenAtLeast:
		result, err = compareValues(left, right, func(c int) bool { return c >= 0 })
	case tokenIs:
		return NewChoice(left.Equal(right)), nil
	case tokenIsnt:
		return NewChoice(!left.Equal(right)), nil
	case tokenAnd:
		return NewChoice(left.ToChoice().Choice() && right.ToChoice().Choice()), nil
	case tokenOr:
		return NewChoice(left.ToChoice().Choice() || right.ToChoice().Choice()), nil
	default:
		return NewNothing(), exec.errorAt(e.Pos(), "unsupported operator %s", operatorName(e.Operator))
	}

	if err != nil {
		return NewNothing(), exec.wrapError(err, e)
	}
	return result, nil
}

// wrapError turns an operand mismatch into a runtime error that names the
// operator and points at it.
func (exec *Execution) wrapError(err error, node Node) error {
	var mismatch *operandError
	if errors.As(err, &mismatch) {
		return exec.errorAt(node.Pos(), "%s", mismatch.describe(operatorOf(node)))
	}
	return exec.errorAt(node.Pos(), "%s", err.Error())
}

func operatorOf(node Node) TokenType {
	switch n := node.(type) {
	case *BinaryExpr:
		return n.Operator
	case *UnaryExpr:
		return n.Operator
	default:
		return ""
	}
}
