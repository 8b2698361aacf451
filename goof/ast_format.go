package goof

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatStatement renders stmt with every compound expression parenthesized
// by open/close so the parse tree is visible.
func FormatStatement(stmt Statement) string {
	switch s := stmt.(type) {
	case *ExprStmt:
		return FormatExpression(s.Expr)
	case *AssignStmt:
		return s.Name.Name + " be " + FormatExpression(s.Value)
	case *WriteStmt:
		return "write " + FormatExpression(s.Value)
	case *RunLineStmt:
		return "run at " + FormatExpression(s.Line)
	case *RunRangeStmt:
		return "run from " + FormatExpression(s.From) + " to " + FormatExpression(s.To)
	case *GuardStmt:
		return FormatStatement(s.Body) + " if " + FormatExpression(s.Condition)
	case *BlankStmt:
		return ""
	case *EndStmt:
		return "end"
	default:
		return fmt.Sprintf("<%T>", stmt)
	}
}

func FormatExpression(expr Expression) string {
	switch e := expr.(type) {
	case *IntegerLiteral:
		return e.Digits
	case *FloatLiteral:
		whole, frac, _ := strings.Cut(strconv.FormatFloat(e.Value, 'f', -1, 64), ".")
		if frac == "" {
			frac = "0"
		}
		return whole + " dot " + frac
	case *TextLiteral:
		return `"` + e.Value + `"`
	case *ChoiceLiteral:
		if e.Value {
			return yesText
		}
		return noText
	case *Identifier:
		return e.Name
	case *ReadExpr:
		return "read"
	case *UnaryExpr:
		return "open " + strings.ToLower(string(e.Operator)) + " " + FormatExpression(e.Right) + " close"
	case *BinaryExpr:
		return "open " + FormatExpression(e.Left) + " " + strings.ToLower(string(e.Operator)) + " " + FormatExpression(e.Right) + " close"
	default:
		return fmt.Sprintf("<%T>", expr)
	}
}
