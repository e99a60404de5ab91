package script

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/framedata/internal/fighter"
)

// Expr renders a condition as flat text. Nothing is evaluated.
func Expr(e fighter.Expression) string {
	switch e := e.(type) {
	case nil:
		return "true"
	case fighter.Nullary:
		return string(e.Requirement)
	case fighter.Unary:
		return fmt.Sprintf("%s(%s)", e.Requirement, Expr(e.Operand))
	case fighter.Binary:
		return fmt.Sprintf("%s %s %s", operand(e.Left), e.Operator, operand(e.Right))
	case fighter.Not:
		return fmt.Sprintf("not(%s)", Expr(e.Expr))
	case fighter.Variable:
		return fmt.Sprintf("variable(0x%x)", e.ID)
	case fighter.Value:
		return strconv.Itoa(int(e.V))
	case fighter.Scalar:
		return strconv.FormatFloat(float64(e.V), 'f', -1, 32)
	default:
		return fmt.Sprintf("%+v", e)
	}
}

// operand parenthesizes nested binary expressions.
func operand(e fighter.Expression) string {
	if _, ok := e.(fighter.Binary); ok {
		return "(" + Expr(e) + ")"
	}
	return Expr(e)
}
