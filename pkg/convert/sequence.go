package convert

import (
	"github.com/Sumatoshi-tech/astbridge/pkg/estree"
	"github.com/Sumatoshi-tech/astbridge/pkg/shift"
)

const commaOperator = ","

// flattenSequence lists the operands of a left-nested chain of comma
// expressions. Only the left spine is followed: a comma expression in right
// position is an operand.
func flattenSequence(expr *shift.BinaryExpression) []shift.Node {
	var rights []shift.Node

	var left shift.Node = expr

	for {
		bin, ok := left.(*shift.BinaryExpression)
		if !ok || bin == nil || bin.Operator != commaOperator {
			break
		}

		rights = append(rights, bin.Right)
		left = bin.Left
	}

	operands := make([]shift.Node, 0, len(rights)+1)
	operands = append(operands, left)

	for i := len(rights) - 1; i >= 0; i-- {
		operands = append(operands, rights[i])
	}

	return operands
}

// foldSequence builds the left-nested comma chain of at least two operands.
func foldSequence(operands []shift.Node) (shift.Node, error) {
	if len(operands) < 2 {
		return nil, structuralf(estree.KindSequenceExpression, "needs at least two expressions, got %d", len(operands))
	}

	acc := &shift.BinaryExpression{Operator: commaOperator, Left: operands[0], Right: operands[1]}
	for _, operand := range operands[2:] {
		acc = &shift.BinaryExpression{Operator: commaOperator, Left: acc, Right: operand}
	}

	return acc, nil
}
