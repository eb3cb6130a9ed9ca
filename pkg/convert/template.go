package convert

import "github.com/Sumatoshi-tech/astbridge/pkg/estree"

// interleaveTemplate merges quasis and expressions into one list that starts
// and ends with a quasi.
func interleaveTemplate(quasis []*estree.TemplateElement, exprs []estree.Node) ([]estree.Node, error) {
	if len(quasis) != len(exprs)+1 {
		return nil, structuralf(estree.KindTemplateLiteral, "%d quasis for %d expressions", len(quasis), len(exprs))
	}

	elements := make([]estree.Node, 0, len(quasis)+len(exprs))

	for i, quasi := range quasis {
		if quasi == nil {
			return nil, structuralf(estree.KindTemplateLiteral, "quasi %d is missing", i)
		}

		elements = append(elements, quasi)
		if i < len(exprs) {
			elements = append(elements, exprs[i])
		}
	}

	return elements, nil
}

// deinterleaveTemplate splits an alternating element list back into quasis and
// expressions. Only the last quasi is marked as the tail.
func deinterleaveTemplate(elements []estree.Node) ([]*estree.TemplateElement, []estree.Node, error) {
	if len(elements)%2 == 0 {
		return nil, nil, structuralf(estree.KindTemplateLiteral, "element list has even length %d", len(elements))
	}

	quasis := make([]*estree.TemplateElement, 0, len(elements)/2+1)

	var exprs []estree.Node

	for i, el := range elements {
		if i%2 == 1 {
			exprs = append(exprs, el)

			continue
		}

		te, ok := el.(*estree.TemplateElement)
		if !ok || te == nil {
			return nil, nil, structuralf(estree.KindTemplateLiteral, "element %d is not a template element", i)
		}

		quasi := *te
		quasi.Tail = i == len(elements)-1
		quasis = append(quasis, &quasi)
	}

	return quasis, exprs, nil
}
