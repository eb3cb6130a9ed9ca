package convert

import "github.com/Sumatoshi-tech/astbridge/pkg/estree"

// splitDefaultCase splits switch clauses around the default clause. def is nil
// when there is none, in which case every clause is in pre.
func splitDefaultCase(cases []*estree.SwitchCase) (pre []*estree.SwitchCase, def *estree.SwitchCase, post []*estree.SwitchCase, err error) {
	at := -1

	for i, c := range cases {
		if c == nil || c.Test != nil {
			continue
		}

		if at >= 0 {
			return nil, nil, nil, structuralf(estree.KindSwitchStatement, "more than one default clause")
		}

		at = i
	}

	if at < 0 {
		return clipCases(cases), nil, nil, nil
	}

	return clipCases(cases[:at]), cases[at], clipCases(cases[at+1:]), nil
}

// mergeDefaultCase is the inverse of splitDefaultCase.
func mergeDefaultCase(pre []*estree.SwitchCase, def *estree.SwitchCase, post []*estree.SwitchCase) []*estree.SwitchCase {
	var cases []*estree.SwitchCase

	cases = append(cases, pre...)
	if def != nil {
		cases = append(cases, def)
	}

	return append(cases, post...)
}

func clipCases(cases []*estree.SwitchCase) []*estree.SwitchCase {
	if len(cases) == 0 {
		return nil
	}

	return cases
}
