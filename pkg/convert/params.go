package convert

import "github.com/Sumatoshi-tech/astbridge/pkg/estree"

// formalParam is one non-rest parameter with its optional default value.
type formalParam struct {
	Binding estree.Node
	Default estree.Node
}

// splitRestElement separates a trailing RestElement from a parameter or
// array-pattern list, returning the rest argument.
func splitRestElement(elements []estree.Node) ([]estree.Node, estree.Node) {
	n := len(elements)
	if n == 0 {
		return nil, nil
	}

	rest, ok := elements[n-1].(*estree.RestElement)
	if !ok || rest == nil {
		return elements, nil
	}

	if n == 1 {
		return nil, rest.Argument
	}

	return elements[:n-1], rest.Argument
}

// unpackParams zips ESTree's parallel params and defaults lists into
// parameter items. A shorter defaults list leaves the remaining items without
// defaults.
func unpackParams(params, defaults []estree.Node) ([]formalParam, estree.Node) {
	params, rest := splitRestElement(params)
	if len(params) == 0 {
		return nil, rest
	}

	items := make([]formalParam, len(params))
	for i, p := range params {
		items[i].Binding = p
		if i < len(defaults) && !isNil(defaults[i]) {
			items[i].Default = defaults[i]
		}
	}

	return items, rest
}

// packParams is the inverse of unpackParams. The defaults list is nil when no
// item has a default; otherwise it has one slot per parameter, rest included.
func packParams(items []formalParam, rest estree.Node) ([]estree.Node, []estree.Node) {
	var params, defaults []estree.Node

	hasDefault := false

	for _, item := range items {
		params = append(params, item.Binding)
		defaults = append(defaults, item.Default)

		if !isNil(item.Default) {
			hasDefault = true
		}
	}

	if !isNil(rest) {
		params = append(params, &estree.RestElement{Argument: rest})
		defaults = append(defaults, nil)
	}

	if !hasDefault {
		defaults = nil
	}

	return params, defaults
}
