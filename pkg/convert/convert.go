// Package convert translates ES2015 syntax trees between the ESTree
// (SpiderMonkey) taxonomy and the Shift taxonomy.
//
// Each direction is a table of per-kind rules. Positions whose role ESTree
// leaves implicit (bindings, references, property names, directives) are
// classified from the parent rule, and list shapes that differ between the
// taxonomies are reshaped by small helpers: sequence chains, switch default
// splitting, parameter packing, directive prologues, template interleaving
// and import specifier grouping.
//
// Translation is purely functional: inputs are never modified, outputs share
// no nodes with inputs, and converters are safe for concurrent use.
package convert

import (
	"sync"

	"github.com/Sumatoshi-tech/astbridge/pkg/estree"
	"github.com/Sumatoshi-tech/astbridge/pkg/shift"
)

var (
	defaultShiftConverter  = sync.OnceValue(NewShiftConverter)
	defaultESTreeConverter = sync.OnceValue(func() *ESTreeConverter { return NewESTreeConverter() })
)

// ToShift translates an ESTree tree into a Shift tree.
func ToShift(node estree.Node) (shift.Node, error) {
	return defaultShiftConverter().Convert(node)
}

// ToESTree translates a Shift tree into an ESTree tree. Template elements get
// their raw text as cooked value; use NewESTreeConverter with
// WithTemplateCooker to compute real cooked values.
func ToESTree(node shift.Node) (estree.Node, error) {
	return defaultESTreeConverter().Convert(node)
}
