package convert

import (
	"github.com/Sumatoshi-tech/astbridge/pkg/estree"
	"github.com/Sumatoshi-tech/astbridge/pkg/shift"
)

// ESTree reuses Identifier, Property and the pattern kinds across roles. The
// classifiers below pick the Shift kind from the position a node occupies.

// toBinding converts a node in binding position: declarator ids, parameters,
// assignment targets, for-in/of heads and catch parameters.
func (c *ShiftConverter) toBinding(node estree.Node) (shift.Node, error) {
	if isNil(node) {
		return nil, nil
	}

	switch n := node.(type) {
	case *estree.Identifier:
		return bindingIdentifier(n), nil
	case *estree.Property:
		return c.bindingProperty(n)
	default:
		return c.Convert(node)
	}
}

// toExpression converts a node in value position.
func (c *ShiftConverter) toExpression(node estree.Node) (shift.Node, error) {
	if isNil(node) {
		return nil, nil
	}

	switch n := node.(type) {
	case *estree.Identifier:
		return &shift.IdentifierExpression{Name: n.Name}, nil
	case *estree.Literal:
		return c.literal(n)
	case *estree.MetaProperty:
		return c.metaProperty(n)
	case *estree.TemplateLiteral:
		return c.templateExpression(nil, n)
	default:
		return c.Convert(node)
	}
}

// toArgument converts a call argument or array element, where spread is
// allowed. Holes stay nil.
func (c *ShiftConverter) toArgument(node estree.Node) (shift.Node, error) {
	if spread, ok := node.(*estree.SpreadElement); ok && spread != nil {
		return c.spreadElement(spread)
	}

	return c.toExpression(node)
}

// toPropertyName converts a property key into a computed or static name.
func (c *ShiftConverter) toPropertyName(key estree.Node, computed bool) (shift.Node, error) {
	if isNil(key) {
		return nil, nil
	}

	if computed {
		expr, err := c.toExpression(key)
		if err != nil {
			return nil, err
		}

		return &shift.ComputedPropertyName{Expression: expr}, nil
	}

	value, err := staticPropertyValue(key)
	if err != nil {
		return nil, err
	}

	return &shift.StaticPropertyName{Value: value}, nil
}

// bindingProperty converts a member of an object pattern.
func (c *ShiftConverter) bindingProperty(p *estree.Property) (shift.Node, error) {
	if !p.Shorthand {
		name, err := c.toPropertyName(p.Key, p.Computed)
		if err != nil {
			return nil, err
		}

		binding, err := c.toBinding(p.Value)
		if err != nil {
			return nil, err
		}

		return &shift.BindingPropertyProperty{Name: name, Binding: binding}, nil
	}

	key, ok := p.Key.(*estree.Identifier)
	if !ok || key == nil {
		return nil, structuralf(estree.KindProperty, "shorthand pattern key must be an identifier")
	}

	var init shift.Node

	if pattern, ok := p.Value.(*estree.AssignmentPattern); ok && pattern != nil {
		expr, err := c.toExpression(pattern.Right)
		if err != nil {
			return nil, err
		}

		init = expr
	}

	return &shift.BindingPropertyIdentifier{Binding: bindingIdentifier(key), Init: init}, nil
}

func bindingIdentifier(id *estree.Identifier) *shift.BindingIdentifier {
	if id == nil {
		return nil
	}

	return &shift.BindingIdentifier{Name: id.Name}
}

func identifierName(id *estree.Identifier) string {
	if id == nil {
		return ""
	}

	return id.Name
}
