package convert

import (
	"math"
	"strconv"

	"github.com/Sumatoshi-tech/astbridge/pkg/estree"
)

// staticPropertyValue returns the string a non-computed property key names:
// an identifier's name or the JavaScript string conversion of a literal.
func staticPropertyValue(key estree.Node) (string, error) {
	switch k := key.(type) {
	case *estree.Identifier:
		return k.Name, nil
	case *estree.Literal:
		if k.Regex != nil {
			return "/" + k.Regex.Pattern + "/" + k.Regex.Flags, nil
		}

		switch v := k.Value.(type) {
		case string:
			return v, nil
		case float64:
			return formatNumber(v), nil
		case bool:
			return strconv.FormatBool(v), nil
		case nil:
			return "null", nil
		default:
			return "", structuralf(estree.KindLiteral, "unsupported literal value of Go type %T", v)
		}
	default:
		return "", structuralf(key.Type(), "a static property key must be an identifier or a literal")
	}
}

// staticPropertyLiteral rebuilds a key literal from a static property name.
// The key is numeric only when the name is the canonical string of a finite,
// non-negative number; any other name is a string key.
func staticPropertyLiteral(name string) *estree.Literal {
	f, err := strconv.ParseFloat(name, 64)
	if err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) && !math.Signbit(f) && formatNumber(f) == name {
		return &estree.Literal{Value: f}
	}

	return &estree.Literal{Value: name}
}
