package astjson

import "reflect"

var nodeInterface = reflect.TypeFor[Node]()

// Walk visits root and its descendants in depth-first pre-order. Children are
// struct fields holding nodes or lists of nodes, in field order; nil children
// and list holes are skipped. Returning false from visit skips the children of
// that node.
func Walk(root Node, visit func(Node) bool) {
	if isNilNode(root) || !visit(root) {
		return
	}

	eachChild(root, func(child Node) {
		Walk(child, visit)
	})
}

// Count returns the number of nodes in the tree rooted at root, keyed by kind.
func Count(root Node) map[string]int {
	counts := make(map[string]int)

	Walk(root, func(n Node) bool {
		counts[n.Type()]++

		return true
	})

	return counts
}

// Depth returns the number of nodes on the longest path from root to a leaf.
// A nil root has depth zero.
func Depth(root Node) int {
	if isNilNode(root) {
		return 0
	}

	deepest := 0

	eachChild(root, func(child Node) {
		deepest = max(deepest, Depth(child))
	})

	return deepest + 1
}

func eachChild(n Node, fn func(Node)) {
	v := reflect.ValueOf(n)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return
	}

	t := v.Type()

	for i := range t.NumField() {
		if !t.Field(i).IsExported() {
			continue
		}

		field := v.Field(i)

		switch ft := field.Type(); {
		case ft.Implements(nodeInterface):
			childValue(field, fn)
		case ft.Kind() == reflect.Slice && ft.Elem().Implements(nodeInterface):
			for j := range field.Len() {
				childValue(field.Index(j), fn)
			}
		}
	}
}

func childValue(v reflect.Value, fn func(Node)) {
	if (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) && v.IsNil() {
		return
	}

	if n, ok := v.Interface().(Node); ok {
		fn(n)
	}
}

func isNilNode(n Node) bool {
	if n == nil {
		return true
	}

	v := reflect.ValueOf(n)

	return v.Kind() == reflect.Pointer && v.IsNil()
}
