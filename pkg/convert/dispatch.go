package convert

import (
	"reflect"
	"sort"
)

type kinded interface {
	Type() string
}

type rule[In, Out any] func(In) (Out, error)

// dispatchTable routes a node to the rule registered for its kind.
type dispatchTable[In kinded, Out any] struct {
	direction Direction
	rules     map[string]rule[In, Out]
}

func newDispatchTable[In kinded, Out any](direction Direction) *dispatchTable[In, Out] {
	return &dispatchTable[In, Out]{
		direction: direction,
		rules:     make(map[string]rule[In, Out]),
	}
}

func (t *dispatchTable[In, Out]) dispatch(node In) (Out, error) {
	r, ok := t.rules[node.Type()]
	if !ok {
		var zero Out

		return zero, &UnrecognizedKindError{Kind: node.Type(), Direction: t.direction}
	}

	return r(node)
}

func (t *dispatchTable[In, Out]) kinds() []string {
	kinds := make([]string, 0, len(t.rules))
	for kind := range t.rules {
		kinds = append(kinds, kind)
	}

	sort.Strings(kinds)

	return kinds
}

// handle registers fn under the kind of its parameter type. The table only
// routes nodes of that kind to fn, so the assertion fails solely for foreign
// types that reuse a registered kind name.
func handle[T kinded, In kinded, Out any](t *dispatchTable[In, Out], fn func(T) (Out, error)) {
	var proto T

	t.rules[proto.Type()] = func(node In) (Out, error) {
		typed, ok := any(node).(T)
		if !ok {
			var zero Out

			return zero, structuralf(node.Type(), "unexpected Go type %T for this kind", node)
		}

		return fn(typed)
	}
}

// mapList applies fn to every item. An empty input yields nil.
func mapList[S, T any](items []S, fn func(S) (T, error)) ([]T, error) {
	if len(items) == 0 {
		return nil, nil
	}

	out := make([]T, 0, len(items))

	for _, item := range items {
		converted, err := fn(item)
		if err != nil {
			return nil, err
		}

		out = append(out, converted)
	}

	return out, nil
}

// isNil reports whether n is absent, including a typed nil pointer.
func isNil(n kinded) bool {
	if n == nil {
		return true
	}

	v := reflect.ValueOf(n)

	return v.Kind() == reflect.Pointer && v.IsNil()
}
