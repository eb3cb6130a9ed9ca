package astjson_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sumatoshi-tech/astbridge/pkg/astjson"
)

func TestWalkPreOrder(t *testing.T) {
	t.Parallel()

	tree := &list{Items: []testNode{
		&pair{First: &leaf{Name: "a"}, Second: &leaf{Name: "b"}},
		nil,
		&leaf{Name: "c"},
	}}

	var visited []string

	astjson.Walk(tree, func(n astjson.Node) bool {
		if l, ok := n.(*leaf); ok {
			visited = append(visited, l.Name)
		} else {
			visited = append(visited, n.Type())
		}

		return true
	})

	assert.Equal(t, []string{"List", "Pair", "a", "b", "c"}, visited)
}

func TestWalkSkipsChildren(t *testing.T) {
	t.Parallel()

	tree := &list{Items: []testNode{&pair{First: &leaf{Name: "a"}}, &leaf{Name: "b"}}}

	var visited []string

	astjson.Walk(tree, func(n astjson.Node) bool {
		visited = append(visited, n.Type())

		return n.Type() != "Pair"
	})

	assert.Equal(t, []string{"List", "Pair", "Leaf"}, visited)
}

func TestWalkNil(t *testing.T) {
	t.Parallel()

	var typedNil *leaf

	calls := 0
	astjson.Walk(typedNil, func(astjson.Node) bool {
		calls++

		return true
	})
	astjson.Walk(nil, func(astjson.Node) bool {
		calls++

		return true
	})

	assert.Zero(t, calls)
}

func TestCount(t *testing.T) {
	t.Parallel()

	tree := &list{Items: []testNode{&leaf{}, &leaf{}, &pair{First: &leaf{}}}}

	assert.Equal(t, map[string]int{"List": 1, "Leaf": 3, "Pair": 1}, astjson.Count(tree))
}

func TestDepth(t *testing.T) {
	t.Parallel()

	tree := &list{Items: []testNode{
		&leaf{},
		&pair{First: &leaf{}, Second: &pair{Second: &leaf{}}},
	}}

	assert.Equal(t, 4, astjson.Depth(tree))
	assert.Equal(t, 1, astjson.Depth(&leaf{}))
	assert.Zero(t, astjson.Depth(nil))
}
