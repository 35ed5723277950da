package framework

import (
	"testing"

	"github.com/lixenwraith/gridui/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunks_CenteredRow(t *testing.T) {
	a, b := &recorder{name: "a"}, &recorder{name: "b"}
	state := NewState(Row{
		Centered: true,
		Height:   layout.Length(2),
		Items: []RowItem{
			{Item: a, Width: layout.Length(4)},
			{Item: b, Width: layout.Percentage(50)},
		},
	})

	for w := 14; w < 30; w++ {
		chunks, err := state.Chunks(layout.NewRect(0, 0, w, 5))
		require.NoError(t, err)
		require.Len(t, chunks, 1)
		require.Len(t, chunks[0], 2)

		first, last := chunks[0][0], chunks[0][1]
		assert.Equal(t, w/2, last.W, "percentage resolves against the row span")
		lead := first.X
		trail := w - last.Right()
		assert.GreaterOrEqual(t, trail, lead)
		assert.LessOrEqual(t, trail-lead, 1)
		assert.Equal(t, 2, first.H)
	}
}

func TestChunks_RowsStackFromTop(t *testing.T) {
	state, _, _, _ := scenarioGrid()
	chunks, err := state.Chunks(layout.NewRect(2, 1, 40, 10))
	require.NoError(t, err)
	assert.Equal(t, layout.NewRect(2, 1, 10, 3), chunks[0][0])
	assert.Equal(t, layout.NewRect(12, 1, 10, 3), chunks[0][1])
	assert.Equal(t, layout.NewRect(2, 4, 10, 3), chunks[1][0])
}

func TestChunks_MinRowTakesSlack(t *testing.T) {
	state, _, _, _ := scenarioGrid()
	state.Rows[1].Height = layout.Min(1)
	chunks, err := state.Chunks(layout.NewRect(0, 0, 40, 10))
	require.NoError(t, err)
	assert.Equal(t, 7, chunks[1][0].H)
}

func TestChunks_NotEnoughWidth(t *testing.T) {
	state, _, _, _ := scenarioGrid()
	_, err := state.Chunks(layout.NewRect(0, 0, 15, 10))
	assert.ErrorIs(t, err, layout.ErrNotEnoughLength)
}

func TestStateCloneIsDeep(t *testing.T) {
	state, a, _, _ := scenarioGrid()
	clone := state.Clone()
	a.value = 5
	assert.Equal(t, 0, clone.Item(Location{X: 0, Y: 0}).(*recorder).value)
	assert.Equal(t, state.Selectables(), clone.Selectables())

	it, ok := clone.Get(1, 0)
	require.True(t, ok)
	assert.Equal(t, "b", it.(*recorder).name)
	_, ok = clone.Get(1, 1)
	assert.False(t, ok)
}

func TestStore(t *testing.T) {
	type lastKey string
	s := NewStore()
	assert.False(t, Has[lastKey](s))
	assert.Equal(t, lastKey("none"), GetOr(s, lastKey("none")))

	Set(s, lastKey("q"))
	Set(s, "plain")
	assert.Equal(t, 2, s.Len())
	v, ok := Get[lastKey](s)
	require.True(t, ok)
	assert.Equal(t, lastKey("q"), v)

	c := s.Clone()
	assert.True(t, Delete[lastKey](s))
	assert.False(t, Delete[lastKey](s))
	assert.True(t, Has[lastKey](c))

	s.Clear()
	assert.Equal(t, 0, s.Len())

	var zero Store
	Set(&zero, 1)
	assert.Equal(t, 1, GetOr(&zero, 0))
}

type node struct {
	Name string
	Tags []string
	Next *node
}

type panel struct {
	Sizes  map[string][]int
	Counts counts
	Extra  any
}

func TestStoreCloneCopiesReferences(t *testing.T) {
	s := NewStore()
	Set(s, []int{1, 2})
	Set(s, map[string]int{"a": 1})
	loop := &node{Name: "a", Tags: []string{"x"}}
	loop.Next = loop
	Set(s, loop)
	Set(s, panel{Sizes: map[string][]int{"w": {3}}, Counts: counts{1}, Extra: []string{"q"}})

	c := s.Clone()

	ints, _ := Get[[]int](s)
	ints[0] = 99
	m, _ := Get[map[string]int](s)
	m["a"] = 2
	m["b"] = 3
	loop.Name = "changed"
	loop.Tags[0] = "y"
	p, _ := Get[panel](s)
	p.Sizes["w"][0] = 9
	p.Counts[0] = 9
	p.Extra.([]string)[0] = "z"

	assert.Equal(t, []int{1, 2}, GetOr[[]int](c, nil))
	assert.Equal(t, map[string]int{"a": 1}, GetOr[map[string]int](c, nil))

	n, ok := Get[*node](c)
	require.True(t, ok)
	assert.NotSame(t, loop, n)
	assert.Equal(t, "a", n.Name)
	assert.Equal(t, []string{"x"}, n.Tags)
	assert.Same(t, n, n.Next, "cycle points back into the copy")

	cp, ok := Get[panel](c)
	require.True(t, ok)
	assert.Equal(t, []int{3}, cp.Sizes["w"])
	assert.Equal(t, counts{1}, cp.Counts)
	assert.Equal(t, []string{"q"}, cp.Extra)
}
