package abstract_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ajwerner/rbst/abstract"
	"github.com/ajwerner/rbst/check"
)

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// newTree builds a tree over the given keys and validates the
// structural invariants before handing it back.
func newTree(t *testing.T, keys ...int) *abstract.Tree[int] {
	t.Helper()
	tr := &abstract.Tree[int]{}
	tr.Init(cmpInt, nil, nil)
	for _, k := range keys {
		tr.Insert(k)
	}
	require.NoError(t, check.Structure(tr))
	require.NoError(t, check.Values(tr))
	return tr
}

// scrambled returns 0..n-1 in the 7*i%n order used throughout these
// tests; it visits every residue exactly once when n has no factor 7.
func scrambled(n int) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = 7 * i % n
	}
	return keys
}

func TestNextPrev(t *testing.T) {
	const n = 32
	tr := newTree(t, scrambled(n)...)
	require.Equal(t, n, tr.Len())

	node := tr.First()
	for i := 0; i < n; i++ {
		require.Equal(t, i, node.Key())
		node = node.Next()
	}
	require.Same(t, tr.End(), node)
	require.Nil(t, node.Next())

	for i := n - 1; i >= 0; i-- {
		node = node.Prev()
		require.Equal(t, i, node.Key())
	}
	require.Nil(t, node.Prev())
}

func TestEmptyTree(t *testing.T) {
	tr := newTree(t)
	require.Equal(t, 0, tr.Len())
	require.Nil(t, tr.Root())
	require.Same(t, tr.End(), tr.First())
	require.Nil(t, tr.End().Next())
	require.Nil(t, tr.End().Prev())
	require.Nil(t, tr.End().Offset(1))
	require.Nil(t, tr.End().Offset(-1))
	require.Same(t, tr.End(), tr.End().Offset(0))
}

func TestOffset(t *testing.T) {
	const n = 25
	tr := newTree(t, scrambled(n)...)

	// From every rank, offsets to every rank land on the right node,
	// the sentinel counting as rank n.
	for i := 0; i <= n; i++ {
		from := tr.End().At(i)
		for j := 0; j <= n; j++ {
			to := from.Offset(j - i)
			require.Same(t, tr.End().At(j), to, "offset %d from rank %d", j-i, i)
			if j < n {
				require.Equal(t, j, to.Key())
			} else {
				require.Same(t, tr.End(), to)
			}
		}
		require.Nil(t, from.Offset(-i-1))
		require.Nil(t, from.Offset(n-i+1))
	}
}

func TestIndexAt(t *testing.T) {
	const n = 25
	tr := newTree(t, scrambled(n)...)

	node := tr.First()
	for i := 0; i < n; i++ {
		require.Equal(t, i, node.Index())
		require.Same(t, node, tr.Root().At(i))
		require.Same(t, node, tr.End().At(i))
		node = node.Next()
	}
	require.Equal(t, n, tr.End().Index())
	require.Same(t, tr.End(), tr.End().At(n))
}

func TestSearch(t *testing.T) {
	tr := newTree(t, 2, 4, 6, 8, 10)
	for k := 0; k <= 11; k++ {
		found := tr.Find(k)
		if k%2 == 0 && k >= 2 && k <= 10 {
			require.Equal(t, k, found.Key())
		} else {
			require.Same(t, tr.End(), found)
		}
	}
	require.Equal(t, 4, tr.LowerBound(3).Key())
	require.Equal(t, 4, tr.LowerBound(4).Key())
	require.Equal(t, 6, tr.UpperBound(4).Key())
	require.Same(t, tr.End(), tr.LowerBound(11))
	require.Same(t, tr.End(), tr.UpperBound(10))
	require.Equal(t, 2, tr.LowerBound(-5).Key())
}

func TestErase(t *testing.T) {
	const n = 32
	tr := newTree(t, scrambled(n)...)

	// Erase in a scrambled order, validating invariants after every
	// removal.
	for i, k := range scrambled(n) {
		tr.Erase(tr.Find(k))
		require.Equal(t, n-i-1, tr.Len())
		require.NoError(t, check.Structure(tr))
		require.NoError(t, check.Values(tr))
	}
	require.Same(t, tr.End(), tr.First())
}

func TestSwap(t *testing.T) {
	a := newTree(t, 1, 2, 3)
	b := newTree(t, 4, 5, 6, 7)
	two := a.Find(2)

	a.Swap(b)
	require.Equal(t, 4, a.Len())
	require.Equal(t, 3, b.Len())
	require.NoError(t, check.Structure(a))
	require.NoError(t, check.Structure(b))

	// Node identity migrates with the contents.
	require.Same(t, two, b.Find(2))
	require.Equal(t, tContents(b), []int{1, 2, 3})
	require.Equal(t, tContents(a), []int{4, 5, 6, 7})
}

func TestCloneFrom(t *testing.T) {
	a := newTree(t, scrambled(20)...)
	b := newTree(t)
	b.CloneFrom(a)

	require.Equal(t, a.Len(), b.Len())
	require.Equal(t, tContents(a), tContents(b))
	require.NoError(t, check.Structure(b))
	require.NoError(t, check.Values(b))

	// Copies are identity-distinct.
	for n := b.First(); n != b.End(); n = n.Next() {
		require.NotSame(t, a.Find(n.Key()), n)
	}

	// Mutating the copy leaves the original alone.
	b.Erase(b.Find(3))
	require.Equal(t, 3, a.Find(3).Key())
}

func tContents(tr *abstract.Tree[int]) []int {
	keys := make([]int, 0, tr.Len())
	for n := tr.First(); n != tr.End(); n = n.Next() {
		keys = append(keys, n.Key())
	}
	return keys
}
