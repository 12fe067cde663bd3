package collections_test

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-underbar/collections"
)

func isEven(n int) bool { return n%2 == 0 }

// ─────────────────────────────────────────────────────────────────────────────
// Filter / Reject
// ─────────────────────────────────────────────────────────────────────────────

func TestFilter(t *testing.T) {
	assert.Equal(t, []int{2, 4, 6}, collections.Filter(ints(1, 2, 3, 4, 5, 6), isEven))
}

func TestFilterEmptyIsNonNil(t *testing.T) {
	got := collections.Filter(ints(1, 3), isEven)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got = collections.Filter(collections.Collection[int, int]{}, isEven)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterDoesNotAlias(t *testing.T) {
	src := []int{2, 4}
	got := collections.Filter(collections.Sequence(src), isEven)
	got[0] = 100
	assert.Equal(t, []int{2, 4}, src)
}

func TestFilterMapping(t *testing.T) {
	got := collections.Filter(collections.Mapping(map[string]int{"a": 1, "b": 2, "c": 4}), isEven)
	sort.Ints(got)
	assert.Equal(t, []int{2, 4}, got)
}

func TestReject(t *testing.T) {
	assert.Equal(t, []int{1, 3, 5}, collections.Reject(ints(1, 2, 3, 4, 5, 6), isEven))
}

func TestFilterRejectPartition(t *testing.T) {
	src := []int{5, 2, 8, 1, 1, 4, 7, 6}
	c := collections.Sequence(src)
	kept := collections.Filter(c, isEven)
	dropped := collections.Reject(c, isEven)
	require.Len(t, append(kept, dropped...), len(src))

	// Merge back by walking the source: each element must be the next one of
	// whichever part its predicate assigns it to.
	var k, d int
	for _, n := range src {
		if isEven(n) {
			require.Equal(t, n, kept[k])
			k++
		} else {
			require.Equal(t, n, dropped[d])
			d++
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Uniq / Map / Pluck
// ─────────────────────────────────────────────────────────────────────────────

func TestUniq(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, collections.Uniq(ints(1, 2, 2, 3, 1)))
	assert.Equal(t, []string{"b", "a"}, collections.Uniq(collections.Sequence([]string{"b", "a", "b"})))
	assert.Empty(t, collections.Uniq(ints()))
}

func TestMapIdentity(t *testing.T) {
	src := []int{3, 1, 2}
	got := collections.Map(collections.Sequence(src), collections.Identity[int])
	assert.Equal(t, src, got)
	got[0] = 0
	assert.Equal(t, 3, src[0])
}

func TestMapTransform(t *testing.T) {
	got := collections.Map(ints(1, 2, 3), func(n int) string { return strings.Repeat("x", n) })
	assert.Equal(t, []string{"x", "xx", "xxx"}, got)
}

func TestPluck(t *testing.T) {
	people := []map[string]any{
		{"name": "moe", "age": 30},
		{"name": "curly", "age": 50},
		{"name": "larry"},
	}
	assert.Equal(t, []any{"moe", "curly", "larry"}, collections.Pluck(collections.Sequence(people), "name"))
	assert.Equal(t, []any{30, 50, nil}, collections.Pluck(collections.Sequence(people), "age"))
}

type audit struct{ Created string }

type member struct {
	audit
	Name  string
	Age   int
	email string
}

func TestPluckField(t *testing.T) {
	members := []member{
		{Name: "moe", Age: 30, audit: audit{Created: "mon"}},
		{Name: "curly", Age: 50},
	}
	got, err := collections.PluckField(collections.Sequence(members), "Name")
	require.NoError(t, err)
	assert.Equal(t, []any{"moe", "curly"}, got)

	got, err = collections.PluckField(collections.Sequence([]*member{&members[0], &members[1]}), "Age")
	require.NoError(t, err)
	assert.Equal(t, []any{30, 50}, got)

	got, err = collections.PluckField(collections.Sequence(members), "Created")
	require.NoError(t, err)
	assert.Equal(t, []any{"mon", ""}, got)
}

func TestPluckFieldErrors(t *testing.T) {
	members := collections.Sequence([]member{{Name: "moe"}})

	_, err := collections.PluckField(members, "email")
	require.ErrorIs(t, err, collections.ErrNoField)

	_, err = collections.PluckField(members, "Missing")
	require.ErrorIs(t, err, collections.ErrNoField)
	assert.Contains(t, err.Error(), "Missing")

	_, err = collections.PluckField(collections.Sequence([]*member{nil}), "Name")
	require.ErrorIs(t, err, collections.ErrNoField)

	_, err = collections.PluckField(collections.Sequence([]any{1}), "Name")
	require.ErrorIs(t, err, collections.ErrNoField)
}

// ─────────────────────────────────────────────────────────────────────────────
// Invoke
// ─────────────────────────────────────────────────────────────────────────────

type word string

func (w word) Upper() string { return strings.ToUpper(string(w)) }

func (w word) Repeat(n int) string { return strings.Repeat(string(w), n) }

func (w word) Join(parts ...string) string {
	return strings.Join(append([]string{string(w)}, parts...), "-")
}

func (w word) Nothing() {}

func (w word) Pair() (string, int) { return string(w), len(w) }

func (w word) Check() (bool, error) {
	if w == "bad" {
		return false, errBadWord
	}
	return true, nil
}

var errBadWord = errors.New("bad word")

type counter struct{ n int }

func (c *counter) Next() int { c.n++; return c.n }

func TestInvokeFunc(t *testing.T) {
	got := collections.InvokeFunc(collections.Sequence([]int{1, 2, 3}),
		func(n int, args ...any) int { return n * args[0].(int) }, 10)
	assert.Equal(t, []int{10, 20, 30}, got)
}

func TestInvokeByName(t *testing.T) {
	words := collections.Sequence([]word{"a", "bc"})

	got, err := collections.Invoke(words, "Upper")
	require.NoError(t, err)
	assert.Equal(t, []any{"A", "BC"}, got)

	got, err = collections.Invoke(words, "Repeat", 2)
	require.NoError(t, err)
	assert.Equal(t, []any{"aa", "bcbc"}, got)

	got, err = collections.Invoke(words, "Join", "x", "y")
	require.NoError(t, err)
	assert.Equal(t, []any{"a-x-y", "bc-x-y"}, got)

	got, err = collections.Invoke(words, "Nothing")
	require.NoError(t, err)
	assert.Equal(t, []any{nil, nil}, got)

	got, err = collections.Invoke(words, "Pair")
	require.NoError(t, err)
	assert.Equal(t, []any{[]any{"a", 1}, []any{"bc", 2}}, got)
}

func TestInvokePointerReceiver(t *testing.T) {
	got, err := collections.Invoke(collections.Sequence([]counter{{n: 1}, {n: 5}}), "Next")
	require.NoError(t, err)
	assert.Equal(t, []any{2, 6}, got)
}

func TestInvokeNotCallable(t *testing.T) {
	_, err := collections.Invoke(collections.Sequence([]word{"a"}), "Missing")
	require.ErrorIs(t, err, collections.ErrNotCallable)
	assert.Contains(t, err.Error(), "Missing")

	_, err = collections.Invoke(collections.Sequence([]word{"a"}), "Repeat")
	require.ErrorIs(t, err, collections.ErrNotCallable)

	_, err = collections.Invoke(collections.Sequence([]word{"a"}), "Repeat", "two")
	require.ErrorIs(t, err, collections.ErrNotCallable)

	_, err = collections.Invoke(collections.Sequence([]any{nil}), "Upper")
	require.ErrorIs(t, err, collections.ErrNotCallable)
}

func TestInvokePropagatesMethodError(t *testing.T) {
	got, err := collections.Invoke(collections.Sequence([]word{"ok", "bad", "ok"}), "Check")
	assert.Nil(t, got)
	assert.Same(t, errBadWord, err)

	got, err = collections.Invoke(collections.Sequence([]word{"ok"}), "Check")
	require.NoError(t, err)
	assert.Equal(t, []any{true}, got)
}

func TestInvokePanicsPropagate(t *testing.T) {
	assert.PanicsWithValue(t, "boom", func() {
		collections.InvokeFunc(ints(1), func(int, ...any) int { panic("boom") })
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Contains / IndexOf
// ─────────────────────────────────────────────────────────────────────────────

func TestContains(t *testing.T) {
	assert.True(t, collections.Contains(ints(1, 2, 3), 2))
	assert.False(t, collections.Contains(ints(1, 2, 3), 4))
	assert.False(t, collections.Contains(ints(), 1))
	assert.True(t, collections.Contains(collections.Mapping(map[string]int{"a": 4}), 4))
}

func TestIndexOf(t *testing.T) {
	i, ok := collections.IndexOf(ints(10, 20, 30, 20), 20)
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = collections.IndexOf(ints(10), 99)
	assert.False(t, ok)

	k, ok := collections.IndexOf(collections.Mapping(map[string]int{"x": 1, "y": 2}), 2)
	assert.True(t, ok)
	assert.Equal(t, "y", k)
}

// ─────────────────────────────────────────────────────────────────────────────
// Every / Some
// ─────────────────────────────────────────────────────────────────────────────

func TestEvery(t *testing.T) {
	assert.True(t, collections.Every(ints(2, 4, 6), isEven))
	assert.False(t, collections.Every(ints(2, 3, 6), isEven))
	assert.True(t, collections.Every(ints(), isEven))
	assert.True(t, collections.Every(ints(), nil))
}

func TestEveryStopsCallingAfterFalse(t *testing.T) {
	var seen []int
	collections.Every(ints(2, 3, 4), func(n int) bool {
		seen = append(seen, n)
		return isEven(n)
	})
	assert.Equal(t, []int{2, 3}, seen)
}

func TestEveryTruthy(t *testing.T) {
	assert.True(t, collections.Every(ints(1, 2), nil))
	assert.False(t, collections.Every(ints(1, 0), nil))
	assert.False(t, collections.Every(collections.Sequence([]any{true, ""}), nil))
}

func TestSome(t *testing.T) {
	assert.False(t, collections.Some(ints(1, 3, 5), isEven))
	assert.True(t, collections.Some(ints(1, 4, 5), isEven))
	assert.False(t, collections.Some(ints(), isEven))
	assert.False(t, collections.Some(ints(0, 0), nil))
	assert.True(t, collections.Some(collections.Sequence([]any{nil, "yes"}), nil))
}

// ─────────────────────────────────────────────────────────────────────────────
// Identity / Truthy
// ─────────────────────────────────────────────────────────────────────────────

func TestIdentity(t *testing.T) {
	assert.Equal(t, 5, collections.Identity(5))
	m := map[string]int{"a": 1}
	assert.Equal(t, m, collections.Identity(m))
}

func TestTruthy(t *testing.T) {
	var nilPtr *int
	var nilMap map[string]int
	var nilErr error
	type myInt int

	falsy := []any{nil, false, 0, int8(0), uint(0), 0.0, float32(0), math.NaN(), "", nilPtr, nilMap, nilErr, myInt(0)}
	for _, v := range falsy {
		assert.False(t, collections.Truthy(v), "%#v should be falsy", v)
	}

	truthy := []any{true, 1, -1, uint8(3), 0.5, "0", []int{}, map[string]int{}, struct{}{}, &struct{}{}, myInt(2), fmt.Sprint}
	for _, v := range truthy {
		assert.True(t, collections.Truthy(v), "%#v should be truthy", v)
	}
}
