package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathlang/jsonpath/value"
)

func sampleArray() *value.Array {
	return value.NewArray(int64(10), int64(20), int64(30), int64(40), int64(50))
}

func TestChildSkipsNonObjectsAndMissingKeys(t *testing.T) {
	t.Parallel()
	obj := value.NewObject()
	obj.Set("a", int64(1))
	ms := []Match{{Value: obj}, {Value: int64(5)}}

	out, err := NewChild("a").Apply(ms, nil)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(1), out[0].Value)
	assert.Equal(t, "$['a']", out[0].Path.String())

	out, err = NewChild("missing").Apply(ms, nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestChildSelectsMultipleNamesInOrder(t *testing.T) {
	t.Parallel()
	obj := value.NewObject()
	obj.Set("a", int64(1))
	obj.Set("b", int64(2))
	obj.Set("c", int64(3))

	out, err := NewChild("c", "a", "missing").Apply([]Match{{Value: obj}}, nil)
	require.NoError(t, err)
	assert.Equal(t, []any{int64(3), int64(1)}, MatchList(out).Values())
	assert.Equal(t, []string{"$['c']", "$['a']"}, MatchList(out).Paths())
}

func TestWildcardOverObjectAndArray(t *testing.T) {
	t.Parallel()
	obj := value.NewObject()
	obj.Set("x", int64(1))
	obj.Set("y", int64(2))

	out, err := NewWildcard().Apply([]Match{{Value: obj}}, nil)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, []any{int64(1), int64(2)}, MatchList(out).Values())

	out, err = NewWildcard().Apply([]Match{{Value: sampleArray()}}, nil)
	require.NoError(t, err)
	require.Len(t, out, 5)
}

func TestIndexListNegativeAndOutOfRange(t *testing.T) {
	t.Parallel()
	out, err := NewIndexList(0, -1, 99).Apply([]Match{{Value: sampleArray()}}, nil)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, []any{int64(10), int64(50)}, MatchList(out).Values())
}

func TestSliceForwardAndReverse(t *testing.T) {
	t.Parallel()
	start, end := 0, -1
	out, err := NewSlice(&start, &end, 2).Apply([]Match{{Value: sampleArray()}}, nil)
	require.NoError(t, err)
	assert.Equal(t, []any{int64(10), int64(30)}, MatchList(out).Values())

	out, err = NewSlice(nil, nil, -1).Apply([]Match{{Value: sampleArray()}}, nil)
	require.NoError(t, err)
	assert.Equal(t, []any{int64(50), int64(40), int64(30), int64(20), int64(10)}, MatchList(out).Values())
}

func TestDescentVisitsPreOrder(t *testing.T) {
	t.Parallel()
	inner := value.NewObject()
	inner.Set("b", int64(2))
	outer := value.NewObject()
	outer.Set("a", int64(1))
	outer.Set("nested", inner)

	d := NewDescent(NewWildcard())
	out, err := d.Apply([]Match{{Value: outer}}, outer)
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), inner, int64(2)}, MatchList(out).Values())
}

func TestSortAscendingAndDescending(t *testing.T) {
	t.Parallel()
	mk := func(n int64) *value.Object {
		o := value.NewObject()
		o.Set("n", n)
		return o
	}
	arr := value.NewArray(mk(3), mk(1), mk(2))

	out, err := NewSort(SortKey{Path: []string{"n"}}).Apply([]Match{{Value: arr}}, nil)
	require.NoError(t, err)
	asc := MatchList(out).Values()
	require.Len(t, asc, 3)
	assert.Equal(t, int64(1), mustGet(t, asc[0].(*value.Object), "n"))
	assert.Equal(t, int64(2), mustGet(t, asc[1].(*value.Object), "n"))
	assert.Equal(t, int64(3), mustGet(t, asc[2].(*value.Object), "n"))

	out, err = NewSort(SortKey{Path: []string{"n"}, Descending: true}).Apply([]Match{{Value: arr}}, nil)
	require.NoError(t, err)
	desc := MatchList(out).Values()
	assert.Equal(t, int64(3), mustGet(t, desc[0].(*value.Object), "n"))
	assert.Equal(t, int64(1), mustGet(t, desc[2].(*value.Object), "n"))
}

// TestSortMissingKeySortsFirst asserts spec.md §4.3's rule that an
// element missing the sort key orders before every element that has it
// present, rather than merely tying with its input neighbor.
func TestSortMissingKeySortsFirst(t *testing.T) {
	t.Parallel()
	mk := func(n int64) *value.Object {
		o := value.NewObject()
		o.Set("n", n)
		return o
	}
	noKey := value.NewObject()
	arr := value.NewArray(mk(3), mk(1), noKey, mk(2))

	out, err := NewSort(SortKey{Path: []string{"n"}}).Apply([]Match{{Value: arr}}, nil)
	require.NoError(t, err)
	got := MatchList(out).Values()
	require.Len(t, got, 4)
	assert.Same(t, noKey, got[0].(*value.Object))
	assert.Equal(t, int64(1), mustGet(t, got[1].(*value.Object), "n"))
	assert.Equal(t, int64(2), mustGet(t, got[2].(*value.Object), "n"))
	assert.Equal(t, int64(3), mustGet(t, got[3].(*value.Object), "n"))
}

func mustGet(t *testing.T, o *value.Object, key string) any {
	t.Helper()
	v, ok := o.Get(key)
	require.True(t, ok)
	return v
}

func TestSortErrorsOnIncompatibleTypes(t *testing.T) {
	t.Parallel()
	mkS := func(s string) *value.Object {
		o := value.NewObject()
		o.Set("n", s)
		return o
	}
	mkN := func(n int64) *value.Object {
		o := value.NewObject()
		o.Set("n", n)
		return o
	}
	arr := value.NewArray(mkN(1), mkS("x"))
	_, err := NewSort(SortKey{Path: []string{"n"}}).Apply([]Match{{Value: arr}}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrType)
}

func TestExtractProjectsNamedFieldsOnly(t *testing.T) {
	t.Parallel()
	o := value.NewObject()
	o.Set("a", int64(1))
	o.Set("b", int64(2))
	o.Set("c", int64(3))

	out, err := NewExtract("a", "c", "missing").Apply([]Match{{Value: o}}, nil)
	require.NoError(t, err)
	require.Len(t, out, 1)
	proj := out[0].Value.(*value.Object)
	assert.Equal(t, []string{"a", "c"}, proj.Keys())
}

func TestExtractDistributesAcrossArrayElements(t *testing.T) {
	t.Parallel()
	mk := func(title string, price int64) *value.Object {
		o := value.NewObject()
		o.Set("title", title)
		o.Set("price", price)
		o.Set("other", "ignored")
		return o
	}
	arr := value.NewArray(mk("A", 10), mk("B", 20), int64(99))

	out, err := NewExtract("title", "price").Apply([]Match{{Value: arr}}, nil)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, []string{"title", "price"}, out[0].Value.(*value.Object).Keys())
	assert.Equal(t, "A", mustGet(t, out[0].Value.(*value.Object), "title"))
	assert.Equal(t, "B", mustGet(t, out[1].Value.(*value.Object), "title"))
	assert.Equal(t, "$[0]", out[0].Path.String())
	assert.Equal(t, "$[1]", out[1].Path.String())
}

func TestFilterStepSelectsArrayElements(t *testing.T) {
	t.Parallel()
	pred := &Comparison{
		Op:    GreaterOp,
		Left:  NewSubPath(false, nil),
		Right: NewLiteral(int64(25)),
	}
	out, err := NewFilterStep(pred).Apply([]Match{{Value: sampleArray()}}, sampleArray())
	require.NoError(t, err)
	assert.Equal(t, []any{int64(30), int64(40), int64(50)}, MatchList(out).Values())
}
