package jsonpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathlang/jsonpath/value"
)

// bookstoreDoc builds the classic book/store fixture used throughout
// this package's tests, rooted directly at the store (so expressions
// read $.book[...] rather than $.store.book[...]).
func bookstoreDoc() *value.Object {
	book := func(category, author, title string, price float64, isbn string) *value.Object {
		o := value.NewObject()
		o.Set("category", category)
		o.Set("author", author)
		o.Set("title", title)
		if isbn != "" {
			o.Set("isbn", isbn)
		}
		o.Set("price", price)
		return o
	}
	books := value.NewArray(
		book("reference", "Nigel Rees", "Sayings of the Century", 8.95, ""),
		book("fiction", "Evelyn Waugh", "Sword of Honour", 12.99, ""),
		book("fiction", "Herman Melville", "Moby Dick", 8.99, "0-553-21311-3"),
		book("fiction", "J. R. R. Tolkien", "The Lord of the Rings", 22.99, "0-395-19395-8"),
	)
	bicycle := value.NewObject()
	bicycle.Set("color", "red")
	bicycle.Set("price", 19.95)

	store := value.NewObject()
	store.Set("book", books)
	store.Set("bicycle", bicycle)
	store.Set("a.b c", "a.b c")
	return store
}

func TestFilterComparisonRange(t *testing.T) {
	t.Parallel()
	p := MustCompile(`$.book[?(@.price>8 and @.price<9)].price`)
	got := p.Select(bookstoreDoc())
	assert.Equal(t, []any{8.95, 8.99}, got)
}

func TestDescentPrice(t *testing.T) {
	t.Parallel()
	p := MustCompile(`$..price`)
	got := p.Select(bookstoreDoc())
	assert.Equal(t, []any{8.95, 12.99, 8.99, 22.99, 19.95}, got)
}

func TestSortDescending(t *testing.T) {
	t.Parallel()
	p := MustCompile(`$.book[/(~price)].price`)
	got := p.Select(bookstoreDoc())
	assert.Equal(t, []any{22.99, 12.99, 8.99, 8.95}, got)
}

func TestSliceWithStep(t *testing.T) {
	t.Parallel()
	p := MustCompile(`$.book[0:-1:2].title`)
	got := p.Select(bookstoreDoc())
	assert.Equal(t, []any{"Sayings of the Century", "Moby Dick"}, got)
}

func TestFilterRegex(t *testing.T) {
	t.Parallel()
	p := MustCompile(`$.book[?(@.title =~ /.*Century/)].title`)
	got := p.Select(bookstoreDoc())
	assert.Equal(t, []any{"Sayings of the Century"}, got)
}

func TestQuotedKeyWithDotsAndSpaces(t *testing.T) {
	t.Parallel()
	p := MustCompile(`$['a.b c']`)
	got := p.Select(bookstoreDoc())
	assert.Equal(t, []any{"a.b c"}, got)
}

func TestUpdateWithTransform(t *testing.T) {
	t.Parallel()
	doc := bookstoreDoc()
	p := MustCompile(`$.book[*].price`)
	err := p.UpdateFunc(doc, func(v any) any {
		f, _ := value.AsFloat64(v)
		return f * 0.9
	})
	require.NoError(t, err)

	got := MustCompile(`$.book[0].price`).Select(doc)
	require.Len(t, got, 1)
	assert.InDelta(t, 8.055, got[0], 0.0001)
}

func TestPathRoundTrip(t *testing.T) {
	t.Parallel()
	doc := bookstoreDoc()
	p := MustCompile(`$..author`)
	ms, err := p.SelectMatches(doc)
	require.NoError(t, err)
	require.NotEmpty(t, ms)
	for _, m := range ms {
		reParsed, err := Compile(m.Path.String())
		require.NoError(t, err)
		assert.Equal(t, []any{m.Value}, reParsed.Select(doc))
	}
}

func TestCompileIdempotent(t *testing.T) {
	t.Parallel()
	a := MustCompile(`$.book[?(@.price>8)].title`)
	b := MustCompile(`$.book[?(@.price>8)].title`)
	assert.Equal(t, a.String(), b.String())
}

func TestSyntaxErrorOnBadExpression(t *testing.T) {
	t.Parallel()
	_, err := Compile(`book.price`)
	require.Error(t, err)
}

func TestSyntaxErrorOnTrailingDescent(t *testing.T) {
	t.Parallel()
	_, err := Compile(`$.book..`)
	require.Error(t, err)
}

func TestSyntaxErrorOnZeroSliceStep(t *testing.T) {
	t.Parallel()
	_, err := Compile(`$.book[0:2:0]`)
	require.Error(t, err)
}

func TestMissingKeyIsSilentSkip(t *testing.T) {
	t.Parallel()
	p := MustCompile(`$.nonexistent.child`)
	got := p.Select(bookstoreDoc())
	assert.Empty(t, got)
}
