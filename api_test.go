package jsonpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConvenience(t *testing.T) {
	t.Parallel()
	got, err := Parse(`$.bicycle.color`, bookstoreDoc())
	require.NoError(t, err)
	assert.Equal(t, []any{"red"}, got)
}

func TestSearchPathMode(t *testing.T) {
	t.Parallel()
	got, err := Search(`$.bicycle.color`, bookstoreDoc(), PathMode)
	require.NoError(t, err)
	assert.Equal(t, []any{"$['bicycle']['color']"}, got)
}

func TestSearchValueMode(t *testing.T) {
	t.Parallel()
	got, err := Search(`$.bicycle.color`, bookstoreDoc(), ValueMode)
	require.NoError(t, err)
	assert.Equal(t, []any{"red"}, got)
}

func TestWithMaxDepthLimitsDescent(t *testing.T) {
	t.Parallel()
	p, err := CompileWithOptions(`$..price`, WithMaxDepth(1))
	require.NoError(t, err)
	got := p.Select(bookstoreDoc())
	// Depth 1 below the document root reaches the store's direct
	// members (book, bicycle, "a.b c") but no deeper, so only
	// bicycle's own "price" member is visible; each book object is two
	// levels down (book, then the element) and is never visited, so no
	// book's "price" is reached.
	assert.Equal(t, []any{19.95}, got)
}

func TestWithMaxDepthUnlimitedByDefault(t *testing.T) {
	t.Parallel()
	p := MustCompile(`$..price`)
	got := p.Select(bookstoreDoc())
	assert.Equal(t, []any{8.95, 12.99, 8.99, 22.99, 19.95}, got)
}
