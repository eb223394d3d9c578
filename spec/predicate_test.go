package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathlang/jsonpath/value"
)

func TestMembershipAgainstArray(t *testing.T) {
	t.Parallel()
	m := &Membership{
		Needle:   NewLiteral("red"),
		Haystack: NewLiteral(value.NewArray("red", "green")),
	}
	ok, err := m.Eval(nil, nil)
	require.NoError(t, err)
	assert.True(t, ok)

	m.Needle = NewLiteral("blue")
	ok, err = m.Eval(nil, nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMembershipAgainstObjectTestsKeys(t *testing.T) {
	t.Parallel()
	haystack := value.NewObject()
	haystack.Set("a", int64(1))
	haystack.Set("b", int64(2))

	m := &Membership{
		Needle:   NewLiteral("a"),
		Haystack: NewLiteral(haystack),
	}
	ok, err := m.Eval(nil, nil)
	require.NoError(t, err)
	assert.True(t, ok)

	m.Needle = NewLiteral("z")
	ok, err = m.Eval(nil, nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMembershipAgainstStringTestsSubstring(t *testing.T) {
	t.Parallel()
	m := &Membership{
		Needle:   NewLiteral("cde"),
		Haystack: NewLiteral("abcdefg"),
	}
	ok, err := m.Eval(nil, nil)
	require.NoError(t, err)
	assert.True(t, ok)

	m.Needle = NewLiteral("xyz")
	ok, err = m.Eval(nil, nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMembershipNegate(t *testing.T) {
	t.Parallel()
	m := &Membership{
		Needle:   NewLiteral("xyz"),
		Haystack: NewLiteral("abcdefg"),
		Negate:   true,
	}
	ok, err := m.Eval(nil, nil)
	require.NoError(t, err)
	assert.True(t, ok)
}
