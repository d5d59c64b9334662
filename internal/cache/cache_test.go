package cache

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/decaf/internal/diagnostics"
	"github.com/funvibe/decaf/internal/token"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cache.db")
	c, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestLookupMissIsNotAnError(t *testing.T) {
	c := openTestCache(t)
	diags, hit, err := c.Lookup(context.Background(), "foo.decaf", "abc")
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, diags)
}

func TestStoreThenLookupRoundTrips(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()
	want := []*diagnostics.Diagnostic{
		diagnostics.New(diagnostics.UndeclaredType, token.Position{Line: 3, Column: 5, LongString: "int x;\n    ^"}, "no declaration found for type 'Foo'"),
	}
	require.NoError(t, c.Store(ctx, "foo.decaf", "digest-1", want))

	got, hit, err := c.Lookup(ctx, "foo.decaf", "digest-1")
	require.NoError(t, err)
	require.True(t, hit)
	require.Len(t, got, 1)
	assert.Equal(t, want[0].Code, got[0].Code)
	assert.Equal(t, want[0].Message, got[0].Message)
	assert.Equal(t, want[0].Position, got[0].Position)
}

func TestLookupWithChangedDigestIsAMiss(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()
	require.NoError(t, c.Store(ctx, "foo.decaf", "digest-1", nil))

	_, hit, err := c.Lookup(ctx, "foo.decaf", "digest-2")
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestStoreOverwritesPreviousRow(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()
	require.NoError(t, c.Store(ctx, "foo.decaf", "digest-1", []*diagnostics.Diagnostic{
		diagnostics.New(diagnostics.TypeError, token.Position{Line: 1}, "first"),
	}))
	require.NoError(t, c.Store(ctx, "foo.decaf", "digest-2", nil))

	got, hit, err := c.Lookup(ctx, "foo.decaf", "digest-2")
	require.NoError(t, err)
	require.True(t, hit)
	assert.Empty(t, got)
}

func TestDigestIsStableForIdenticalSource(t *testing.T) {
	assert.Equal(t, Digest("int x;"), Digest("int x;"))
	assert.NotEqual(t, Digest("int x;"), Digest("int y;"))
}

func TestLastAnalyzedEmptyForUnknownFile(t *testing.T) {
	c := openTestCache(t)
	ts, err := c.LastAnalyzed(context.Background(), "missing.decaf")
	require.NoError(t, err)
	assert.Empty(t, ts)
}
