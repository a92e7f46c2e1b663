package modelx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/modelx"
)

// TestParseRel tests parsing of relation kind wire names.
func TestParseRel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind string
		want modelx.Rel
	}{
		{"hasOne", modelx.HasOne},
		{"hasMany", modelx.HasMany},
		{"belongsTo", modelx.BelongsTo},
		{"referencesMany", modelx.ReferencesMany},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			rel, err := modelx.ParseRel(tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rel)
			assert.Equal(t, tt.kind, rel.String())
		})
	}
}

// TestParseRelUnknown tests that unsupported relation kinds are
// rejected with a RelationError.
func TestParseRelUnknown(t *testing.T) {
	t.Parallel()

	for _, kind := range []string{"", "hasOne ", "hasmany", "embedsOne", "hasAndBelongsToMany"} {
		rel, err := modelx.ParseRel(kind)
		assert.Equal(t, modelx.Unknown, rel)
		require.Error(t, err)
		assert.ErrorIs(t, err, modelx.ErrInvalidRelation)
	}
}

// TestRelString tests the String method on out-of-range values.
func TestRelString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "unknown", modelx.Unknown.String())
	assert.Equal(t, "Rel(42)", modelx.Rel(42).String())
}
