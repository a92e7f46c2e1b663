package modelx_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/modelx"
)

// TestNotFoundError tests the NotFoundError type and its sentinel
// bridging.
func TestNotFoundError(t *testing.T) {
	t.Parallel()

	err := modelx.NewNotFoundError("User")

	t.Run("message", func(t *testing.T) {
		assert.Equal(t, `modelx: model "User" not found`, err.Error())
	})

	t.Run("name", func(t *testing.T) {
		assert.Equal(t, "User", err.Name())
	})

	t.Run("matches_sentinel", func(t *testing.T) {
		assert.ErrorIs(t, err, modelx.ErrModelNotFound)
	})

	t.Run("is_not_found", func(t *testing.T) {
		assert.True(t, modelx.IsNotFound(err))
		assert.True(t, modelx.IsNotFound(modelx.ErrModelNotFound))
		assert.False(t, modelx.IsNotFound(nil))
		assert.False(t, modelx.IsNotFound(errors.New("other")))
	})
}

// TestDefinitionError tests the DefinitionError type.
func TestDefinitionError(t *testing.T) {
	t.Parallel()

	cause := errors.New("unexpected end of JSON input")
	err := modelx.NewDefinitionError("User", "models/user.json", "malformed JSON document", cause)

	t.Run("message", func(t *testing.T) {
		msg := err.Error()
		assert.Contains(t, msg, "modelx: definition error")
		assert.Contains(t, msg, "for model User")
		assert.Contains(t, msg, "models/user.json")
		assert.Contains(t, msg, "malformed JSON document")
		assert.Contains(t, msg, cause.Error())
	})

	t.Run("unwrap", func(t *testing.T) {
		assert.ErrorIs(t, err, cause)
	})

	t.Run("matches_sentinel", func(t *testing.T) {
		assert.ErrorIs(t, err, modelx.ErrInvalidDefinition)
	})

	t.Run("is_definition_error", func(t *testing.T) {
		assert.True(t, modelx.IsDefinitionError(err))
		assert.False(t, modelx.IsDefinitionError(cause))
	})

	t.Run("empty_fields_omitted", func(t *testing.T) {
		bare := modelx.NewDefinitionError("", "", "", nil)
		assert.Equal(t, "modelx: definition error", bare.Error())
	})
}

// TestRelationError tests the RelationError type.
func TestRelationError(t *testing.T) {
	t.Parallel()

	err := modelx.NewRelationError("User", "customer", "hasManyThrough", "unsupported relation kind", nil)

	t.Run("message", func(t *testing.T) {
		msg := err.Error()
		assert.Contains(t, msg, "modelx: relation error")
		assert.Contains(t, msg, "on relation customer")
		assert.Contains(t, msg, "of model User")
		assert.Contains(t, msg, "kind: hasManyThrough")
		assert.Contains(t, msg, "unsupported relation kind")
	})

	t.Run("matches_sentinel", func(t *testing.T) {
		assert.ErrorIs(t, err, modelx.ErrInvalidRelation)
	})

	t.Run("is_relation_error", func(t *testing.T) {
		assert.True(t, modelx.IsRelationError(err))
	})

	t.Run("unwrap_cause", func(t *testing.T) {
		cause := errors.New("boom")
		wrapped := modelx.NewRelationError("User", "customer", "hasOne", "apply failed", cause)
		require.ErrorIs(t, wrapped, cause)
	})
}

// TestMixinError tests the MixinError type.
func TestMixinError(t *testing.T) {
	t.Parallel()

	err := modelx.NewMixinError("User", "timestamps", "mixin is not registered", nil)

	t.Run("message", func(t *testing.T) {
		msg := err.Error()
		assert.Contains(t, msg, "modelx: mixin error")
		assert.Contains(t, msg, "on mixin timestamps")
		assert.Contains(t, msg, "of model User")
		assert.Contains(t, msg, "mixin is not registered")
	})

	t.Run("matches_sentinel", func(t *testing.T) {
		assert.ErrorIs(t, err, modelx.ErrInvalidMixin)
	})

	t.Run("is_mixin_error", func(t *testing.T) {
		assert.True(t, modelx.IsMixinError(err))
	})
}
