package definition_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/modelx"
	"github.com/syssam/modelx/definition"
)

// TestDecode tests decoding of the raw document form.
func TestDecode(t *testing.T) {
	t.Parallel()

	doc, err := definition.Decode(map[string]any{
		"name":  "User",
		"base":  "PersistedModel",
		"mysql": map[string]any{"table": "user"},
		"acls":  []any{map[string]any{"principalType": "ROLE"}},
		"properties": map[string]any{
			"emailVerified": map[string]any{"type": "boolean"},
		},
		"relations": map[string]any{
			"customer": map[string]any{
				"type":       "hasOne",
				"model":      "Customer",
				"foreignKey": "customerId",
			},
		},
		"mixins": map[string]any{
			"timestamps": true,
		},
	})
	require.NoError(t, err)

	t.Run("reserved_keys_dropped", func(t *testing.T) {
		assert.NotContains(t, doc.Settings, "name")
		assert.NotContains(t, doc.Settings, "base")
	})

	t.Run("properties", func(t *testing.T) {
		require.Contains(t, doc.Properties, "emailVerified")
		assert.Equal(t, "boolean", doc.Properties["emailVerified"].Type())
	})

	t.Run("relation_spec_split", func(t *testing.T) {
		spec, ok := doc.Relations["customer"]
		require.True(t, ok)
		assert.Equal(t, "hasOne", spec.Type)
		assert.Equal(t, "Customer", spec.Model)
		assert.Equal(t, map[string]any{"foreignKey": "customerId"}, spec.Options)
	})

	t.Run("mixins", func(t *testing.T) {
		assert.Equal(t, map[string]any{"timestamps": true}, doc.Mixins)
	})

	t.Run("residual_settings", func(t *testing.T) {
		assert.Equal(t, map[string]any{"table": "user"}, doc.Settings["mysql"])
		assert.Contains(t, doc.Settings, "acls")
		assert.Equal(t, []string{"acls", "mysql"}, doc.SettingNames())
	})
}

// TestDecodeMalformedSections tests that structural sections must be
// mappings.
func TestDecodeMalformedSections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  map[string]any
	}{
		{"properties_not_mapping", map[string]any{"properties": []any{"a"}}},
		{"property_not_mapping", map[string]any{"properties": map[string]any{"a": "string"}}},
		{"relations_not_mapping", map[string]any{"relations": 7}},
		{"relation_not_mapping", map[string]any{"relations": map[string]any{"r": "hasOne"}}},
		{"mixins_not_mapping", map[string]any{"mixins": []any{"timestamps"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := definition.Decode(tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, modelx.ErrInvalidDefinition)
		})
	}
}

// TestLoadJSON tests loading a JSON definition file.
func TestLoadJSON(t *testing.T) {
	t.Parallel()

	doc, err := definition.Load(filepath.Join("testdata", "user.json"))
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"table": "user"}, doc.Settings["mysql"])
	assert.Equal(t, []any{"password"}, doc.Settings["hidden"])
	assert.Equal(t, "boolean", doc.Properties["emailVerified"].Type())
	assert.Equal(t, "string", doc.Properties["realm"].Type())
	assert.Equal(t, "Customer", doc.Relations["customer"].Model)
	assert.Equal(t, map[string]any{"timestamps": true}, doc.Mixins)
	assert.NotContains(t, doc.Settings, "name")
	assert.NotContains(t, doc.Settings, "base")
}

// TestLoadYAML tests loading a YAML definition file.
func TestLoadYAML(t *testing.T) {
	t.Parallel()

	doc, err := definition.Load(filepath.Join("testdata", "access-token.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 1209600, doc.Settings["ttl"])
	assert.Equal(t, "string", doc.Properties["scopes"].Type())
	spec := doc.Relations["user"]
	assert.Equal(t, "belongsTo", spec.Type)
	assert.Equal(t, "User", spec.Model)
	assert.Equal(t, map[string]any{"foreignKey": "userId"}, spec.Options)
}

// TestLoadMissingFile tests that a missing definition file is fatal.
func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := definition.Load(filepath.Join("testdata", "ghost.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, modelx.ErrInvalidDefinition)
	assert.True(t, modelx.IsDefinitionError(err))
}

// TestLoadMalformedFile tests that a malformed definition file is
// fatal and carries the file path.
func TestLoadMalformedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.json")
	writeFile(t, path, "{not json")

	_, err := definition.Load(path)
	require.Error(t, err)
	var defErr *modelx.DefinitionError
	require.ErrorAs(t, err, &defErr)
	assert.Equal(t, path, defErr.Path)
}

// TestParseFormats tests format selection by extension.
func TestParseFormats(t *testing.T) {
	t.Parallel()

	t.Run("yaml", func(t *testing.T) {
		doc, err := definition.Parse([]byte("ttl: 30"), ".yml")
		require.NoError(t, err)
		assert.Equal(t, 30, doc.Settings["ttl"])
	})

	t.Run("json_default", func(t *testing.T) {
		doc, err := definition.Parse([]byte(`{"ttl": 30}`), "")
		require.NoError(t, err)
		assert.Equal(t, float64(30), doc.Settings["ttl"])
	})

	t.Run("malformed_yaml", func(t *testing.T) {
		_, err := definition.Parse([]byte("ttl: [unclosed"), ".yaml")
		require.Error(t, err)
		assert.ErrorIs(t, err, modelx.ErrInvalidDefinition)
	})
}
