package manifest_test

import (
	"testing"

	schematicerrors "github.com/kdeps/schematics/pkg/errors"
	"github.com/kdeps/schematics/pkg/manifest"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const manifestPath = "foo/package.json"

func writeManifest(t *testing.T, fs afero.Fs, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, manifestPath, []byte(content), 0o644))
}

func TestLoadMissingManifest(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := manifest.Load(fs, manifestPath)
	require.Error(t, err)
	assert.ErrorIs(t, err, schematicerrors.ErrMissingManifest)
}

func TestLoadInvalidManifest(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"Empty", ""},
		{"Truncated", `{"name": "foo"`},
		{"Array", `["foo"]`},
		{"String", `"foo"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			writeManifest(t, fs, tt.content)

			_, err := manifest.Load(fs, manifestPath)
			require.Error(t, err)
			assert.ErrorIs(t, err, schematicerrors.ErrInvalidManifest)
		})
	}
}

func TestEnsureDependencyOnEmptyObject(t *testing.T) {
	m, err := manifest.Parse(manifestPath, []byte("{}"))
	require.NoError(t, err)

	changed, err := m.EnsureDependency(manifest.DevDependencies, "nativescript-dev-sass", "^1.6.0")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, `{"devDependencies":{"nativescript-dev-sass":"^1.6.0"}}`, string(m.Bytes()))

	version, ok := m.Dependency(manifest.DevDependencies, "nativescript-dev-sass")
	assert.True(t, ok)
	assert.Equal(t, "^1.6.0", version)
}

func TestEnsureDependencyIsIdempotent(t *testing.T) {
	m, err := manifest.Parse(manifestPath, []byte(`{"devDependencies":{"nativescript-dev-sass":"~1.0.0"}}`))
	require.NoError(t, err)
	before := m.Bytes()

	changed, err := m.EnsureDependency(manifest.DevDependencies, "nativescript-dev-sass", "^1.6.0")
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, before, m.Bytes())

	version, _ := m.Dependency(manifest.DevDependencies, "nativescript-dev-sass")
	assert.Equal(t, "~1.0.0", version)
}

func TestEnsureDependencyPreservesExistingFields(t *testing.T) {
	original := `{
    "name": "foo",
    "dependencies": {
        "tns-core-modules": "~4.2.0"
    },
    "devDependencies": {
        "typescript": "~2.7.2"
    }
}
`
	m, err := manifest.Parse(manifestPath, []byte(original))
	require.NoError(t, err)

	changed, err := m.EnsureDependency(manifest.DevDependencies, "nativescript-dev-sass", "^1.6.0")
	require.NoError(t, err)
	assert.True(t, changed)

	expected := `{
    "name": "foo",
    "dependencies": {
        "tns-core-modules": "~4.2.0"
    },
    "devDependencies": {
        "typescript": "~2.7.2",
        "nativescript-dev-sass": "^1.6.0"
    }
}
`
	assert.Equal(t, expected, string(m.Bytes()))
	assert.Equal(t, "foo", m.Name())
}

func TestEnsureDependencyKeepsUntouchedFormatting(t *testing.T) {
	tests := []struct {
		name     string
		original string
		expected string
	}{
		{
			name: "AppendsSection",
			original: `{
  "name": "foo",
  "files": [
    "a",
    "b"
  ],
  "scripts": {"build": "tns build"}
}
`,
			expected: `{
  "name": "foo",
  "files": [
    "a",
    "b"
  ],
  "scripts": {"build": "tns build"},
  "devDependencies": {
    "nativescript-dev-sass": "^1.6.0"
  }
}
`,
		},
		{
			name: "FillsEmptySection",
			original: `{
  "devDependencies": {},
  "files": ["a", "b"],
  "scripts": {"build": "tns build"}
}`,
			expected: `{
  "devDependencies": {
    "nativescript-dev-sass": "^1.6.0"
  },
  "files": ["a", "b"],
  "scripts": {"build": "tns build"}
}`,
		},
		{
			name: "InlineSectionStaysInline",
			original: `{
  "devDependencies": {"typescript": "~2.7.2"},
  "files": [
    "a"
  ]
}
`,
			expected: `{
  "devDependencies": {"typescript": "~2.7.2","nativescript-dev-sass":"^1.6.0"},
  "files": [
    "a"
  ]
}
`,
		},
		{
			name:     "TabIndented",
			original: "{\n\t\"name\": \"foo\",\n\t\"devDependencies\": {\n\t\t\"typescript\": \"~2.7.2\"\n\t}\n}\n",
			expected: "{\n\t\"name\": \"foo\",\n\t\"devDependencies\": {\n\t\t\"typescript\": \"~2.7.2\",\n\t\t\"nativescript-dev-sass\": \"^1.6.0\"\n\t}\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := manifest.Parse(manifestPath, []byte(tt.original))
			require.NoError(t, err)

			changed, err := m.EnsureDependency(manifest.DevDependencies, "nativescript-dev-sass", "^1.6.0")
			require.NoError(t, err)
			assert.True(t, changed)
			assert.Equal(t, tt.expected, string(m.Bytes()))
		})
	}
}

func TestEnsureDependencyListedInOtherSection(t *testing.T) {
	original := `{"dependencies":{"nativescript-dev-sass":"^1.5.0"}}`
	m, err := manifest.Parse(manifestPath, []byte(original))
	require.NoError(t, err)

	changed, err := m.EnsureDependency(manifest.DevDependencies, "nativescript-dev-sass", "^1.6.0")
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, original, string(m.Bytes()))

	section, ok := m.DependencySection(manifest.DevDependencies, "nativescript-dev-sass")
	assert.True(t, ok)
	assert.Equal(t, manifest.Dependencies, section)

	_, ok = m.DependencySection(manifest.DevDependencies, "typescript")
	assert.False(t, ok)
}

func TestEnsureDependencyDottedName(t *testing.T) {
	m, err := manifest.Parse(manifestPath, []byte("{}"))
	require.NoError(t, err)

	changed, err := m.EnsureDependency(manifest.DevDependencies, "lodash.merge", "^4.6.2")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, m.HasDependency(manifest.DevDependencies, "lodash.merge"))
	assert.Equal(t, `{"devDependencies":{"lodash.merge":"^4.6.2"}}`, string(m.Bytes()))
}

func TestEnsureDependencySectionNotObject(t *testing.T) {
	m, err := manifest.Parse(manifestPath, []byte(`{"devDependencies":"nope"}`))
	require.NoError(t, err)

	_, err = m.EnsureDependency(manifest.DevDependencies, "nativescript-dev-sass", "^1.6.0")
	require.Error(t, err)
	assert.True(t, schematicerrors.HasErrorCode(err, schematicerrors.ErrCodeManifestUpdate))

	_, err = m.EnsureDependency("", "x", "1")
	assert.ErrorIs(t, err, schematicerrors.ErrInvalidOptions)
}

func TestSave(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeManifest(t, fs, "{}")

	m, err := manifest.Load(fs, manifestPath)
	require.NoError(t, err)
	_, err = m.EnsureDependency(manifest.DevDependencies, "nativescript-dev-sass", "^1.6.0")
	require.NoError(t, err)
	require.NoError(t, m.Save(fs))

	content, err := afero.ReadFile(fs, manifestPath)
	require.NoError(t, err)
	assert.Equal(t, `{"devDependencies":{"nativescript-dev-sass":"^1.6.0"}}`, string(content))
}

func TestSaveReadOnly(t *testing.T) {
	base := afero.NewMemMapFs()
	writeManifest(t, base, "{}")
	fs := afero.NewReadOnlyFs(base)

	m, err := manifest.Load(fs, manifestPath)
	require.NoError(t, err)
	err = m.Save(fs)
	require.Error(t, err)
	assert.True(t, schematicerrors.HasErrorCode(err, schematicerrors.ErrCodeFileOperations))
}
