package svgcheck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const deviconJSON = `[
  {"name": "go", "aliases": [{"base": "original", "alias": "original-wordmark"}], "versions": {"svg": ["original", "plain"], "font": ["plain"]}},
  {"name": "gopher", "versions": {"svg": ["original"], "font": []}},
  {"name": "rust", "versions": {"svg": ["original", "plain"], "font": ["plain"]}}
]`

const icomoonJSON = `{
  "icons": [
    {"properties": {"name": "go-plain"}},
    {"properties": {"name": "go-line"}}
  ]
}`

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadManifests(t *testing.T) {
	dir := t.TempDir()

	icons, err := LoadIconManifest(writeFile(t, filepath.Join(dir, "devicon.json"), deviconJSON))
	require.NoError(t, err)
	require.Len(t, icons, 3)
	assert.Equal(t, "go", icons[0].Name)
	assert.Equal(t, []string{"original", "plain"}, icons[0].Versions.SVG)
	assert.Equal(t, []string{"plain"}, icons[0].Versions.Font)
	assert.Equal(t, []IconAlias{{Base: "original", Alias: "original-wordmark"}}, icons[0].Aliases)
	assert.Empty(t, icons[1].Aliases)

	font, err := LoadFontManifest(writeFile(t, filepath.Join(dir, "icomoon.json"), icomoonJSON))
	require.NoError(t, err)
	require.Len(t, font.Icons, 2)
	assert.Equal(t, "go-plain", font.Icons[0].Properties.Name)
}

func TestLoadIconManifest_SchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{
			name:    "missing versions",
			content: `[{"name": "go"}]`,
			field:   "0",
		},
		{
			name:    "svg versions not a list",
			content: `[{"name": "go", "versions": {"svg": "original"}}]`,
			field:   "0.versions.svg",
		},
		{
			name:    "name with path separator",
			content: `[{"name": "../go", "versions": {"svg": []}}]`,
			field:   "0.name",
		},
		{
			name:    "alias without target",
			content: `[{"name": "go", "aliases": [{"base": "original"}], "versions": {"svg": []}}]`,
			field:   "0.aliases.0",
		},
		{
			name:    "object instead of list",
			content: `{"name": "go"}`,
			field:   "(root)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, filepath.Join(t.TempDir(), "devicon.json"), tt.content)

			_, err := LoadIconManifest(path)
			require.Error(t, err)

			var merr *ManifestError
			require.True(t, errors.As(err, &merr))
			assert.Equal(t, path, merr.Path)
			require.NotEmpty(t, merr.Errors)
			assert.Equal(t, tt.field, merr.Errors[0].Field)
			assert.Contains(t, err.Error(), "is invalid")
		})
	}
}

func TestLoadFontManifest_SchemaViolation(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "icomoon.json"), `{"icons": [{"properties": {}}]}`)

	_, err := LoadFontManifest(path)

	var merr *ManifestError
	require.True(t, errors.As(err, &merr))
	assert.Equal(t, "icons.0.properties", merr.Errors[0].Field)
}

func TestLoadManifest_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadIconManifest(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadFontManifest(writeFile(t, filepath.Join(dir, "broken.json"), `{"icons": [`))
	require.Error(t, err)
	var merr *ManifestError
	assert.False(t, errors.As(err, &merr))
}

func TestFindNewIcons(t *testing.T) {
	icons := []Icon{{Name: "go"}, {Name: "gopher"}, {Name: "rust"}}
	font := &FontManifest{Icons: []FontGlyph{
		{Properties: FontGlyphProperties{Name: "go-plain"}},
		{Properties: FontGlyphProperties{Name: "rust-plain"}},
	}}

	fresh := FindNewIcons(icons, font)
	require.Len(t, fresh, 1)
	assert.Equal(t, "gopher", fresh[0].Name)
}

func TestFindNewIcons_PrefixNeedsDash(t *testing.T) {
	// "go" must not count as built because "gopher-original" exists.
	icons := []Icon{{Name: "go"}}
	font := &FontManifest{Icons: []FontGlyph{{Properties: FontGlyphProperties{Name: "gopher-original"}}}}

	assert.Equal(t, icons, FindNewIcons(icons, font))
}

func TestFindNewIcons_EmptyFont(t *testing.T) {
	icons := []Icon{{Name: "go"}, {Name: "rust"}}
	assert.Equal(t, icons, FindNewIcons(icons, &FontManifest{}))
	assert.Equal(t, icons, FindNewIcons(icons, nil))
	assert.Empty(t, FindNewIcons(nil, &FontManifest{}))
}

func TestSVGPaths(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "go", "go-original.svg"), validSVG)
	writeFile(t, filepath.Join(dir, "go", "go-plain.svg"), validSVG)
	writeFile(t, filepath.Join(dir, "rust", "rust-original.svg"), validSVG)

	icons := []Icon{
		{Name: "go", Versions: IconVersions{SVG: []string{"original", "plain"}}},
		{Name: "rust", Versions: IconVersions{SVG: []string{"original"}}},
	}

	paths, err := SVGPaths(icons, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "go", "go-original.svg"),
		filepath.Join(dir, "go", "go-plain.svg"),
		filepath.Join(dir, "rust", "rust-original.svg"),
	}, paths)
}

func TestSVGPaths_Errors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "go", "go-original.svg"), validSVG)
	writeFile(t, filepath.Join(dir, "file-not-dir"), "")

	t.Run("missing folder", func(t *testing.T) {
		_, err := SVGPaths([]Icon{{Name: "rust", Versions: IconVersions{SVG: []string{"original"}}}}, dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a directory: "+filepath.Join(dir, "rust"))
	})

	t.Run("folder is a file", func(t *testing.T) {
		_, err := SVGPaths([]Icon{{Name: "file-not-dir"}}, dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a directory")
	})

	t.Run("missing version file", func(t *testing.T) {
		_, err := SVGPaths([]Icon{{Name: "go", Versions: IconVersions{SVG: []string{"original", "line"}}}}, dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "doesn't exist: "+filepath.Join(dir, "go", "go-line.svg"))
	})
}
