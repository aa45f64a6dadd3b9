package svgcheck

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// Icon is one entry of the icon manifest (devicon.json).
type Icon struct {
	Name     string       `json:"name"`
	Aliases  []IconAlias  `json:"aliases"`
	Versions IconVersions `json:"versions"`
}

// IconAlias exposes a version under another name in the font,
// e.g. {"base": "original", "alias": "colored"}.
type IconAlias struct {
	Base  string `json:"base"`
	Alias string `json:"alias"`
}

// IconVersions lists the published variants of an icon.
type IconVersions struct {
	SVG  []string `json:"svg"`  // "original", "plain-wordmark", ...
	Font []string `json:"font"` // Variants built into the icon font
}

// FontManifest is the subset of the icon font export (icomoon.json) needed to
// tell which icons are already built.
type FontManifest struct {
	Icons []FontGlyph `json:"icons"`
}

// FontGlyph is one glyph of the icon font.
type FontGlyph struct {
	Properties FontGlyphProperties `json:"properties"`
}

// FontGlyphProperties carries the glyph name, "<icon>-<version>".
type FontGlyphProperties struct {
	Name string `json:"name"`
}

// LoadIconManifest reads and schema-checks the icon manifest.
func LoadIconManifest(path string) ([]Icon, error) {
	data, err := readManifest(path, iconManifestSchema)
	if err != nil {
		return nil, err
	}

	var icons []Icon
	if err := json.Unmarshal(data, &icons); err != nil {
		return nil, errors.Wrapf(err, "decode icon manifest %s", path)
	}
	return icons, nil
}

// LoadFontManifest reads and schema-checks the icon font manifest.
func LoadFontManifest(path string) (*FontManifest, error) {
	data, err := readManifest(path, fontManifestSchema)
	if err != nil {
		return nil, err
	}

	var font FontManifest
	if err := json.Unmarshal(data, &font); err != nil {
		return nil, errors.Wrapf(err, "decode font manifest %s", path)
	}
	return &font, nil
}

func readManifest(path, schemaName string) ([]byte, error) {
	// #nosec G304 - path comes from trusted configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read manifest")
	}
	if err := validateManifest(path, schemaName, data); err != nil {
		return nil, err
	}
	return data, nil
}

// FindNewIcons returns the icons that have no glyph in the font yet, keeping
// manifest order. A glyph belongs to an icon when its name starts with
// "<icon name>-".
func FindNewIcons(icons []Icon, font *FontManifest) []Icon {
	var fresh []Icon
	for _, icon := range icons {
		if !inFont(icon, font) {
			fresh = append(fresh, icon)
		}
	}
	return fresh
}

func inFont(icon Icon, font *FontManifest) bool {
	if font == nil {
		return false
	}
	prefix := icon.Name + "-"
	for _, glyph := range font.Icons {
		if strings.HasPrefix(glyph.Properties.Name, prefix) {
			return true
		}
	}
	return false
}

// SVGPaths resolves the SVG file of every svg version of the given icons:
// <iconsDir>/<name>/<name>-<version>.svg. The icon folder and every file
// must exist.
func SVGPaths(icons []Icon, iconsDir string) ([]string, error) {
	var paths []string
	for _, icon := range icons {
		folder := filepath.Join(iconsDir, icon.Name)
		info, err := os.Stat(folder)
		if err != nil || !info.IsDir() {
			return nil, errors.Newf("invalid path, this is not a directory: %s", folder)
		}

		for _, version := range icon.Versions.SVG {
			path := filepath.Join(folder, icon.Name+"-"+version+".svg")
			if _, err := os.Stat(path); err != nil {
				return nil, errors.Newf("this path doesn't exist: %s", path)
			}
			paths = append(paths, path)
		}
	}
	return paths, nil
}
