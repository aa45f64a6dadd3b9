package svgcheck

import (
	"embed"

	"github.com/cockroachdb/errors"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.json
var schemaFS embed.FS

const (
	iconManifestSchema = "schemas/devicon.schema.json"
	fontManifestSchema = "schemas/icomoon.schema.json"
)

// validateManifest checks data against one of the embedded schemas.
func validateManifest(path, schemaName string, data []byte) error {
	schema, err := schemaFS.ReadFile(schemaName)
	if err != nil {
		return errors.Wrapf(err, "load schema %s", schemaName)
	}

	schemaLoader := gojsonschema.NewBytesLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		// Malformed JSON ends up here as well as schema problems.
		return errors.Wrapf(err, "validate manifest %s", path)
	}

	if result.Valid() {
		return nil
	}

	manifestErr := &ManifestError{
		Path:   path,
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		manifestErr.Errors = append(manifestErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return manifestErr
}
