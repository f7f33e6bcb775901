// internal/api/schema.go
package api

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"jobswipe-client/internal/common/errors"
)

// Response-shape schemas. A 2xx body that decodes but fails its schema
// is treated the same as an undecodable one.
const applyResponseSchema = `{
	"type": "object",
	"properties": {
		"status": {"type": "string", "enum": ["success", "error"]},
		"message": {"type": "string"},
		"errors": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"error_type": {"type": "string"},
					"field_name": {"type": "string"},
					"error_message": {"type": "string"}
				},
				"required": ["error_type"]
			}
		}
	},
	"required": ["status"]
}`

const profileResponseSchema = `{
	"type": "object",
	"properties": {
		"user_id": {"type": "string"},
		"name": {"type": "string"},
		"email": {"type": "string"},
		"phone": {"type": "string"},
		"graduation_year": {"type": "string"},
		"degree": {"type": "string"},
		"resume": {"type": "string"},
		"answers": {"type": "object"},
		"job_alerts": {"type": "boolean"},
		"auto_apply": {"type": "boolean"}
	},
	"required": ["user_id"]
}`

// validateSchema checks raw JSON against a schema and converts the
// first violation into a MALFORMED_RESPONSE error.
func validateSchema(label, schema string, raw []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return errors.NewMalformedResponseError(fmt.Sprintf("endpoint: %s, error: %s", label, err.Error()))
	}
	if !result.Valid() {
		return errors.NewMalformedResponseError(fmt.Sprintf("endpoint: %s, schema: %s", label, result.Errors()[0].String()))
	}
	return nil
}
