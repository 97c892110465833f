package availability

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/nikmy/intersched/pkg/errors"
)

// ValidationError lists every schema violation found in a submitted
// availability document.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "invalid availability: " + strings.Join(e.Violations, "; ")
}

var schema = mustCompileSchema()

func mustCompileSchema() *gojsonschema.Schema {
	hours := map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":    "integer",
			"minimum": MinHour,
			"maximum": MaxHour,
		},
	}

	days := make(map[string]any, len(Week))
	for _, d := range Week {
		days[string(d)] = hours
	}

	s, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(map[string]any{
		"type":                 "object",
		"properties":           days,
		"additionalProperties": false,
	}))
	if err != nil {
		panic(errors.WrapFail(err, "compile availability schema"))
	}
	return s
}

// Parse validates a submitted availability document and decodes it.
// Violations are reported as *ValidationError.
func Parse(raw []byte) (Availability, error) {
	if len(raw) == 0 {
		return nil, &ValidationError{Violations: []string{"availability is required"}}
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, &ValidationError{Violations: []string{"invalid json type"}}
	}

	if !result.Valid() {
		violations := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			violations = append(violations, describe(desc))
		}
		return nil, &ValidationError{Violations: violations}
	}

	var a Availability
	err = json.Unmarshal(raw, &a)
	if err != nil {
		return nil, &ValidationError{Violations: []string{err.Error()}}
	}
	return a.Normalize(), nil
}

func describe(desc gojsonschema.ResultError) string {
	switch desc.Type() {
	case "additional_property_not_allowed":
		return fmt.Sprintf("invalid day value %s, must be one of: %s", desc.Details()["property"], weekList())
	case "number_gte", "number_lte":
		return fmt.Sprintf("%s: invalid time, must be between %d and %d", desc.Field(), MinHour, MaxHour)
	default:
		return desc.String()
	}
}

func weekList() string {
	names := make([]string, 0, len(Week))
	for _, d := range Week {
		names = append(names, "'"+string(d)+"'")
	}
	return strings.Join(names, ", ")
}
