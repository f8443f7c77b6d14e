package tools

import "fmt"

// FieldKind enumerates the JSON value kinds a response field may declare.
type FieldKind string

const (
	KindString  FieldKind = "string"
	KindNumber  FieldKind = "number"
	KindBoolean FieldKind = "boolean"
	KindObject  FieldKind = "object"
	KindArray   FieldKind = "array"
)

// Field describes one expected top-level response field.
type Field struct {
	Kind     FieldKind
	Required bool
	// Default fills the field when it is absent and not required, so
	// downstream consumers never branch on absence. A typical default is
	// an empty slice for a pagination array.
	Default any
}

// Shape is the expected top-level structure of an API response.
type Shape map[string]Field

// SchemaError reports a response that does not match its expected shape.
type SchemaError struct {
	Path   string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("response schema mismatch at %q: %s", e.Path, e.Reason)
}

// Normalize checks raw against shape and returns a copy with defaults filled
// in for absent optional fields. Fields not named by the shape pass through
// untouched. Normalize performs no I/O and is deterministic.
func Normalize(raw any, shape Shape) (map[string]any, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, &SchemaError{Path: ".", Reason: "expected a JSON object"}
	}

	out := make(map[string]any, len(obj)+len(shape))
	for k, v := range obj {
		out[k] = v
	}

	for name, field := range shape {
		value, present := obj[name]
		if !present {
			if field.Required {
				return nil, &SchemaError{Path: name, Reason: "required field is missing"}
			}
			if field.Default != nil {
				out[name] = field.Default
			}
			continue
		}
		if !kindMatches(field.Kind, value) {
			return nil, &SchemaError{
				Path:   name,
				Reason: fmt.Sprintf("expected %s, got %T", field.Kind, value),
			}
		}
	}
	return out, nil
}

func kindMatches(kind FieldKind, value any) bool {
	// JSON null satisfies any declared kind; Databricks omits and nulls
	// optional fields interchangeably.
	if value == nil {
		return true
	}
	switch kind {
	case KindString:
		_, ok := value.(string)
		return ok
	case KindBoolean:
		_, ok := value.(bool)
		return ok
	case KindNumber:
		_, ok := value.(float64)
		return ok
	case KindObject:
		_, ok := value.(map[string]any)
		return ok
	case KindArray:
		_, ok := value.([]any)
		return ok
	}
	return false
}
