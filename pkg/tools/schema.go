package tools

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-multierror"
)

// ParamType enumerates the JSON types a tool parameter may declare.
type ParamType string

const (
	TypeString  ParamType = "string"
	TypeInteger ParamType = "integer"
	TypeNumber  ParamType = "number"
	TypeBoolean ParamType = "boolean"
	TypeObject  ParamType = "object"
	TypeArray   ParamType = "array"
)

// Param describes one tool parameter.
type Param struct {
	Name        string
	Type        ParamType
	Description string
	Required    bool
	// Default is substituted when an optional parameter is absent. Nil
	// means the parameter is simply omitted from the call.
	Default any
}

// ParamSchema is an ordered parameter list; order is preserved when the
// schema is advertised over the protocol.
type ParamSchema []Param

// ValidationError aggregates field-level findings for one tool call.
type ValidationError struct {
	Tool     string
	Findings error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid arguments for tool %q: %v", e.Tool, e.Findings)
}

func (e *ValidationError) Unwrap() error { return e.Findings }

// Validate checks args against the schema and returns a normalized copy:
// required fields present, types satisfied, unknown fields rejected, and
// defaults filled in for absent optional parameters. The input map is not
// mutated.
func (s ParamSchema) Validate(tool string, args map[string]any) (map[string]any, error) {
	var findings *multierror.Error

	byName := make(map[string]Param, len(s))
	for _, p := range s {
		byName[p.Name] = p
	}

	for name := range args {
		if _, ok := byName[name]; !ok {
			findings = multierror.Append(findings, fmt.Errorf("unknown parameter %q", name))
		}
	}

	validated := make(map[string]any, len(args))
	for _, p := range s {
		value, present := args[p.Name]
		if !present {
			if p.Required {
				findings = multierror.Append(findings, fmt.Errorf("missing required parameter %q", p.Name))
			} else if p.Default != nil {
				validated[p.Name] = p.Default
			}
			continue
		}
		if err := checkType(p, value); err != nil {
			findings = multierror.Append(findings, err)
			continue
		}
		validated[p.Name] = value
	}

	if err := findings.ErrorOrNil(); err != nil {
		return nil, &ValidationError{Tool: tool, Findings: err}
	}
	return validated, nil
}

// checkType verifies a decoded JSON value against the declared type. JSON
// decoding yields float64 for every number, so integers are accepted as
// integral floats.
func checkType(p Param, value any) error {
	ok := false
	switch p.Type {
	case TypeString:
		_, ok = value.(string)
	case TypeBoolean:
		_, ok = value.(bool)
	case TypeNumber:
		ok = isJSONNumber(value)
	case TypeInteger:
		if f, isNum := asFloat(value); isNum {
			ok = f == math.Trunc(f)
		}
	case TypeObject:
		_, ok = value.(map[string]any)
	case TypeArray:
		_, ok = value.([]any)
	}
	if !ok {
		return fmt.Errorf("parameter %q must be of type %s", p.Name, p.Type)
	}
	return nil
}

func isJSONNumber(value any) bool {
	_, ok := asFloat(value)
	return ok
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
