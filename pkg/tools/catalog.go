package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// APICaller performs one authenticated remote API call. *databricks.Client
// satisfies it; tests substitute their own.
type APICaller interface {
	Do(ctx context.Context, method, path string, query url.Values, body any) (any, error)
}

// Operation is one row of the declarative API catalog. Each row maps a tool
// name to an HTTP operation; a single generic handler interprets the rows,
// so adding an endpoint means adding data, not code.
type Operation struct {
	Name        string
	Description string
	Category    string
	Method      string
	// Path may contain {placeholder} segments; each placeholder must be
	// backed by a required parameter of the same name.
	Path   string
	Params ParamSchema
	// Returns, when set, is enforced on the raw response and fills
	// documented defaults for absent optional fields.
	Returns Shape
	// ReturnsDoc describes the result for the tool metadata surface.
	ReturnsDoc  string
	LongRunning bool
}

var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z0-9_]+)\}`)

// placeholders returns the placeholder names appearing in a path template.
func placeholders(path string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(path, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

// handler builds the generic handler for one catalog row. Path placeholders
// are substituted from arguments; remaining arguments travel as query
// parameters for GET/DELETE and as the JSON body otherwise.
func (op Operation) handler(client APICaller) Handler {
	pathParams := placeholders(op.Path)
	return func(ctx context.Context, args map[string]any) (any, error) {
		rest := make(map[string]any, len(args))
		for k, v := range args {
			rest[k] = v
		}

		path := op.Path
		for _, name := range pathParams {
			value, ok := rest[name]
			if !ok {
				return nil, fmt.Errorf("missing path parameter %q", name)
			}
			path = strings.ReplaceAll(path, "{"+name+"}", url.PathEscape(queryValue(value)))
			delete(rest, name)
		}

		var query url.Values
		var body any
		if op.Method == http.MethodGet || op.Method == http.MethodDelete {
			if len(rest) > 0 {
				query = url.Values{}
				for name, value := range rest {
					query.Set(name, queryValue(value))
				}
			}
		} else if len(rest) > 0 {
			body = rest
		}

		raw, err := client.Do(ctx, op.Method, path, query, body)
		if err != nil {
			return nil, err
		}
		if op.Returns != nil {
			return Normalize(raw, op.Returns)
		}
		return raw, nil
	}
}

// queryValue renders an argument as a query-string or path value. Integral
// floats render without an exponent; composite values fall back to JSON.
func queryValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		if v == math.Trunc(v) && math.Abs(v) < 1e15 {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(encoded)
	}
}

// Register populates the registry from the catalog, filtered to the given
// categories. An empty filter registers everything.
func Register(registry *Registry, client APICaller, categories ...string) error {
	enabled := make(map[string]bool, len(categories))
	for _, c := range categories {
		enabled[strings.ToLower(c)] = true
	}
	for _, op := range Catalog() {
		if len(enabled) > 0 && !enabled[op.Category] {
			continue
		}
		err := registry.Register(Descriptor{
			Name:        op.Name,
			Description: fmt.Sprintf("%s (%s %s)", op.Description, op.Method, op.Path),
			Category:    op.Category,
			Params:      op.Params,
			Returns:     op.ReturnsDoc,
			LongRunning: op.LongRunning,
			Handler:     op.handler(client),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func req(name string, typ ParamType, desc string) Param {
	return Param{Name: name, Type: typ, Description: desc, Required: true}
}

func opt(name string, typ ParamType, desc string) Param {
	return Param{Name: name, Type: typ, Description: desc}
}

func listShape(field string) Shape {
	return Shape{field: {Kind: KindArray, Default: []any{}}}
}
