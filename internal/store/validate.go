package store

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/nibzard/taskdeck/internal/task"
)

//go:embed tasks.schema.json
var tasksSchema []byte

// ValidationError represents a validation error with context.
type ValidationError struct {
	Path string // JSON path to the error location
	Err  error  // Underlying error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationResult contains validation results.
type ValidationResult struct {
	Valid      bool
	Errors     []error
	Warnings   []string
	UsedSchema bool // true if JSON Schema validation was performed
}

// Validate checks raw task file content against the embedded JSON Schema,
// falling back to minimal structural checks if the schema cannot be
// compiled. Id uniqueness is checked in both modes since JSON Schema
// cannot express it.
func Validate(data []byte) *ValidationResult {
	result := &ValidationResult{
		Valid:    true,
		Errors:   make([]error, 0),
		Warnings: make([]string, 0),
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{
			Err: fmt.Errorf("invalid JSON: %w", err),
		})
		return result
	}

	if schema := compileSchema(result); schema != nil {
		result.UsedSchema = true
		if err := schema.Validate(doc); err != nil {
			result.Valid = false
			appendSchemaErrors(result, err)
		}
	} else {
		validateMinimal(doc, result)
	}

	checkUniqueIDs(data, result)
	return result
}

func compileSchema(result *ValidationResult) *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	if err := compiler.AddResource("tasks.schema.json", bytes.NewReader(tasksSchema)); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("schema unavailable: %v", err))
		return nil
	}
	schema, err := compiler.Compile("tasks.schema.json")
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("schema unavailable: %v", err))
		return nil
	}
	return schema
}

// validateMinimal performs structural checks without JSON Schema.
func validateMinimal(doc interface{}, result *ValidationResult) {
	items, ok := doc.([]interface{})
	if !ok {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{
			Err: fmt.Errorf("top level must be an array"),
		})
		return
	}

	for i, item := range items {
		path := fmt.Sprintf("[%d]", i)
		obj, ok := item.(map[string]interface{})
		if !ok {
			result.Valid = false
			result.Errors = append(result.Errors, &ValidationError{
				Path: path,
				Err:  fmt.Errorf("must be an object"),
			})
			continue
		}
		if err := validateTaskMinimal(obj, path); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err)
		}
	}
}

func validateTaskMinimal(obj map[string]interface{}, path string) *ValidationError {
	id, ok := obj["id"].(float64)
	if !ok || id < 1 || id != float64(int(id)) {
		return &ValidationError{
			Path: path + ".id",
			Err:  fmt.Errorf("must be a positive integer"),
		}
	}

	title, ok := obj["title"].(string)
	if !ok || title == "" {
		return &ValidationError{
			Path: path + ".title",
			Err:  fmt.Errorf("missing required field"),
		}
	}

	if raw, present := obj["priority"]; present {
		p, ok := raw.(string)
		if !ok || !task.IsValidPriority(p) {
			return &ValidationError{
				Path: path + ".priority",
				Err:  fmt.Errorf("invalid priority %v, must be one of: Low, Medium, High", raw),
			}
		}
	}

	return nil
}

// checkUniqueIDs verifies the id-uniqueness invariant across the array.
func checkUniqueIDs(data []byte, result *ValidationResult) {
	var tasks task.List
	if err := json.Unmarshal(data, &tasks); err != nil {
		return
	}

	seen := make(map[int]int, len(tasks))
	for i, t := range tasks {
		if first, dup := seen[t.ID]; dup {
			result.Valid = false
			result.Errors = append(result.Errors, &ValidationError{
				Path: fmt.Sprintf("[%d].id", i),
				Err:  fmt.Errorf("duplicate id %d (first used at [%d])", t.ID, first),
			})
			continue
		}
		seen[t.ID] = i
	}
}

func appendSchemaErrors(result *ValidationResult, err error) {
	if err == nil {
		return
	}

	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		result.Errors = append(result.Errors, err)
		return
	}

	collectSchemaErrors(result, ve)
}

func collectSchemaErrors(result *ValidationResult, err *jsonschema.ValidationError) {
	if err == nil {
		return
	}

	if len(err.Causes) == 0 {
		result.Errors = append(result.Errors, &ValidationError{
			Path: jsonPointerToPath(err.InstanceLocation),
			Err:  fmt.Errorf("%s", err.Message),
		})
		return
	}

	for _, cause := range err.Causes {
		collectSchemaErrors(result, cause)
	}
}

func jsonPointerToPath(ptr string) string {
	if ptr == "" {
		return ""
	}
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	parts := strings.Split(ptr, "/")
	path := ""
	for _, part := range parts {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			path += fmt.Sprintf("[%d]", idx)
			continue
		}
		if path == "" {
			path = part
		} else {
			path += "." + part
		}
	}

	return path
}
