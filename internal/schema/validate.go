package schema

import (
	"fmt"
	"strings"
	"time"

	"go-erp-api/pkg/validator"
)

// FieldError is a single violated constraint on one field.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError carries every violation found in a payload, so the caller
// can fix all of them in one round-trip instead of resubmitting per field.
type ValidationError struct {
	Entity string       `json:"entity"`
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return fmt.Sprintf("%s validation failed: %s", strings.ToLower(e.Entity), strings.Join(parts, "; "))
}

// Validate checks a raw payload against the entity's field specs and returns
// a validated record with all defaults filled in. Pure: never touches
// storage. Unknown payload keys are dropped. On failure the returned error is
// a *ValidationError listing every violation.
func (r *Registry) Validate(entityName string, payload map[string]interface{}, now time.Time) (map[string]interface{}, error) {
	ent, ok := r.Lookup(entityName)
	if !ok {
		return nil, fmt.Errorf("unknown entity %q", entityName)
	}

	record := map[string]interface{}{}
	var errs []FieldError
	validateInto(ent, payload, "", record, &errs, now)
	if len(errs) > 0 {
		return nil, &ValidationError{Entity: ent.Name, Fields: errs}
	}
	return record, nil
}

func validateInto(ent *Entity, payload map[string]interface{}, prefix string, out map[string]interface{}, errs *[]FieldError, now time.Time) {
	for _, f := range ent.Fields {
		path := prefix + f.Name
		value, present := payload[f.Name]
		if value == nil {
			present = false
		}

		if !present {
			if f.Required {
				*errs = append(*errs, FieldError{Field: path, Rule: "required", Message: "is required"})
				continue
			}
			if f.DefaultFn != nil {
				out[f.Name] = f.DefaultFn(now)
			} else if f.Default != nil {
				out[f.Name] = f.Default
			}
			continue
		}

		checked, ok := checkField(f, path, value, errs, now)
		if ok {
			out[f.Name] = checked
		}
	}
}

func checkField(f Field, path string, value interface{}, errs *[]FieldError, now time.Time) (interface{}, bool) {
	fail := func(rule, message string) (interface{}, bool) {
		*errs = append(*errs, FieldError{Field: path, Rule: rule, Message: message})
		return nil, false
	}

	switch f.Type {
	case KindString, KindDate, KindDateTime:
		if f.Type == KindDateTime {
			// Server-stamped instants may already be time.Time.
			if t, isTime := value.(time.Time); isTime {
				return t, true
			}
		}
		s, isString := value.(string)
		if !isString {
			return fail("type", "must be a string")
		}
		switch f.Type {
		case KindDate:
			if _, err := time.Parse("2006-01-02", s); err != nil {
				return fail("date", "must be a date in YYYY-MM-DD form")
			}
		case KindDateTime:
			if _, err := time.Parse(time.RFC3339, s); err != nil {
				return fail("datetime", "must be an RFC3339 timestamp")
			}
		}
		if len(f.Enum) > 0 && !contains(f.Enum, s) {
			return fail("enum", "must be one of: "+strings.Join(f.Enum, ", "))
		}
		if f.Rule != "" {
			if err := validator.Var(s, f.Rule); err != nil {
				return fail(failedRule(f.Rule, err), fmt.Sprintf("fails constraint %q", f.Rule))
			}
		}
		return s, true

	case KindNumber:
		num, isNumber := toFloat(value)
		if !isNumber {
			return fail("type", "must be a number")
		}
		if f.Rule != "" {
			if err := validator.Var(num, f.Rule); err != nil {
				return fail(failedRule(f.Rule, err), fmt.Sprintf("fails constraint %q", f.Rule))
			}
		}
		return num, true

	case KindInteger:
		num, isNumber := toFloat(value)
		if !isNumber || num != float64(int64(num)) {
			return fail("type", "must be an integer")
		}
		if f.Rule != "" {
			if err := validator.Var(num, f.Rule); err != nil {
				return fail(failedRule(f.Rule, err), fmt.Sprintf("fails constraint %q", f.Rule))
			}
		}
		return int(num), true

	case KindBoolean:
		b, isBool := value.(bool)
		if !isBool {
			return fail("type", "must be a boolean")
		}
		return b, true

	case KindArray:
		items, isArray := value.([]interface{})
		if !isArray {
			return fail("type", "must be an array")
		}
		if len(items) < f.MinItems {
			return fail("min_items", fmt.Sprintf("must contain at least %d item(s)", f.MinItems))
		}
		checked := make([]interface{}, 0, len(items))
		ok := true
		for i, item := range items {
			elemPath := fmt.Sprintf("%s[%d]", path, i)
			if f.Elem == nil {
				s, isString := item.(string)
				if !isString {
					*errs = append(*errs, FieldError{Field: elemPath, Rule: "type", Message: "must be a string"})
					ok = false
					continue
				}
				checked = append(checked, s)
				continue
			}
			obj, isObject := item.(map[string]interface{})
			if !isObject {
				*errs = append(*errs, FieldError{Field: elemPath, Rule: "type", Message: "must be an object"})
				ok = false
				continue
			}
			before := len(*errs)
			child := map[string]interface{}{}
			validateInto(f.Elem, obj, elemPath+".", child, errs, now)
			if len(*errs) > before {
				ok = false
				continue
			}
			checked = append(checked, child)
		}
		return checked, ok
	}

	return fail("type", "unsupported field type")
}

func failedRule(rule string, err error) string {
	if tag := validator.FailedTag(err); tag != "" {
		return tag
	}
	return rule
}

func toFloat(value interface{}) (float64, bool) {
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

func contains(set []string, s string) bool {
	for _, item := range set {
		if item == s {
			return true
		}
	}
	return false
}
