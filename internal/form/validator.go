// Package form validates RSVP submissions against an event's form schema.
package form

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/stpnv0/EventCheckIn/internal/domain"
)

type ViolationCode string

const (
	MissingRequired ViolationCode = "missing_required"
	InvalidOption   ViolationCode = "invalid_option"
	TypeMismatch    ViolationCode = "type_mismatch"
)

type Violation struct {
	Code    ViolationCode `json:"code"`
	FieldID string        `json:"field_id"`
	Value   string        `json:"value,omitempty"`
}

func (v Violation) String() string {
	if v.Value == "" {
		return fmt.Sprintf("%s(%s)", v.Code, v.FieldID)
	}
	return fmt.Sprintf("%s(%s, %q)", v.Code, v.FieldID, v.Value)
}

type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return fmt.Sprintf("%s: %s", domain.ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return domain.ErrValidation }

// Validate checks submission against schema and returns the normalized
// responses. Keys not present in the schema are dropped. On failure the error
// is a *ValidationError listing violations in schema order.
func Validate(schema *domain.FormSchema, submission map[string]any) (domain.Responses, error) {
	out := make(domain.Responses)
	if schema == nil {
		return out, nil
	}

	var violations []Violation
	for _, f := range schema.Fields {
		raw, present := submission[f.ID]
		if !present || isBlank(raw) {
			if f.Required {
				violations = append(violations, Violation{Code: MissingRequired, FieldID: f.ID})
			}
			continue
		}

		v, violation := coerce(f, raw)
		if violation != nil {
			violations = append(violations, *violation)
			continue
		}
		out[f.ID] = v
	}

	if len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}
	return out, nil
}

func coerce(f domain.Field, raw any) (domain.FieldValue, *Violation) {
	mismatch := &Violation{Code: TypeMismatch, FieldID: f.ID, Value: display(raw)}

	switch f.Kind {
	case domain.FieldText:
		s, ok := raw.(string)
		if !ok {
			return domain.FieldValue{}, mismatch
		}
		return domain.TextValue(f.Kind, strings.TrimSpace(s)), nil

	case domain.FieldNumber:
		n, ok := toNumber(raw)
		if !ok {
			return domain.FieldValue{}, mismatch
		}
		return domain.NumberValue(n), nil

	case domain.FieldCheckbox:
		b, ok := toBool(raw)
		if !ok {
			return domain.FieldValue{}, mismatch
		}
		return domain.BoolValue(b), nil

	case domain.FieldSelect, domain.FieldRadio:
		s := display(raw)
		if !slices.Contains(f.Options, s) {
			return domain.FieldValue{}, &Violation{Code: InvalidOption, FieldID: f.ID, Value: s}
		}
		return domain.TextValue(f.Kind, s), nil
	}

	return domain.FieldValue{}, mismatch
}

func isBlank(raw any) bool {
	if raw == nil {
		return true
	}
	s, ok := raw.(string)
	return ok && strings.TrimSpace(s) == ""
}

func toNumber(raw any) (float64, bool) {
	var n float64
	switch v := raw.(type) {
	case float64:
		n = v
	case float32:
		n = float64(v)
	case int:
		n = float64(v)
	case int64:
		n = float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		n = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		n = f
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func toBool(raw any) (bool, bool) {
	switch v := raw.(type) {
	case bool:
		return v, true
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "on", "yes", "1":
			return true, true
		case "false", "off", "no", "0":
			return false, true
		}
	case float64:
		if v == 0 || v == 1 {
			return v == 1, true
		}
	case int:
		if v == 0 || v == 1 {
			return v == 1, true
		}
	case json.Number:
		switch v.String() {
		case "0":
			return false, true
		case "1":
			return true, true
		}
	}
	return false, false
}

func display(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
