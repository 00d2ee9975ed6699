package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldNumber   FieldKind = "number"
	FieldSelect   FieldKind = "select"
	FieldCheckbox FieldKind = "checkbox"
	FieldRadio    FieldKind = "radio"
)

func (k FieldKind) Valid() bool {
	switch k {
	case FieldText, FieldNumber, FieldSelect, FieldCheckbox, FieldRadio:
		return true
	}
	return false
}

// HasOptions reports whether values of this kind are restricted to Field.Options.
func (k FieldKind) HasOptions() bool {
	return k == FieldSelect || k == FieldRadio
}

type Field struct {
	ID       string    `json:"id"`
	Kind     FieldKind `json:"type"`
	Label    string    `json:"label"`
	Required bool      `json:"required"`
	Options  []string  `json:"options,omitempty"`
}

// FormSchema is one immutable version of an event's RSVP form.
// Responses keep the version they were validated against.
type FormSchema struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Version   int       `json:"version"`
	Fields    []Field   `json:"fields"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *FormSchema) Validate() error {
	seen := make(map[string]struct{}, len(s.Fields))
	for i, f := range s.Fields {
		id := strings.TrimSpace(f.ID)
		if id == "" {
			return fmt.Errorf("%w: field #%d has an empty id", ErrValidation, i+1)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: duplicate field id %q", ErrValidation, id)
		}
		seen[id] = struct{}{}

		if !f.Kind.Valid() {
			return fmt.Errorf("%w: field %q has unknown type %q", ErrValidation, id, f.Kind)
		}
		if f.Kind.HasOptions() && len(f.Options) == 0 {
			return fmt.Errorf("%w: field %q requires options", ErrValidation, id)
		}
	}
	return nil
}

// FieldValue is a validated answer. Exactly one of Text, Number or Bool is
// meaningful, selected by Kind.
type FieldValue struct {
	Kind   FieldKind
	Text   string
	Number float64
	Bool   bool
}

func TextValue(kind FieldKind, s string) FieldValue { return FieldValue{Kind: kind, Text: s} }
func NumberValue(n float64) FieldValue             { return FieldValue{Kind: FieldNumber, Number: n} }
func BoolValue(b bool) FieldValue                  { return FieldValue{Kind: FieldCheckbox, Bool: b} }

func (v FieldValue) Raw() any {
	switch v.Kind {
	case FieldNumber:
		return v.Number
	case FieldCheckbox:
		return v.Bool
	default:
		return v.Text
	}
}

type fieldValueJSON struct {
	Kind  FieldKind       `json:"kind"`
	Value json.RawMessage `json:"value"`
}

func (v FieldValue) MarshalJSON() ([]byte, error) {
	raw, err := json.Marshal(v.Raw())
	if err != nil {
		return nil, err
	}
	return json.Marshal(fieldValueJSON{Kind: v.Kind, Value: raw})
}

func (v *FieldValue) UnmarshalJSON(data []byte) error {
	var aux fieldValueJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	out := FieldValue{Kind: aux.Kind}
	var err error
	switch aux.Kind {
	case FieldNumber:
		err = json.Unmarshal(aux.Value, &out.Number)
	case FieldCheckbox:
		err = json.Unmarshal(aux.Value, &out.Bool)
	case FieldText, FieldSelect, FieldRadio:
		err = json.Unmarshal(aux.Value, &out.Text)
	default:
		return fmt.Errorf("unknown field value kind %q", aux.Kind)
	}
	if err != nil {
		return fmt.Errorf("decode %s value: %w", aux.Kind, err)
	}

	*v = out
	return nil
}

// Responses maps field id to its validated value.
type Responses map[string]FieldValue
