package form

import (
	"encoding/json"
	"testing"

	"github.com/stpnv0/EventCheckIn/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func schemaOf(fields ...domain.Field) *domain.FormSchema {
	return &domain.FormSchema{ID: "s1", EventID: "e1", Version: 1, Fields: fields}
}

func violationsOf(t *testing.T, err error) []Violation {
	t.Helper()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	return verr.Violations
}

func TestValidate_InvalidOption(t *testing.T) {
	schema := schemaOf(domain.Field{
		ID: "meal", Kind: domain.FieldSelect, Options: []string{"veg", "nonveg"}, Required: true,
	})

	_, err := Validate(schema, map[string]any{"meal": "vegan"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, []Violation{{Code: InvalidOption, FieldID: "meal", Value: "vegan"}}, violationsOf(t, err))
}

func TestValidate_MissingRequired(t *testing.T) {
	schema := schemaOf(
		domain.Field{ID: "name", Kind: domain.FieldText, Required: true},
		domain.Field{ID: "note", Kind: domain.FieldText, Required: true},
		domain.Field{ID: "extra", Kind: domain.FieldText},
	)

	_, err := Validate(schema, map[string]any{"note": "   "})

	assert.Equal(t, []Violation{
		{Code: MissingRequired, FieldID: "name"},
		{Code: MissingRequired, FieldID: "note"},
	}, violationsOf(t, err))
}

func TestValidate_TypeMismatch(t *testing.T) {
	schema := schemaOf(
		domain.Field{ID: "guests", Kind: domain.FieldNumber},
		domain.Field{ID: "agree", Kind: domain.FieldCheckbox},
		domain.Field{ID: "name", Kind: domain.FieldText},
	)

	_, err := Validate(schema, map[string]any{
		"guests": "three",
		"agree":  "maybe",
		"name":   42.0,
	})

	assert.Equal(t, []Violation{
		{Code: TypeMismatch, FieldID: "guests", Value: "three"},
		{Code: TypeMismatch, FieldID: "agree", Value: "maybe"},
		{Code: TypeMismatch, FieldID: "name", Value: "42"},
	}, violationsOf(t, err))
}

func TestValidate_NumberRejectsNonFinite(t *testing.T) {
	schema := schemaOf(domain.Field{ID: "n", Kind: domain.FieldNumber})

	for _, in := range []any{"NaN", "Inf", "-Inf", true} {
		_, err := Validate(schema, map[string]any{"n": in})
		assert.ErrorIs(t, err, domain.ErrValidation, "input %v", in)
	}
}

func TestValidate_Coercion(t *testing.T) {
	schema := schemaOf(
		domain.Field{ID: "guests", Kind: domain.FieldNumber, Required: true},
		domain.Field{ID: "agree", Kind: domain.FieldCheckbox, Required: true},
		domain.Field{ID: "size", Kind: domain.FieldRadio, Options: []string{"S", "M"}},
		domain.Field{ID: "name", Kind: domain.FieldText},
	)

	tests := []struct {
		name string
		in   map[string]any
		want domain.Responses
	}{
		{
			name: "native json types",
			in:   map[string]any{"guests": 2.0, "agree": true, "size": "M", "name": " Ann "},
			want: domain.Responses{
				"guests": domain.NumberValue(2),
				"agree":  domain.BoolValue(true),
				"size":   domain.TextValue(domain.FieldRadio, "M"),
				"name":   domain.TextValue(domain.FieldText, "Ann"),
			},
		},
		{
			name: "string forms",
			in:   map[string]any{"guests": " 1.5", "agree": "OFF"},
			want: domain.Responses{
				"guests": domain.NumberValue(1.5),
				"agree":  domain.BoolValue(false),
			},
		},
		{
			name: "json.Number and numeric checkbox",
			in:   map[string]any{"guests": json.Number("7"), "agree": 1.0},
			want: domain.Responses{
				"guests": domain.NumberValue(7),
				"agree":  domain.BoolValue(true),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(schema, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate_UnknownFieldsDropped(t *testing.T) {
	schema := schemaOf(domain.Field{ID: "name", Kind: domain.FieldText})

	got, err := Validate(schema, map[string]any{"name": "Bob", "hacker": "x"})

	require.NoError(t, err)
	assert.Equal(t, domain.Responses{"name": domain.TextValue(domain.FieldText, "Bob")}, got)
}

func TestValidate_OptionalBlankOmitted(t *testing.T) {
	schema := schemaOf(domain.Field{ID: "note", Kind: domain.FieldText})

	got, err := Validate(schema, map[string]any{"note": ""})

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestValidate_Deterministic(t *testing.T) {
	schema := schemaOf(
		domain.Field{ID: "a", Kind: domain.FieldSelect, Options: []string{"x"}, Required: true},
		domain.Field{ID: "b", Kind: domain.FieldNumber, Required: true},
	)
	in := map[string]any{"a": "y", "b": "z"}

	_, err1 := Validate(schema, in)
	_, err2 := Validate(schema, in)

	assert.Equal(t, violationsOf(t, err1), violationsOf(t, err2))
}

func TestValidate_NilSchema(t *testing.T) {
	got, err := Validate(nil, map[string]any{"x": 1})

	require.NoError(t, err)
	assert.Empty(t, got)
}
