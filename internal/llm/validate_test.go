package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var testSchema = &Schema{
	Name:        "test-word",
	Description: "A single vocabulary word with its translation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"word":        map[string]any{"type": "string"},
			"translation": map[string]any{"type": "string"},
		},
		"required":             []any{"word", "translation"},
		"additionalProperties": false,
	},
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"word":"chat","translation":"cat"}`)
	if err := validateResponse(testSchema, raw); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
}

func TestValidateResponse_NotJSON(t *testing.T) {
	raw := json.RawMessage(`the model got chatty instead of returning JSON`)
	err := validateResponse(testSchema, raw)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"word":"chat"}`)
	err := validateResponse(testSchema, raw)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponse_NilSchemaPassesThrough(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`whatever`)); err != nil {
		t.Fatalf("expected nil error without schema, got %v", err)
	}
}
