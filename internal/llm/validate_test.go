package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func questionTestSchema() *Schema {
	return &Schema{
		Name:        "test-question",
		Description: "A generated practice question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question_text": map[string]any{"type": "string"},
				"answer":        map[string]any{"type": "string"},
				"choices": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"question_text", "answer"},
		},
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"question_text":"Capital of France?","answer":"Paris","choices":["Paris","Lyon"]}`)
	if err := validateResponse(questionTestSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"question_text":"Capital of France?","answer":"Paris"}`)
	if err := validateResponse(questionTestSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"question_text":"Capital of France?"}`)
	err := validateResponse(questionTestSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"question_text":"Capital of France?","answer":42}`)
	err := validateResponse(questionTestSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongItemType(t *testing.T) {
	raw := json.RawMessage(`{"question_text":"q","answer":"a","choices":[1,2]}`)
	err := validateResponse(questionTestSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(questionTestSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	err := validateResponse(questionTestSchema(), json.RawMessage(``))
	if err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}
