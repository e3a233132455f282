package questions

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ankitn/skillforge/internal/llm"
)

func validQuestionJSON() json.RawMessage {
	return json.RawMessage(`{
		"question_text": "What is the capital of France?",
		"choices": ["Paris", "Lyon", "Marseille", "Nice"],
		"answer": "Paris",
		"explanation": "Paris has been the capital since 987."
	}`)
}

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	g := NewGenerator(mock, DefaultGenConfig())

	q, err := g.Generate(context.Background(), GenerateInput{
		StudentID: "student-1",
		Skill:     banklessSkill(),
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if q.Text != "What is the capital of France?" || q.Answer != "Paris" {
		t.Errorf("question = %+v", q)
	}
	if len(q.Choices) != 4 {
		t.Errorf("got %d choices, want 4", len(q.Choices))
	}

	req := mock.Calls[0]
	if req.Schema == nil {
		t.Error("request carried no response schema")
	}
	if req.MaxTokens != DefaultGenConfig().MaxTokens {
		t.Errorf("MaxTokens = %d, want %d", req.MaxTokens, DefaultGenConfig().MaxTokens)
	}
}

func TestGeneratePromptContents(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	g := NewGenerator(mock, DefaultGenConfig())

	skill := banklessSkill()
	skill.Description = "Match countries to their capital cities."
	skill.GenerationHint = "Stick to European countries."

	_, err := g.Generate(context.Background(), GenerateInput{
		StudentID:      "student-1",
		Skill:          skill,
		PriorQuestions: []string{"Capital of Spain?", "Capital of Italy?"},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	prompt := mock.Calls[0].Messages[0].Content
	for _, want := range []string{
		skill.Name,
		skill.Description,
		skill.GenerationHint,
		"Capital of Spain?",
		"Capital of Italy?",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestGenerateProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	g := NewGenerator(mock, DefaultGenConfig())

	if _, err := g.Generate(context.Background(), GenerateInput{Skill: banklessSkill()}); err == nil {
		t.Error("Generate succeeded despite provider failure")
	}
}

func TestGenerateRejectsIncompleteOutput(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty text", `{"question_text": "  ", "answer": "Paris"}`},
		{"empty answer", `{"question_text": "Capital of France?", "answer": ""}`},
		{"not JSON", `the capital is Paris`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(tt.content)})
			g := NewGenerator(mock, DefaultGenConfig())

			if _, err := g.Generate(context.Background(), GenerateInput{Skill: banklessSkill()}); err == nil {
				t.Error("Generate accepted incomplete output")
			}
		})
	}
}

func TestFormatPriorQuestions(t *testing.T) {
	if got := formatPriorQuestions(nil, 8); got != "None" {
		t.Errorf("empty history = %q, want None", got)
	}

	prior := []string{"q1", "q2", "q3", "q4"}
	got := formatPriorQuestions(prior, 2)
	if strings.Contains(got, "q1") || strings.Contains(got, "q2") {
		t.Errorf("history not truncated to most recent entries:\n%s", got)
	}
	if !strings.Contains(got, "q3") || !strings.Contains(got, "q4") {
		t.Errorf("history missing recent entries:\n%s", got)
	}
}
