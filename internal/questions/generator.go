package questions

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ankitn/skillforge/internal/curriculum"
	"github.com/ankitn/skillforge/internal/llm"
)

const systemPrompt = `You are a question author for a skill-practice platform.
Write one clear, self-contained practice question for the requested skill.
The answer must be short and unambiguous so it can be compared as a plain string.
Never reuse a question the student has already seen.`

// Generator produces questions on demand for bankless skills.
type Generator interface {
	Generate(ctx context.Context, input GenerateInput) (*curriculum.Question, error)
}

// GenerateInput carries the context for one generation call.
type GenerateInput struct {
	StudentID string
	Skill     curriculum.Skill

	// PriorQuestions holds prompts already asked this session, for
	// dedup in the prompt.
	PriorQuestions []string
}

// GenConfig controls the LLMGenerator.
type GenConfig struct {
	MaxTokens         int
	Temperature       float64
	MaxPriorQuestions int
}

// DefaultGenConfig returns recommended generation settings.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		MaxTokens:         512,
		Temperature:       0.7,
		MaxPriorQuestions: 8,
	}
}

// LLMGenerator implements Generator on an llm.Provider.
type LLMGenerator struct {
	provider llm.Provider
	config   GenConfig
}

// NewGenerator creates an LLMGenerator.
func NewGenerator(provider llm.Provider, cfg GenConfig) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionOutput is the raw LLM response before mapping.
type questionOutput struct {
	QuestionText string   `json:"question_text"`
	Choices      []string `json:"choices"`
	Answer       string   `json:"answer"`
	Explanation  string   `json:"explanation"`
}

func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*curriculum.Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema:      questionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("question generation failed: %w", err)
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse generated question: %w", err)
	}
	if strings.TrimSpace(raw.QuestionText) == "" || strings.TrimSpace(raw.Answer) == "" {
		return nil, fmt.Errorf("generated question missing text or answer")
	}

	return &curriculum.Question{
		Text:        raw.QuestionText,
		Choices:     raw.Choices,
		Answer:      raw.Answer,
		Explanation: raw.Explanation,
	}, nil
}

func buildUserMessage(input GenerateInput, cfg GenConfig) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Skill: %s (%s)\n", input.Skill.Name, input.Skill.Difficulty.Label())
	if input.Skill.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", input.Skill.Description)
	}
	if input.Skill.GenerationHint != "" {
		fmt.Fprintf(&b, "Instructions: %s\n", input.Skill.GenerationHint)
	}

	b.WriteString("\nAlready asked this session:\n")
	b.WriteString(formatPriorQuestions(input.PriorQuestions, cfg.MaxPriorQuestions))

	return b.String()
}

// formatPriorQuestions lists recent prompts for dedup, keeping only the
// most recent max entries. Returns "None" when there is no history.
func formatPriorQuestions(prior []string, max int) string {
	if len(prior) == 0 {
		return "None"
	}
	if max > 0 && len(prior) > max {
		prior = prior[len(prior)-max:]
	}

	var b strings.Builder
	for i, q := range prior {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
