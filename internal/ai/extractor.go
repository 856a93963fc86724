package ai

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/resumify/backend/internal/schemas"
	"github.com/resumify/backend/internal/types"
	wire "github.com/resumify/backend/schemas"
)

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

type jsonGenerator interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

// Extractor turns raw resume text into a structured resume through the
// generative model, accepting a response only after it passes schema and
// struct validation.
type Extractor struct {
	generator jsonGenerator
	logger    *zap.Logger
	maxLogLen int
}

// NewExtractor creates an Extractor around a JSON-generating client.
func NewExtractor(generator jsonGenerator, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{
		generator: generator,
		logger:    logger,
		maxLogLen: defaultMaxLogLength,
	}
}

// Extract asks the model for a structured resume and validates the answer.
// Callers are expected to fall back to the heuristic parser on any error.
func (e *Extractor) Extract(ctx context.Context, text string) (*types.ParsedResume, error) {
	prompt := buildPrompt(text)

	e.logger.Debug("resume extraction request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("text_preview", truncateForLog(text, e.maxLogLen)),
	)

	raw, err := e.generator.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, &APICallError{Message: "resume extraction failed", Cause: err}
	}

	e.logger.Debug("resume extraction response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", truncateForLog(raw, e.maxLogLen)),
	)

	if err := schemas.ValidateJSONString(wire.ParsedResume(), raw); err != nil {
		var schemaErr *schemas.ValidationError
		if errors.As(err, &schemaErr) && len(schemaErr.Errors) > 0 {
			first := schemaErr.Errors[0]
			return nil, &ValidationError{Field: first.Field, Message: first.Message}
		}
		return nil, &ParseError{Message: "response is not valid JSON", Cause: err}
	}

	var resume types.ParsedResume
	if err := json.Unmarshal([]byte(raw), &resume); err != nil {
		return nil, &ParseError{Message: "failed to decode response", Cause: err}
	}

	resume.Raw = text
	if err := resume.Validate(); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}
	resume.Normalize()

	return &resume, nil
}

func buildPrompt(text string) string {
	prompt := strings.ReplaceAll(promptTemplate, "{{SCHEMA}}", wire.ParsedResume())
	return strings.ReplaceAll(prompt, "{{RESUME_TEXT}}", text)
}
