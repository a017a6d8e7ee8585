package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"talent-scout/internal/domain"
	"talent-scout/internal/llm"
)

// QuestionGenerator produce el set de preguntas para un tech stack.
type QuestionGenerator interface {
	Generate(ctx context.Context, techStack string) (domain.QuestionSet, error)
}

var (
	ErrGenerationUnavailable = errors.New("question generation unavailable")
	ErrGenerationFailed      = errors.New("question generation failed")
	ErrGenerationEmpty       = errors.New("question generation returned no questions")
)

// LLMQuestionGenerator pide las preguntas a un proveedor remoto.
type LLMQuestionGenerator struct {
	client llm.LLMClient
}

func NewLLMQuestionGenerator(client llm.LLMClient) *LLMQuestionGenerator {
	return &LLMQuestionGenerator{client: client}
}

func (g *LLMQuestionGenerator) Generate(ctx context.Context, techStack string) (domain.QuestionSet, error) {
	if g == nil || g.client == nil {
		return domain.QuestionSet{}, ErrGenerationUnavailable
	}
	techStack = strings.TrimSpace(techStack)
	if techStack == "" {
		return domain.QuestionSet{}, ErrGenerationEmpty
	}

	raw, err := g.client.Chat(ctx, buildQuestionMessages(techStack))
	if err != nil {
		return domain.QuestionSet{}, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	questions := parseQuestionLines(raw)
	if len(questions) == 0 {
		return domain.QuestionSet{}, ErrGenerationEmpty
	}
	return domain.QuestionSet{Questions: questions, Source: domain.QuestionSourceLLM}, nil
}

// FallbackQuestionGenerator intenta la estrategia primaria y ante cualquier
// error responde con el generador offline. Nunca devuelve error.
type FallbackQuestionGenerator struct {
	primary QuestionGenerator
	offline OfflineQuestionGenerator
	logger  *zap.Logger
}

// NewFallbackQuestionGenerator recibe primary nil cuando no hay credencial.
func NewFallbackQuestionGenerator(primary QuestionGenerator, logger *zap.Logger) *FallbackQuestionGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FallbackQuestionGenerator{primary: primary, logger: logger}
}

func (g *FallbackQuestionGenerator) Generate(ctx context.Context, techStack string) (domain.QuestionSet, error) {
	if g.primary != nil {
		set, err := g.primary.Generate(ctx, techStack)
		if err == nil {
			return set, nil
		}
		g.logger.Warn("question generation fell back to offline", zap.Error(err))
	}
	return g.offline.Generate(ctx, techStack)
}
