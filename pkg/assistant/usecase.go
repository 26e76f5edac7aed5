package assistant

import (
	"context"

	"go.uber.org/zap"

	"github.com/hr360/assistant/pkg/llm"
)

// Sentinel replies for degraded provider paths.
const (
	apologyResponse     = "I'm sorry, I couldn't process your request. Please contact HR directly."
	insightsUnavailable = "Unable to generate performance insights at this time."
	insightsEmptyReply  = "Performance analysis unavailable"
)

// Service is the public entry point of the AI assistant. None of the
// methods return an error: every failure mode resolves to a usable
// fallback result, trading fidelity for availability.
type Service interface {
	AnalyzeResume(ctx context.Context, resumeText, jobDescription string) ResumeAnalysis
	Chat(ctx context.Context, message, userContext string) ChatReply
	GeneratePerformanceInsights(ctx context.Context, data map[string]any) string
}

type service struct {
	llm llm.ChatModel
	log *zap.Logger
}

// NewService wires the assistant. A nil model means demo mode: every call
// answers from the deterministic fallbacks without a network attempt.
func NewService(model llm.ChatModel, log *zap.Logger) Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{llm: model, log: log}
}

func (s *service) AnalyzeResume(ctx context.Context, resumeText, jobDescription string) ResumeAnalysis {
	if s.llm == nil {
		s.log.Debug("demo mode: generating resume analysis without AI provider")
		return FallbackAnalysis(resumeText, jobDescription)
	}
	raw, err := s.llm.Ask(ctx, llm.Prompt{
		User:        resumeAnalysisPrompt(resumeText, jobDescription),
		Temperature: 0.3,
		MaxTokens:   1000,
	})
	if err != nil {
		s.log.Warn("resume analysis provider call failed, using fallback", zap.Error(err))
		return FallbackAnalysis(resumeText, jobDescription)
	}
	analysis, err := parseAnalysis(raw)
	if err != nil {
		s.log.Warn("resume analysis reply unparsable, using fallback", zap.Error(err))
		return FallbackAnalysis(resumeText, jobDescription)
	}
	return normalizeAnalysis(analysis)
}

func (s *service) Chat(ctx context.Context, message, userContext string) ChatReply {
	reply := ChatReply{Suggestions: Suggestions(message)}
	if s.llm == nil {
		s.log.Debug("demo mode: answering chat from intent taxonomy")
		reply.Response = FallbackResponse(message)
		return reply
	}
	raw, err := s.llm.Ask(ctx, llm.Prompt{
		System:      chatSystemPrompt(userContext),
		User:        message,
		Temperature: 0.7,
		MaxTokens:   600,
	})
	if err != nil {
		s.log.Warn("chat provider call failed, using fallback", zap.Error(err))
		reply.Response = FallbackResponse(message)
		return reply
	}
	if raw == "" {
		raw = apologyResponse
	}
	reply.Response = raw
	return reply
}

func (s *service) GeneratePerformanceInsights(ctx context.Context, data map[string]any) string {
	// No structured fallback exists for insights: absence or failure of the
	// provider degrades to a flat sentinel.
	if s.llm == nil {
		return insightsUnavailable
	}
	raw, err := s.llm.Ask(ctx, llm.Prompt{
		User:        insightsPrompt(data),
		Temperature: 0.5,
		MaxTokens:   400,
	})
	if err != nil {
		s.log.Warn("performance insights provider call failed", zap.Error(err))
		return insightsUnavailable
	}
	if raw == "" {
		return insightsEmptyReply
	}
	return raw
}
