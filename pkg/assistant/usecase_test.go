package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hr360/assistant/pkg/llm"
)

type stubModel struct {
	reply string
	err   error

	calls      int
	lastPrompt llm.Prompt
}

func (s *stubModel) Ask(_ context.Context, p llm.Prompt) (string, error) {
	s.calls++
	s.lastPrompt = p
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func TestAnalyzeResumeDemoMode(t *testing.T) {
	svc := NewService(nil, nil)
	text := "JavaScript developer with 4 years of experience"

	got := svc.AnalyzeResume(context.Background(), text, "")
	require.Equal(t, FallbackAnalysis(text, ""), got)
}

func TestAnalyzeResumeProviderSuccess(t *testing.T) {
	stub := &stubModel{reply: `Here is the analysis:
{"skills":["Go"],"experience":"8 years","education":"MSc","aiScore":130,"strengths":[],"weaknesses":["none"],"recommendation":"hire","summary":"great"}`}
	svc := NewService(stub, nil)

	got := svc.AnalyzeResume(context.Background(), "resume text", "job text")
	require.Equal(t, 1, stub.calls)
	require.Contains(t, stub.lastPrompt.User, "resume text")
	require.Contains(t, stub.lastPrompt.User, "JOB DESCRIPTION: job text")

	// invariants are enforced on provider output too
	require.Equal(t, 100, got.AIScore)
	require.Equal(t, []string{"Go"}, got.Skills)
	require.Equal(t, defaultStrengths, got.Strengths)
	require.Equal(t, []string{"none"}, got.Weaknesses)
}

func TestAnalyzeResumeProviderFailure(t *testing.T) {
	stub := &stubModel{err: errors.New("connection refused")}
	svc := NewService(stub, nil)
	text := "Python engineer"

	got := svc.AnalyzeResume(context.Background(), text, "")
	require.Equal(t, 1, stub.calls)
	require.Equal(t, FallbackAnalysis(text, ""), got)
}

func TestAnalyzeResumeUnparsableReply(t *testing.T) {
	stub := &stubModel{reply: "I cannot help with that."}
	svc := NewService(stub, nil)
	text := "Python engineer"

	got := svc.AnalyzeResume(context.Background(), text, "")
	require.Equal(t, FallbackAnalysis(text, ""), got)
}

func TestChatDemoMode(t *testing.T) {
	svc := NewService(nil, nil)

	got := svc.Chat(context.Background(), "How do I apply for leave?", "")
	require.Equal(t, leaveApplyResponse, got.Response)
	require.NotEmpty(t, got.Suggestions)
	require.LessOrEqual(t, len(got.Suggestions), 3)
}

func TestChatProviderSuccess(t *testing.T) {
	stub := &stubModel{reply: "Sure, here is how leave works."}
	svc := NewService(stub, nil)

	got := svc.Chat(context.Background(), "leave question", "employee: Jane, role: manager")
	require.Equal(t, "Sure, here is how leave works.", got.Response)
	require.Contains(t, stub.lastPrompt.System, "HR360")
	require.Contains(t, stub.lastPrompt.System, "Context: employee: Jane, role: manager")
	require.Equal(t, "leave question", stub.lastPrompt.User)
}

func TestChatProviderEmptyReply(t *testing.T) {
	stub := &stubModel{reply: ""}
	svc := NewService(stub, nil)

	got := svc.Chat(context.Background(), "anything", "")
	require.Equal(t, apologyResponse, got.Response)
}

func TestChatProviderFailure(t *testing.T) {
	stub := &stubModel{err: errors.New("timeout")}
	svc := NewService(stub, nil)

	got := svc.Chat(context.Background(), "hello", "")
	require.Equal(t, greetingResponse, got.Response)
}

func TestPerformanceInsights(t *testing.T) {
	t.Run("demo mode sentinel", func(t *testing.T) {
		svc := NewService(nil, nil)
		got := svc.GeneratePerformanceInsights(context.Background(), map[string]any{"kpi": 0.8})
		require.Equal(t, insightsUnavailable, got)
	})

	t.Run("provider failure sentinel", func(t *testing.T) {
		stub := &stubModel{err: errors.New("boom")}
		svc := NewService(stub, nil)
		got := svc.GeneratePerformanceInsights(context.Background(), nil)
		require.Equal(t, insightsUnavailable, got)
	})

	t.Run("success", func(t *testing.T) {
		stub := &stubModel{reply: "Strengths: delivery."}
		svc := NewService(stub, nil)
		got := svc.GeneratePerformanceInsights(context.Background(), map[string]any{"kpi": 0.8})
		require.Equal(t, "Strengths: delivery.", got)
		require.Contains(t, stub.lastPrompt.User, `"kpi":0.8`)
	})

	t.Run("empty reply", func(t *testing.T) {
		stub := &stubModel{reply: ""}
		svc := NewService(stub, nil)
		got := svc.GeneratePerformanceInsights(context.Background(), nil)
		require.Equal(t, insightsEmptyReply, got)
	})
}
