package assistant

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFallbackResponseGreetingHasPriority(t *testing.T) {
	require.Equal(t, greetingResponse, FallbackResponse("hello"))
	require.Equal(t, greetingResponse, FallbackResponse("Hey!"))
	// greeting wins even when topical keywords are present
	require.Equal(t, greetingResponse, FallbackResponse("Hello, how do I check my leave balance?"))
}

func TestFallbackResponseConversational(t *testing.T) {
	require.Equal(t, wellBeingResponse, FallbackResponse("how are you?"))
	require.Equal(t, gratitudeResponse, FallbackResponse("thanks a lot"))
	require.Equal(t, farewellResponse, FallbackResponse("bye"))
	require.Equal(t, affirmativeResponse, FallbackResponse("yes"))
	require.Equal(t, negativeResponse, FallbackResponse("nope"))
	require.Equal(t, capabilitiesResponse, FallbackResponse("what can you do"))
	require.Equal(t, identityResponse, FallbackResponse("who are you?"))
}

func TestFallbackResponseLeaveSubIntents(t *testing.T) {
	require.Equal(t, leaveApplyResponse, FallbackResponse("How do I apply for leave?"))
	require.Equal(t, leaveBalanceResponse, FallbackResponse("What's my leave balance?"))
	require.Equal(t, leaveResponse, FallbackResponse("Tell me about vacation types"))
}

func TestFallbackResponseAttendanceSubIntents(t *testing.T) {
	require.Equal(t, attendanceClockResponse, FallbackResponse("How do I clock in today?"))
	require.Equal(t, attendanceReportResponse, FallbackResponse("Show my attendance history"))
	require.Equal(t, attendanceResponse, FallbackResponse("question about attendance"))
}

func TestFallbackResponsePayrollSubIntents(t *testing.T) {
	require.Equal(t, payslipResponse, FallbackResponse("Where can I download my payslip?"))
	require.Equal(t, payStructureResponse, FallbackResponse("Explain my salary structure"))
	require.Equal(t, payrollResponse, FallbackResponse("payroll question"))
}

func TestFallbackResponsePerformanceSubIntents(t *testing.T) {
	require.Equal(t, performanceReviewResponse, FallbackResponse("When is my performance review cycle?"))
	require.Equal(t, performanceGoalsResponse, FallbackResponse("my performance kpi targets"))
	require.Equal(t, performanceResponse, FallbackResponse("performance questions"))
}

func TestFallbackResponseTopics(t *testing.T) {
	require.Equal(t, benefitsResponse, FallbackResponse("what insurance do we get"))
	require.Equal(t, policyResponse, FallbackResponse("where is the employee handbook"))
	require.Equal(t, careerResponse, FallbackResponse("career growth options"))
	require.Equal(t, recruitmentResponse, FallbackResponse("when is my interview"))
}

func TestFallbackResponseHelpBeforeTopic(t *testing.T) {
	// generic-help is evaluated before the topical categories
	require.Equal(t, helpResponse, FallbackResponse("I need help with my payslip"))
}

func TestFallbackResponseDefault(t *testing.T) {
	require.Equal(t, defaultResponse, FallbackResponse("qwertyuiop"))
	require.Equal(t, defaultResponse, FallbackResponse(""))
}

func TestFallbackResponseSingleTemplate(t *testing.T) {
	// a message spanning several topics still yields exactly one template
	got := FallbackResponse("leave and attendance and payroll")
	require.Equal(t, leaveResponse, got)
}
