package assistant

import (
	"strings"

	"github.com/hr360/assistant/pkg/nlp"
)

// intent is one entry of the conversational fallback taxonomy. Intents are
// evaluated in declaration order and the first match answers. Sub-intents
// are only consulted when their parent matched, also first match wins;
// otherwise the parent's generic template is returned.
type intent struct {
	match    func(message string) bool
	response string
	subs     []subIntent
}

// subIntent refines a matched intent via plain substring keywords.
type subIntent struct {
	keywords []string
	response string
}

// words matches any of the phrases as whole words ("hi" but not "historic").
func words(phrases ...string) func(string) bool {
	return func(message string) bool { return nlp.ContainsAnyWord(message, phrases...) }
}

// topic matches any of the needles as plain substrings ("pay" in "payday").
func topic(needles ...string) func(string) bool {
	return func(message string) bool { return nlp.ContainsAny(message, needles...) }
}

const (
	greetingResponse = "Hello! I'm your HR360 AI Assistant. I'm here to help you with all your HR-related questions and guide you through our HR management system. What can I assist you with today?"

	wellBeingResponse = "I'm doing great, thank you for asking! I'm here and ready to help you with any HR-related questions or tasks in HR360. How can I assist you today?"

	gratitudeResponse = "You're very welcome! I'm glad I could help. If you have any other HR questions or need assistance with HR360, feel free to ask anytime."

	farewellResponse = "Goodbye! Have a great day. Remember, I'm always here in HR360 if you need any HR assistance."

	helpResponse = "I'm here to help! I can assist you with:\n\n• Leave applications and policies\n• Attendance tracking and reports\n• Payroll and salary information\n• Performance reviews and goals\n• Company policies and benefits\n• Career development opportunities\n• Recruitment and onboarding\n\nWhat specific area would you like help with?"

	leaveApplyResponse = "To apply for leave in HR360:\n1. Navigate to the 'Leave Management' module\n2. Click 'Apply for Leave'\n3. Select leave type (Vacation, Sick, Personal, etc.)\n4. Choose start and end dates\n5. Provide a reason for your leave\n6. Submit for manager approval\n\nYour leave balance and approval status will be tracked automatically."

	leaveBalanceResponse = "You can check your leave balance in the Leave Management section. It shows:\n• Vacation days available\n• Sick leave balance\n• Personal days\n• Used days this year\n\nContact HR if you need to carry over leave from previous years."

	leaveResponse = "HR360 supports various leave types: Vacation, Sick Leave, Personal Leave, Maternity/Paternity Leave. All leave requests require manager approval and are tracked in the Leave Management module."

	attendanceClockResponse = "To track your attendance:\n1. Go to the 'Attendance' module\n2. Use the 'Clock In' button when you start work\n3. Use the 'Clock Out' button when you finish\n4. Your hours are automatically calculated\n\nThe system tracks regular hours, overtime, and provides attendance reports."

	attendanceReportResponse = "Your attendance history is available in the Attendance module. You can view:\n• Daily clock in/out times\n• Total hours worked per day\n• Weekly/monthly summaries\n• Attendance trends and patterns\n\nManagers can access team attendance reports."

	attendanceResponse = "The Attendance module helps you track work hours, view attendance history, and monitor your work schedule. Use the clock in/out buttons for accurate time tracking."

	payslipResponse = "To access your payslips:\n1. Go to the 'Payroll Management' module\n2. Select the desired pay period\n3. Click 'View Details' to see salary breakdown\n4. Use 'Download PDF' to save your payslip\n\nPayslips show base salary, allowances, deductions, and net pay."

	payStructureResponse = "Your salary structure typically includes:\n• Base Salary (monthly/annual)\n• HRA (House Rent Allowance)\n• Conveyance Allowance\n• LTA (Leave Travel Allowance)\n• Medical Allowance\n• Tax deductions (TDS)\n• Provident Fund contributions\n\nCheck Payroll section for your specific breakdown."

	payrollResponse = "Payroll information is available in the Payroll Management module. You can view salary details, tax calculations, payslips, and payment history. Contact Finance for questions about deductions or allowances."

	performanceReviewResponse = "Performance reviews are conducted quarterly/annually. To view your reviews:\n1. Go to 'Performance Management' module\n2. Check your current score and trends\n3. View detailed feedback from managers\n4. See goals and achievements\n\nReviews include self-assessment, manager feedback, and development plans."

	performanceGoalsResponse = "Performance goals are set during reviews and tracked throughout the year. You can:\n• View current goals in Performance Management\n• Update progress on objectives\n• Request feedback from managers\n• Set new development goals\n\nGoals are aligned with company objectives and your role."

	performanceResponse = "The Performance Management module tracks your performance scores, reviews, goals, and development plans. Regular feedback helps you grow professionally and align with company expectations."

	benefitsResponse = "Employee benefits in HR360 include:\n• Health Insurance (medical, dental, vision)\n• Retirement Plans (401k, pension)\n• Paid Time Off (vacation, sick leave)\n• Professional Development allowance\n• Employee Assistance Programs\n\nCheck with HR for specific coverage details and enrollment."

	policyResponse = "Company policies cover:\n• Code of Conduct and Ethics\n• Workplace Harassment policies\n• Diversity and Inclusion guidelines\n• Remote Work policies\n• Data Privacy and Security\n• Safety and Emergency procedures\n\nThe Employee Handbook is available through HR. Contact HR department for specific policy interpretations."

	careerResponse = "Career development opportunities include:\n• Training programs and certifications\n• Mentorship programs\n• Internal job postings\n• Skills assessment and gap analysis\n• Leadership development programs\n\nDiscuss your career goals with your manager or HR for personalized development plans."

	recruitmentResponse = "For recruitment queries:\n• Job openings are posted internally first\n• Apply through the Resume Screening module\n• Interviews are scheduled via Interview Scheduling\n• New hires go through orientation\n\nContact HR for current openings or application status."

	hrContactResponse = "For additional HR support:\n• Email: hr@hr360.com\n• Phone: Ext. 123\n• HR Portal: Access all modules from the main dashboard\n• Emergency: Contact your manager or HR directly\n\nI'm here to help with system-related questions and general guidance."

	affirmativeResponse = "Great! I'm here to help. What specific HR topic would you like assistance with? I can help with leave management, attendance, payroll, performance reviews, benefits, policies, and more."

	negativeResponse = "No problem at all! If you change your mind and need help with any HR-related questions or tasks in HR360, just let me know. I'm always here to assist."

	capabilitiesResponse = "As your HR360 AI Assistant, I can help you with:\n\n• Leave applications and balance tracking\n• Attendance tracking and reports\n• Payroll information and payslips\n• Performance reviews and goal setting\n• Employee benefits and insurance\n• Company policies and procedures\n• Career development and training\n• Recruitment and onboarding\n\nI provide step-by-step guidance and direct you to the right HR360 modules for your needs."

	identityResponse = "I'm the AI HR Assistant for HR360, your comprehensive HR management system. I'm designed to help employees, managers, and HR staff with all HR-related questions and tasks. I provide accurate information, step-by-step guidance, and can direct you to the appropriate modules in the system."

	defaultResponse = "I'm your HR360 AI Assistant, here to help with all HR-related queries! I can assist with:\n\n• Leave applications and policies\n• Attendance tracking and reports\n• Payroll and salary information\n• Performance reviews and goals\n• Company policies and benefits\n• Career development opportunities\n• Recruitment and onboarding\n\nWhat specific HR topic can I help you with today?"
)

// intents is the full taxonomy, in priority order. Conversational intents
// (greeting, gratitude, ...) come before topical ones so that "hello" wins
// even when the message also mentions a topic keyword.
var intents = []intent{
	{match: words("hello", "hi", "hey", "greetings", "good morning", "good afternoon", "good evening"), response: greetingResponse},
	{match: words("how are you", "how's it going", "what's up"), response: wellBeingResponse},
	{match: words("thank you", "thanks", "thankyou"), response: gratitudeResponse},
	{match: words("bye", "goodbye", "see you", "farewell"), response: farewellResponse},
	{match: words("help", "assist", "support"), response: helpResponse},
	{
		match:    topic("leave", "vacation", "holiday"),
		response: leaveResponse,
		subs: []subIntent{
			{keywords: []string{"apply", "request"}, response: leaveApplyResponse},
			{keywords: []string{"balance", "remaining"}, response: leaveBalanceResponse},
		},
	},
	{
		match:    topic("attendance", "clock", "time"),
		response: attendanceResponse,
		subs: []subIntent{
			{keywords: []string{"clock in", "clock out"}, response: attendanceClockResponse},
			{keywords: []string{"report", "history"}, response: attendanceReportResponse},
		},
	},
	{
		match:    topic("payroll", "salary", "pay", "payslip"),
		response: payrollResponse,
		subs: []subIntent{
			{keywords: []string{"payslip", "download"}, response: payslipResponse},
			{keywords: []string{"structure", "breakdown"}, response: payStructureResponse},
		},
	},
	{
		match:    topic("performance", "review", "appraisal"),
		response: performanceResponse,
		subs: []subIntent{
			{keywords: []string{"review", "cycle"}, response: performanceReviewResponse},
			{keywords: []string{"goal", "kpi"}, response: performanceGoalsResponse},
		},
	},
	{match: topic("benefit", "insurance", "health"), response: benefitsResponse},
	{match: topic("policy", "handbook", "code"), response: policyResponse},
	{match: topic("career", "training", "development"), response: careerResponse},
	{match: topic("recruit", "hire", "interview"), response: recruitmentResponse},
	{match: topic("hr", "contact", "help"), response: hrContactResponse},
	{match: words("yes", "yeah", "yep", "sure", "okay", "ok"), response: affirmativeResponse},
	{match: words("no", "nope", "nah", "not really"), response: negativeResponse},
	{match: topic("what can you do", "what do you do", "your capabilities"), response: capabilitiesResponse},
	{match: topic("who are you", "what are you"), response: identityResponse},
}

// FallbackResponse answers a chat message from the fixed HR intent taxonomy.
// Exactly one template string is returned per call.
func FallbackResponse(message string) string {
	lower := strings.ToLower(message)
	for _, in := range intents {
		if !in.match(message) {
			continue
		}
		for _, sub := range in.subs {
			for _, kw := range sub.keywords {
				if strings.Contains(lower, kw) {
					return sub.response
				}
			}
		}
		return in.response
	}
	return defaultResponse
}
