package service

import (
	"fmt"
	"strings"

	"talent-scout/internal/domain"
	"talent-scout/internal/llm"
)

const questionSystemPrompt = `
You are TalentScout, a concise, polite hiring assistant for a tech recruiting agency.
Goals:
1) Greet users and guide them through data collection.
2) Ask only one question at a time.
3) Keep context and respond coherently.
4) Exit gracefully if the user types end/exit/quit/bye.
5) Generate clear, non-trivial technical questions based on the candidate's declared tech stack.
Safety & Scope:
- Stay within hiring/screening scope.
- If something is unclear, ask a short clarifying question.
- Avoid storing sensitive data beyond what is necessary for screening.
`

const questionGenPromptTemplate = `
Candidate tech stack: %s
Task: Generate 3-5 specific, non-trivial technical interview questions tailored to the above stack.
Rules:
- Use bullet points or numbered list.
- Avoid overly theoretical trivia; prefer practical, code or scenario-based questions.
- Keep each question to a single sentence if possible.
`

const (
	greetingMessage = "Hello! I'm **TalentScout**, your hiring assistant. " +
		"I'll collect a few details and then ask technical questions based on your tech stack. " +
		"You can type **end/exit/quit** anytime to finish."
	endIntentClosing = "Thank you for your time! 🎉 We've recorded your info. " +
		"Our team will review and get back to you with the next steps."
	screeningClosing = "Thanks for completing the screening! We'll review your responses and reach out with next steps. " +
		"If you wish to end now, type **end** or **exit**."
	alreadyEndedMessage = "This screening session has already ended. Reset the session to start over."
	fieldsDoneAck       = "Thanks!"
	missingTechStackAsk = "Could you please provide your tech stack (languages, frameworks, databases, tools)?"
	offlineHeader       = "**Here are your tailored technical questions (offline mode):**"
	llmHeader           = "**Here are your tailored technical questions:**"
)

var fieldPrompts = map[domain.Field]string{
	domain.FieldFullName:         "Please share your Full Name.",
	domain.FieldEmail:            "What's your Email Address?",
	domain.FieldPhone:            "Your Phone Number (with country code if outside India).",
	domain.FieldExperienceYears:  "How many Years of Experience do you have? (e.g., 2, 3.5)",
	domain.FieldDesiredPositions: "What role(s) are you applying for? (e.g., 'Data Scientist', 'ML Engineer')",
	domain.FieldLocation:         "Your Current Location (City, Country).",
	domain.FieldTechStack:        "List your Tech Stack: programming languages, frameworks, databases, tools (comma-separated).",
}

var fieldRePrompts = map[domain.Field]string{
	domain.FieldEmail:           "That email doesn't look valid. Please provide a valid email (e.g., name@example.com).",
	domain.FieldPhone:           "Please enter a valid phone number (digits, spaces, +, -, parentheses allowed).",
	domain.FieldExperienceYears: "Please enter your experience in years (e.g., 2 or 3.5).",
}

// endIntentKeywords se comparan contra la entrada completa, no por palabra.
var endIntentKeywords = map[string]struct{}{
	"end":       {},
	"exit":      {},
	"quit":      {},
	"bye":       {},
	"goodbye":   {},
	"thanks":    {},
	"thank you": {},
}

// IsEndIntent indica si la entrada pide terminar la sesion.
func IsEndIntent(input string) bool {
	_, ok := endIntentKeywords[strings.ToLower(strings.TrimSpace(input))]
	return ok
}

// FieldPrompt devuelve la pregunta asociada a un campo.
func FieldPrompt(field domain.Field) string {
	return fieldPrompts[field]
}

func fieldRePrompt(field domain.Field) string {
	if p, ok := fieldRePrompts[field]; ok {
		return p
	}
	return fieldPrompts[field]
}

func buildQuestionMessages(techStack string) []llm.ChatMessage {
	return []llm.ChatMessage{
		{Role: llm.RoleSystem, Content: questionSystemPrompt},
		{Role: llm.RoleUser, Content: fmt.Sprintf(questionGenPromptTemplate, techStack)},
	}
}

func formatQuestionList(set domain.QuestionSet) string {
	header := llmHeader
	if set.Source == domain.QuestionSourceOffline {
		header = offlineHeader
	}
	lines := make([]string, 0, len(set.Questions))
	for i, q := range set.Questions {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, q))
	}
	return header + "\n\n" + strings.Join(lines, "\n")
}
