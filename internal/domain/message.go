package domain

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message es una entrada del transcript que se muestra al usuario.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

func AssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}
