package llm

import "context"

// MockClient permite tests sin llamar a un LLM real.
type MockClient struct {
	Response string
	Err      error
	Calls    int
	Last     []ChatMessage
}

func (m *MockClient) Chat(ctx context.Context, messages []ChatMessage) (string, error) {
	m.Calls++
	m.Last = messages
	return m.Response, m.Err
}
