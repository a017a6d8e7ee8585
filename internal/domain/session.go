package domain

import "time"

// ConversationState es la fase del ciclo de vida de la entrevista.
type ConversationState string

const (
	StateGreeting    ConversationState = "greeting"
	StateCollecting  ConversationState = "collecting"
	StateQuestioning ConversationState = "questioning"
	StateEnded       ConversationState = "ended"
)

// QuestionSource indica que estrategia produjo las preguntas.
type QuestionSource string

const (
	QuestionSourceLLM     QuestionSource = "llm"
	QuestionSourceOffline QuestionSource = "offline"
)

// QuestionSet es el resultado de una pasada de generacion.
type QuestionSet struct {
	Questions []string       `json:"questions"`
	Source    QuestionSource `json:"source"`
}

// Session agrupa todo el estado de una conversacion activa.
type Session struct {
	ID             string            `json:"id"`
	State          ConversationState `json:"state"`
	Profile        CandidateProfile  `json:"profile"`
	Transcript     []Message         `json:"transcript"`
	Questions      []string          `json:"questions"`
	QuestionSource QuestionSource    `json:"question_source,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// Clone copia los slices para que una transicion no pise el estado del llamador.
func (s Session) Clone() Session {
	out := s
	if s.Transcript != nil {
		out.Transcript = append(make([]Message, 0, len(s.Transcript)+4), s.Transcript...)
	}
	if s.Questions != nil {
		out.Questions = append([]string{}, s.Questions...)
	}
	return out
}
