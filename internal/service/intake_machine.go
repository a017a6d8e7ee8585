package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"talent-scout/internal/domain"
)

// CandidateRecorder persiste el resultado de una entrevista terminada.
type CandidateRecorder interface {
	Save(ctx context.Context, profile domain.CandidateProfile, questions []string) error
}

// IntakeMachine es el reductor de la conversacion: (Session, input) -> (Session, respuestas).
// No guarda estado propio; el host decide donde vive la sesion entre turnos.
type IntakeMachine struct {
	generator QuestionGenerator
	recorder  CandidateRecorder
	logger    *zap.Logger
	now       func() time.Time
}

// NewIntakeMachine usa el generador offline si generator es nil.
func NewIntakeMachine(generator QuestionGenerator, recorder CandidateRecorder, logger *zap.Logger) *IntakeMachine {
	if generator == nil {
		generator = OfflineQuestionGenerator{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IntakeMachine{
		generator: generator,
		recorder:  recorder,
		logger:    logger,
		now:       time.Now,
	}
}

// NewSession arranca en greeting con el saludo como primer mensaje.
func (m *IntakeMachine) NewSession() domain.Session {
	now := m.now().UTC()
	return domain.Session{
		ID:         uuid.NewString(),
		State:      domain.StateGreeting,
		Transcript: []domain.Message{domain.AssistantMessage(greetingMessage)},
		Questions:  []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Step aplica una entrada del usuario. La sesion recibida no se modifica.
func (m *IntakeMachine) Step(ctx context.Context, session domain.Session, input string) (domain.Session, []domain.Message) {
	sess, replies, completed := m.advance(ctx, session, input)
	if completed {
		m.persist(ctx, sess)
	}
	return sess, replies
}

// advance reduce sin persistir; completed indica que hay un registro listo
// para guardar. IntakeService lo guarda despues de salvar la sesion.
func (m *IntakeMachine) advance(ctx context.Context, session domain.Session, input string) (domain.Session, []domain.Message, bool) {
	sess := session.Clone()
	from := sess.State
	var replies []domain.Message
	say := func(content string) {
		msg := domain.AssistantMessage(content)
		sess.Transcript = append(sess.Transcript, msg)
		replies = append(replies, msg)
	}

	sess.Transcript = append(sess.Transcript, domain.UserMessage(input))
	sess.UpdatedAt = m.now().UTC()

	if IsEndIntent(input) {
		sess.State = domain.StateEnded
		say(endIntentClosing)
		m.logTransition(sess, from)
		return sess, replies, false
	}

	switch sess.State {
	case domain.StateGreeting, domain.StateCollecting:
		sess.State = domain.StateCollecting
		if field, pending := sess.Profile.NextMissing(); pending {
			m.collect(&sess, field, input, say)
		}
		if sess.Profile.Complete() {
			sess.State = domain.StateQuestioning
		}
	case domain.StateEnded:
		say(alreadyEndedMessage)
	}

	completed := false
	if sess.State == domain.StateQuestioning {
		completed = m.question(ctx, &sess, say)
	}

	m.logTransition(sess, from)
	return sess, replies, completed
}

func (m *IntakeMachine) collect(sess *domain.Session, field domain.Field, input string, say func(string)) {
	value := strings.TrimSpace(input)
	profile, ok := applyField(sess.Profile, field, value)
	if !ok {
		m.logger.Info("intake field rejected",
			zap.String("session_id", sess.ID),
			zap.String("field", string(field)),
		)
		say(fieldRePrompt(field))
		return
	}
	sess.Profile = profile

	next, pending := sess.Profile.NextMissing()
	if !pending {
		say(fieldsDoneAck)
		return
	}
	say(FieldPrompt(next))
}

// applyField valida y asigna; si no pasa la validacion el perfil no cambia.
func applyField(profile domain.CandidateProfile, field domain.Field, value string) (domain.CandidateProfile, bool) {
	switch field {
	case domain.FieldEmail:
		if !ValidateEmail(value) {
			return profile, false
		}
	case domain.FieldPhone:
		if !ValidatePhone(value) {
			return profile, false
		}
	case domain.FieldExperienceYears:
		years, ok := ParseExperienceYears(value)
		if !ok {
			return profile, false
		}
		return profile.WithExperienceYears(years), true
	}
	if value == "" {
		return profile, false
	}
	return profile.WithText(field, value), true
}

func (m *IntakeMachine) question(ctx context.Context, sess *domain.Session, say func(string)) bool {
	techStack := strings.TrimSpace(domain.StringValue(sess.Profile.TechStack))
	if techStack == "" {
		say(missingTechStackAsk)
		return false
	}

	set, err := m.generator.Generate(ctx, techStack)
	if err != nil || len(set.Questions) == 0 {
		m.logger.Warn("question generator failed, using offline bank",
			zap.String("session_id", sess.ID),
			zap.Error(err),
		)
		set, _ = OfflineQuestionGenerator{}.Generate(ctx, techStack)
	}
	sess.Questions = append([]string{}, set.Questions...)
	sess.QuestionSource = set.Source
	say(formatQuestionList(set))

	sess.State = domain.StateEnded
	say(screeningClosing)
	return true
}

// persist es best-effort: un fallo se registra y la conversacion sigue.
func (m *IntakeMachine) persist(ctx context.Context, sess domain.Session) {
	if m.recorder == nil {
		return
	}
	if err := m.recorder.Save(ctx, sess.Profile, sess.Questions); err != nil {
		m.logger.Warn("persist candidate record failed",
			zap.String("session_id", sess.ID),
			zap.Error(err),
		)
		return
	}
	m.logger.Info("candidate record persisted",
		zap.String("session_id", sess.ID),
		zap.Int("questions", len(sess.Questions)),
	)
}

func (m *IntakeMachine) logTransition(sess domain.Session, from domain.ConversationState) {
	if sess.State == from {
		return
	}
	m.logger.Info("intake state changed",
		zap.String("session_id", sess.ID),
		zap.String("from", string(from)),
		zap.String("to", string(sess.State)),
	)
}
