package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"talent-scout/internal/domain"
	"talent-scout/internal/repository"
	"talent-scout/internal/service"
)

type mockRecordRepo struct {
	records []domain.CandidateRecord
}

func (m *mockRecordRepo) Append(_ context.Context, record domain.CandidateRecord) error {
	m.records = append(m.records, record)
	return nil
}

type brokenSessionRepo struct{}

func (brokenSessionRepo) Load(context.Context) (domain.Session, error) {
	return domain.Session{}, errors.New("redis down")
}

func (brokenSessionRepo) Save(context.Context, domain.Session) error {
	return errors.New("redis down")
}

func (brokenSessionRepo) Clear(context.Context) error {
	return errors.New("redis down")
}

func setupIntakeRouter(sessions repository.SessionRepository, records repository.RecordRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	recorder := service.NewRecordService(records, "salt")
	machine := service.NewIntakeMachine(service.NewFallbackQuestionGenerator(nil, logger), recorder, logger)
	intake := service.NewIntakeService(machine, sessions, logger)
	return NewRouter(logger, NewIntakeHandler(logger, intake, false))
}

type messageResponse struct {
	Session domain.Session   `json:"session"`
	Replies []domain.Message `json:"replies"`
}

func postMessage(t *testing.T, r *gin.Engine, content string) (int, messageResponse) {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"content": content})
	req := httptest.NewRequest(http.MethodPost, "/session/message", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var out messageResponse
	if rec.Code == http.StatusOK {
		if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return rec.Code, out
}

func TestHealth(t *testing.T) {
	r := setupIntakeRouter(repository.NewMemorySessionRepository(), &mockRecordRepo{})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"llm_enabled":false`) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
	if rec.Header().Get(requestIDHeader) == "" {
		t.Fatalf("expected generated request id header")
	}
}

func TestRequestIDIsPropagated(t *testing.T) {
	r := setupIntakeRouter(repository.NewMemorySessionRepository(), &mockRecordRepo{})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "req-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if got := rec.Header().Get(requestIDHeader); got != "req-123" {
		t.Fatalf("expected propagated request id, got %q", got)
	}
}

func TestGetSession_CreatesGreeting(t *testing.T) {
	r := setupIntakeRouter(repository.NewMemorySessionRepository(), &mockRecordRepo{})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/session", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var out struct {
		Session domain.Session `json:"session"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Session.State != domain.StateGreeting || len(out.Session.Transcript) != 1 {
		t.Fatalf("expected greeting session, got %+v", out.Session)
	}
}

func TestPostMessage_Validation(t *testing.T) {
	r := setupIntakeRouter(repository.NewMemorySessionRepository(), &mockRecordRepo{})
	for _, body := range []string{`{}`, `{"content":null}`, `not json`} {
		req := httptest.NewRequest(http.MethodPost, "/session/message", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestPostMessage_BlankContentRepromptsField(t *testing.T) {
	r := setupIntakeRouter(repository.NewMemorySessionRepository(), &mockRecordRepo{})
	if code, _ := postMessage(t, r, "John Doe"); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}

	code, out := postMessage(t, r, "   ")
	if code != http.StatusOK {
		t.Fatalf("expected 200 for blank content, got %d", code)
	}
	if out.Session.State != domain.StateCollecting || out.Session.Profile.Email != nil {
		t.Fatalf("expected email still pending, got %+v", out.Session)
	}
	if len(out.Replies) != 1 || out.Replies[0].Content == service.FieldPrompt(domain.FieldEmail) {
		t.Fatalf("expected a single email re-prompt, got %+v", out.Replies)
	}
	// saludo, nombre, pedido de email, blanco, repregunta
	if n := len(out.Session.Transcript); n != 5 {
		t.Fatalf("expected blank turn recorded in transcript, got %d messages", n)
	}
	if got := out.Session.Transcript[3]; got.Role != domain.RoleUser || got.Content != "   " {
		t.Fatalf("expected raw user turn, got %+v", got)
	}
}

func TestPostMessage_FullConversation(t *testing.T) {
	records := &mockRecordRepo{}
	r := setupIntakeRouter(repository.NewMemorySessionRepository(), records)

	code, out := postMessage(t, r, "John Doe")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if len(out.Replies) != 1 || out.Replies[0].Content != service.FieldPrompt(domain.FieldEmail) {
		t.Fatalf("expected email prompt, got %+v", out.Replies)
	}

	_, out = postMessage(t, r, "not-an-email")
	if out.Session.State != domain.StateCollecting || out.Session.Profile.Email != nil {
		t.Fatalf("expected rejected email, got %+v", out.Session)
	}

	for _, in := range []string{"john@example.com", "+1 555 123 4567", "4", "SRE", "Berlin, Germany", "Kubernetes, Docker"} {
		code, out = postMessage(t, r, in)
		if code != http.StatusOK {
			t.Fatalf("input %q: expected 200, got %d", in, code)
		}
	}
	if out.Session.State != domain.StateEnded {
		t.Fatalf("expected ended, got %q", out.Session.State)
	}
	if len(out.Session.Questions) != 4 {
		t.Fatalf("expected 4 offline questions, got %v", out.Session.Questions)
	}
	if len(records.records) != 1 {
		t.Fatalf("expected one persisted record, got %d", len(records.records))
	}
	if records.records[0].IDEmail == nil || *records.records[0].IDEmail == "john@example.com" {
		t.Fatalf("expected hashed email in record")
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/session/export", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on export, got %d", rec.Code)
	}
	if !strings.Contains(rec.Header().Get("Content-Disposition"), exportFileName) {
		t.Fatalf("expected attachment header, got %q", rec.Header().Get("Content-Disposition"))
	}
	var bundle domain.ExportBundle
	if err := json.Unmarshal(rec.Body.Bytes(), &bundle); err != nil {
		t.Fatalf("decode export: %v", err)
	}
	if domain.StringValue(bundle.Candidate.Email) != "john@example.com" || len(bundle.Questions) != 4 {
		t.Fatalf("unexpected export bundle %+v", bundle)
	}
}

func TestExport_NothingToExport(t *testing.T) {
	r := setupIntakeRouter(repository.NewMemorySessionRepository(), &mockRecordRepo{})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/session/export", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestReset(t *testing.T) {
	r := setupIntakeRouter(repository.NewMemorySessionRepository(), &mockRecordRepo{})
	_, first := postMessage(t, r, "John Doe")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/session/reset", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var out struct {
		Session domain.Session `json:"session"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Session.ID == first.Session.ID || !out.Session.Profile.Empty() || out.Session.State != domain.StateGreeting {
		t.Fatalf("expected fresh session, got %+v", out.Session)
	}
}

func TestSessionStoreFailures(t *testing.T) {
	r := setupIntakeRouter(brokenSessionRepo{}, &mockRecordRepo{})
	cases := []struct {
		method, path, body string
	}{
		{http.MethodGet, "/session", ""},
		{http.MethodPost, "/session/message", `{"content":"John"}`},
		{http.MethodPost, "/session/reset", ""},
		{http.MethodGet, "/session/export", ""},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("%s %s: expected 500, got %d", tc.method, tc.path, rec.Code)
		}
	}
}
