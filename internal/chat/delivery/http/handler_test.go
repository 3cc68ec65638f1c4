package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"ess-chatbot/internal/catalog"
	"ess-chatbot/internal/chat"
	"ess-chatbot/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type fakeUseCase struct {
	out     chat.ProcessOutput
	err     error
	lastSC  model.Scope
	lastMsg string
}

func (f *fakeUseCase) Process(ctx context.Context, sc model.Scope, input chat.ProcessInput) (chat.ProcessOutput, error) {
	f.lastSC = sc
	f.lastMsg = input.Message
	return f.out, f.err
}

func setupRouter(t *testing.T, uc chat.UseCase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat, err := catalog.New([]model.IntentDefinition{
		{Name: "greeting", Visibility: model.VisibilityPublic, Examples: []string{"hello"}},
		{Name: "salary_info", Visibility: model.VisibilityPrivate, Examples: []string{"my salary"}},
	})
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}

	h := New(&mockLogger{}, uc, cat)
	r := gin.New()
	r.POST("/api/v1/chat", h.ProcessMessage)
	r.GET("/api/v1/intents", h.ListIntents)
	return r
}

func TestProcessMessage(t *testing.T) {
	t.Run("Valid Request", func(t *testing.T) {
		uc := &fakeUseCase{out: chat.ProcessOutput{
			ResponseText: "Hello!",
			Intent:       "greeting",
			Confidence:   0.93,
			Authorized:   true,
		}}
		r := setupRouter(t, uc)

		w := httptest.NewRecorder()
		body := `{"session_id":"s-123","message":"hello there"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if uc.lastSC.SessionID != "s-123" || uc.lastMsg != "hello there" {
			t.Errorf("scope or message not forwarded: %+v %q", uc.lastSC, uc.lastMsg)
		}

		var resp struct {
			Message string             `json:"message"`
			Data    chat.ProcessOutput `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Data.ResponseText != "Hello!" || resp.Data.Intent != "greeting" {
			t.Errorf("unexpected payload: %+v", resp.Data)
		}
	})

	t.Run("Session Header Carries The Handle", func(t *testing.T) {
		uc := &fakeUseCase{out: chat.ProcessOutput{ResponseText: "ok", Authorized: true}}
		r := setupRouter(t, uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"message":"my salary"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Session-ID", "s-456")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if uc.lastSC.SessionID != "s-456" {
			t.Errorf("header session id not forwarded, got %q", uc.lastSC.SessionID)
		}
	})

	t.Run("Body Session Wins Over Header", func(t *testing.T) {
		uc := &fakeUseCase{out: chat.ProcessOutput{ResponseText: "ok", Authorized: true}}
		r := setupRouter(t, uc)

		w := httptest.NewRecorder()
		body := `{"session_id":"s-body","message":"my salary"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Session-ID", "s-header")
		r.ServeHTTP(w, req)

		if uc.lastSC.SessionID != "s-body" {
			t.Errorf("body session id must take precedence, got %q", uc.lastSC.SessionID)
		}
	})

	t.Run("Missing Message Field", func(t *testing.T) {
		r := setupRouter(t, &fakeUseCase{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"session_id":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Empty Message Maps To Bad Request", func(t *testing.T) {
		r := setupRouter(t, &fakeUseCase{err: chat.ErrEmptyMessage})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"message":"   "}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestListIntents(t *testing.T) {
	r := setupRouter(t, &fakeUseCase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/intents", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Data struct {
			Intents []intentItem `json:"intents"`
			Count   int          `json:"count"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.Count != 2 || resp.Data.Intents[1].Visibility != "private" {
		t.Errorf("unexpected intents payload: %+v", resp.Data)
	}
}
