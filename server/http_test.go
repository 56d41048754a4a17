package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type fakeChatService struct {
	askSessionID   string
	askQuery       string
	answer         string
	resetSessionID string
	resetOK        bool
}

func (f *fakeChatService) Ask(_ context.Context, sessionID, query string) (string, string) {
	f.askSessionID = sessionID
	f.askQuery = query
	sid := sessionID
	if sid == "" {
		sid = "generated-id"
	}
	return sid, f.answer
}

func (f *fakeChatService) Reset(sessionID string) bool {
	f.resetSessionID = sessionID
	return f.resetOK
}

func newTestRouter(svc ChatService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return New(Config{}, svc).Router()
}

func TestChatEndpoint(t *testing.T) {
	svc := &fakeChatService{answer: "정원레스토랑을 추천해요."}
	router := newTestRouter(svc)

	body := `{"session_id": "session-a", "message": "파스타 맛집 추천해줘"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d (%s)", rec.Code, rec.Body.String())
	}
	var resp chatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.SessionID != "session-a" || resp.Answer != "정원레스토랑을 추천해요." {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if svc.askQuery != "파스타 맛집 추천해줘" {
		t.Fatalf("unexpected query passed through: %q", svc.askQuery)
	}
}

func TestChatEndpointAllocatesSession(t *testing.T) {
	router := newTestRouter(&fakeChatService{answer: "안녕하세요!"})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message": "안녕"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	var resp chatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.SessionID != "generated-id" {
		t.Fatalf("expected the service-issued session id, got %q", resp.SessionID)
	}
}

func TestChatEndpointRejectsBlankMessage(t *testing.T) {
	router := newTestRouter(&fakeChatService{})

	for _, body := range []string{`{"message": "   "}`, `{}`, `{broken`} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %q: unexpected status %d", body, rec.Code)
		}
	}
}

func TestResetEndpoint(t *testing.T) {
	svc := &fakeChatService{resetOK: true}
	router := newTestRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reset", strings.NewReader(`{"session_id": "session-a"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if svc.resetSessionID != "session-a" {
		t.Fatalf("unexpected session id passed through: %q", svc.resetSessionID)
	}
}

func TestResetEndpointUnknownSession(t *testing.T) {
	router := newTestRouter(&fakeChatService{resetOK: false})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reset", strings.NewReader(`{"session_id": "nope"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(&fakeChatService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}
