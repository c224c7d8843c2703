package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adveng/tata-car-advisor/apimodels"
	"github.com/adveng/tata-car-advisor/internal/advisor"
	"github.com/adveng/tata-car-advisor/internal/config"
)

type stubAdvisor struct {
	resp *apimodels.ChatResponse
	err  error
}

func (s *stubAdvisor) Advise(_ context.Context, _ apimodels.ChatRequest) (*apimodels.ChatResponse, error) {
	return s.resp, s.err
}

func newTestServer(adv ChatService) *Server {
	cfg := config.ServerConfig{
		Host:           "127.0.0.1",
		Port:           "0",
		ReadTimeout:    time.Second,
		WriteTimeout:   time.Second,
		RequestTimeout: time.Second,
		StaticDir:      ".",
	}
	return New(cfg, adv, []string{"gemini", "groq"})
}

func postJSON(t *testing.T, h http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestChatSuccess(t *testing.T) {
	adv := &stubAdvisor{resp: &apimodels.ChatResponse{
		Answer:   "The Nexon is a great fit.",
		Provider: "gemini",
		Model:    "gemini-2.5-flash",
	}}
	s := newTestServer(adv)

	rec := postJSON(t, s.Handler(), "/api/v1/chat", apimodels.ChatRequest{Query: "Which Tata for Pune?"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp apimodels.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "The Nexon is a great fit.", resp.Answer)
	assert.Equal(t, "gemini", resp.Provider)
}

func TestChatEmptyQuery(t *testing.T) {
	s := newTestServer(&stubAdvisor{})

	rec := postJSON(t, s.Handler(), "/api/v1/chat", apimodels.ChatRequest{Query: "   "})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp apimodels.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "query is required", resp.Error)
}

func TestChatMalformedBody(t *testing.T) {
	s := newTestServer(&stubAdvisor{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatAllProvidersDown(t *testing.T) {
	adv := &stubAdvisor{err: fmt.Errorf("%w: connection refused", advisor.ErrUnavailable)}
	s := newTestServer(adv)

	rec := postJSON(t, s.Handler(), "/api/v1/chat", apimodels.ChatRequest{Query: "Which Tata for Delhi?"})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestChatGuardrailReplyIsOK(t *testing.T) {
	adv := &stubAdvisor{resp: &apimodels.ChatResponse{
		Answer:   "I can only help with Tata Motors vehicles.",
		Provider: "guardrail",
	}}
	s := newTestServer(adv)

	rec := postJSON(t, s.Handler(), "/api/v1/chat", apimodels.ChatRequest{Query: "Tata vs Maruti?"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp apimodels.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "guardrail", resp.Provider)
}

func TestFilterEndpoint(t *testing.T) {
	s := newTestServer(&stubAdvisor{})

	rec := postJSON(t, s.Handler(), "/api/v1/filter", apimodels.FilterRequest{
		BudgetMin: 10,
		BudgetMax: 16,
		Fuel:      "Petrol",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp apimodels.FilterResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, len(resp.Cars), resp.TotalMatches)
	require.NotEmpty(t, resp.Cars)

	names := make([]string, 0, len(resp.Cars))
	for _, c := range resp.Cars {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "Tata Nexon")
	assert.NotContains(t, names, "Tata Harrier")
}

func TestFilterDefaultsMatchEverything(t *testing.T) {
	s := newTestServer(&stubAdvisor{})

	rec := postJSON(t, s.Handler(), "/api/v1/filter", apimodels.FilterRequest{})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp apimodels.FilterResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Greater(t, resp.TotalMatches, 5)
}

func TestStatusEndpoint(t *testing.T) {
	s := newTestServer(&stubAdvisor{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/status", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp apimodels.StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, []string{"gemini", "groq"}, resp.Providers)
}
