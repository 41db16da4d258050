package analyses

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"researchspark-backend/internal/credentials"
)

func newTestRouter(t *testing.T, client *stubClient) (*gin.Engine, *Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := credentials.NewStore(filepath.Join(t.TempDir(), "credential"))
	svc := NewService(store, client, "test-model")
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r, svc
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return resp.Error.Code
}

func TestAnalyzeEndpointSuccess(t *testing.T) {
	client := &stubClient{analyzeResponse: validResultJSON, verifyResult: true}
	r, svc := newTestRouter(t, client)
	primeCredential(t, svc, client)

	w := doJSON(t, r, http.MethodPost, "/api/v1/analyses", gin.H{
		"researchText": researchText,
		"field":        "biotech",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var analysis Analysis
	if err := json.Unmarshal(w.Body.Bytes(), &analysis); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if analysis.Result == nil || analysis.Result.OverallScore != 74 {
		t.Fatalf("expected overall score 74, got %+v", analysis.Result)
	}
	if analysis.Field != "biotech" {
		t.Errorf("expected field echoed, got %q", analysis.Field)
	}
}

func TestAnalyzeEndpointValidation(t *testing.T) {
	cases := []struct {
		name       string
		body       gin.H
		wantStatus int
		wantCode   string
	}{
		{
			name:       "empty text",
			body:       gin.H{"researchText": ""},
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeEmptyInput,
		},
		{
			name:       "whitespace only",
			body:       gin.H{"researchText": "  \n\t  "},
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeEmptyInput,
		},
		{
			name:       "under word floor",
			body:       gin.H{"researchText": "too short to analyze"},
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeEmptyInput,
		},
		{
			name:       "unknown field tag",
			body:       gin.H{"researchText": researchText, "field": "astrology"},
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeValidation,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := &stubClient{analyzeResponse: validResultJSON}
			r, svc := newTestRouter(t, client)
			primeCredential(t, svc, client)

			w := doJSON(t, r, http.MethodPost, "/api/v1/analyses", tc.body)
			if w.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tc.wantStatus, w.Code, w.Body.String())
			}
			if got := errorCode(t, w); got != tc.wantCode {
				t.Errorf("expected code %q, got %q", tc.wantCode, got)
			}
			if client.analyzeCalls != 0 {
				t.Errorf("expected no outbound call, got %d", client.analyzeCalls)
			}
		})
	}
}

func TestAnalyzeEndpointCredentialRequired(t *testing.T) {
	client := &stubClient{}
	r, _ := newTestRouter(t, client)

	w := doJSON(t, r, http.MethodPost, "/api/v1/analyses", gin.H{"researchText": researchText})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if got := errorCode(t, w); got != CodeCredentialRequired {
		t.Errorf("expected %q, got %q", CodeCredentialRequired, got)
	}
}

func TestAnalyzeEndpointUpstreamFailure(t *testing.T) {
	cases := []struct {
		name       string
		response   string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "unparsable output",
			response:   "sorry, no JSON here",
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   CodeUnparsableResult,
		},
		{
			name:       "incomplete output",
			response:   `{"marketAnalysis": {"score": 50}, "overallScore": 50, "investmentRecommendation": "HOLD"}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   CodeIncompleteResult,
		},
		{
			name:       "out of range score",
			response:   strings.Replace(validResultJSON, `"overallScore": 74`, `"overallScore": 740`, 1),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   CodeInvalidResult,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := &stubClient{analyzeResponse: tc.response}
			r, svc := newTestRouter(t, client)
			primeCredential(t, svc, client)

			w := doJSON(t, r, http.MethodPost, "/api/v1/analyses", gin.H{"researchText": researchText})
			if w.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tc.wantStatus, w.Code, w.Body.String())
			}
			if got := errorCode(t, w); got != tc.wantCode {
				t.Errorf("expected code %q, got %q", tc.wantCode, got)
			}
		})
	}
}

func TestCredentialEndpoints(t *testing.T) {
	client := &stubClient{verifyResult: true}
	r, _ := newTestRouter(t, client)

	// Initial status: nothing configured.
	w := doJSON(t, r, http.MethodGet, "/api/v1/credential", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var status struct {
		Configured bool `json:"configured"`
		Validated  bool `json:"validated"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &status); err != nil {
		t.Fatal(err)
	}
	if status.Configured || status.Validated {
		t.Fatalf("expected unconfigured status, got %+v", status)
	}

	// Store and validate a key. The secret never appears in the response.
	w = doJSON(t, r, http.MethodPut, "/api/v1/credential", gin.H{"apiKey": "sk-test"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), "sk-test") {
		t.Fatal("response must not leak the secret")
	}
	if err := json.Unmarshal(w.Body.Bytes(), &status); err != nil {
		t.Fatal(err)
	}
	if !status.Configured || !status.Validated {
		t.Fatalf("expected configured and validated, got %+v", status)
	}

	// Probe a candidate without storing it.
	w = doJSON(t, r, http.MethodPost, "/api/v1/credential/test", gin.H{"apiKey": "sk-other"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	// Delete is idempotent.
	for i := 0; i < 2; i++ {
		w = doJSON(t, r, http.MethodDelete, "/api/v1/credential", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("delete attempt %d: expected 200, got %d", i+1, w.Code)
		}
	}
	w = doJSON(t, r, http.MethodGet, "/api/v1/credential", nil)
	if err := json.Unmarshal(w.Body.Bytes(), &status); err != nil {
		t.Fatal(err)
	}
	if status.Configured {
		t.Fatal("expected credential cleared")
	}
}

func TestStateAndResetEndpoints(t *testing.T) {
	client := &stubClient{analyzeResponse: validResultJSON}
	r, svc := newTestRouter(t, client)
	primeCredential(t, svc, client)

	w := doJSON(t, r, http.MethodPost, "/api/v1/analyses", gin.H{"researchText": researchText})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/analyses/state", nil)
	var state struct {
		State    string          `json:"state"`
		Analysis json.RawMessage `json:"analysis"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &state); err != nil {
		t.Fatal(err)
	}
	if state.State != string(StateSuccess) {
		t.Fatalf("expected success, got %q", state.State)
	}
	if len(state.Analysis) == 0 {
		t.Fatal("expected held analysis in state response")
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/analyses/reset", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := svc.State().State; got != StateIdle {
		t.Fatalf("expected idle after reset, got %q", got)
	}
}
