package analyses

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"researchspark-backend/internal/llm"
	"researchspark-backend/internal/shared/server/respond"
	"researchspark-backend/internal/shared/util"
)

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis and credential routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyses", h.analyze)
	rg.GET("/analyses/state", h.state)
	rg.POST("/analyses/reset", h.reset)

	rg.PUT("/credential", h.setCredential)
	rg.GET("/credential", h.credentialStatus)
	rg.DELETE("/credential", h.clearCredential)
	rg.POST("/credential/test", h.testCredential)
}

func (h *Handler) analyze(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, CodeValidation, "invalid request body", nil)
		return
	}

	words := util.CountWords(req.ResearchText)
	if words == 0 {
		respond.Error(c, http.StatusBadRequest, CodeEmptyInput, "researchText is required", nil)
		return
	}
	if words < MinWords {
		respond.Error(c, http.StatusBadRequest, CodeEmptyInput,
			fmt.Sprintf("researchText should be at least %d words for a meaningful analysis", MinWords),
			gin.H{"wordCount": words})
		return
	}
	if req.Field != "" && !ValidField(req.Field) {
		respond.Error(c, http.StatusBadRequest, CodeValidation, "unrecognized field tag", gin.H{"field": req.Field})
		return
	}

	analysis, err := h.Svc.Analyze(c.Request.Context(), req)
	if err != nil {
		writeAnalysisError(c, err)
		return
	}

	c.Set("stateTransition", "analyzing->success")
	respond.OK(c, analysis)
}

func (h *Handler) state(c *gin.Context) {
	snap := h.Svc.State()
	resp := gin.H{"state": snap.State}
	if snap.Analysis != nil {
		resp["analysis"] = snap.Analysis
	}
	if snap.Err != nil {
		code, _, message, details := classifyAnalysisError(snap.Err)
		resp["error"] = gin.H{"code": code, "message": message}
		if details != nil {
			resp["errorDetails"] = details
		}
	}
	respond.OK(c, resp)
}

func (h *Handler) reset(c *gin.Context) {
	h.Svc.Reset()
	respond.OK(c, gin.H{"state": StateIdle})
}

type credentialRequest struct {
	APIKey string `json:"apiKey"`
}

func (h *Handler) setCredential(c *gin.Context) {
	var req credentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, CodeValidation, "invalid request body", nil)
		return
	}

	valid, err := h.Svc.SetCredential(c.Request.Context(), req.APIKey)
	if err != nil {
		writeAnalysisError(c, err)
		return
	}

	configured, _ := h.Svc.CredentialStatus()
	respond.OK(c, gin.H{"configured": configured, "validated": valid})
}

func (h *Handler) credentialStatus(c *gin.Context) {
	configured, validated := h.Svc.CredentialStatus()
	respond.OK(c, gin.H{"configured": configured, "validated": validated})
}

func (h *Handler) clearCredential(c *gin.Context) {
	if err := h.Svc.ClearCredential(); err != nil {
		respond.Error(c, http.StatusInternalServerError, CodeInternal, "failed to clear credential", nil)
		return
	}
	respond.OK(c, gin.H{"configured": false, "validated": false})
}

func (h *Handler) testCredential(c *gin.Context) {
	var req credentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, CodeValidation, "invalid request body", nil)
		return
	}

	valid, err := h.Svc.TestCredential(c.Request.Context(), req.APIKey)
	if err != nil {
		writeAnalysisError(c, err)
		return
	}
	respond.OK(c, gin.H{"valid": valid})
}

func writeAnalysisError(c *gin.Context, err error) {
	code, status, message, details := classifyAnalysisError(err)
	respond.Error(c, status, code, message, details)
}

// classifyAnalysisError maps the error taxonomy onto response codes. Every
// error is surfaced as one user-visible notification; nothing propagates to
// the render path unhandled.
func classifyAnalysisError(err error) (code string, status int, message string, details interface{}) {
	var svcErr *llm.ServiceError
	var unparsable *UnparsableResultError
	var incomplete *IncompleteResultError
	var invalid *InvalidResultError

	switch {
	case errors.Is(err, ErrEmptyInput):
		return CodeEmptyInput, http.StatusBadRequest, "researchText is required", nil
	case errors.Is(err, ErrEmptyCredential):
		return CodeValidation, http.StatusBadRequest, "apiKey is required", nil
	case errors.Is(err, ErrMissingCredential):
		return CodeCredentialRequired, http.StatusUnauthorized, "Provide your API key to analyze research", nil
	case errors.Is(err, ErrInvalidCredential):
		return CodeCredentialInvalid, http.StatusUnauthorized, "Your API key is not valid. Please update it.", nil
	case errors.Is(err, ErrBusy):
		return CodeBusy, http.StatusConflict, "Another analysis is already in flight", nil
	case errors.As(err, &svcErr):
		return CodeExternalService, http.StatusBadGateway, "The analysis service returned an error", gin.H{"upstreamStatus": svcErr.Status, "upstreamMessage": svcErr.Message}
	case errors.Is(err, llm.ErrMalformedResponse):
		return CodeMalformedResponse, http.StatusBadGateway, "The analysis service returned an unexpected response format", nil
	case errors.As(err, &unparsable):
		return CodeUnparsableResult, http.StatusUnprocessableEntity, "Failed to parse analysis results. Please try again.", nil
	case errors.As(err, &incomplete):
		return CodeIncompleteResult, http.StatusUnprocessableEntity, "The analysis came back incomplete. Please try again.", gin.H{"missing": incomplete.Missing}
	case errors.As(err, &invalid):
		return CodeInvalidResult, http.StatusUnprocessableEntity, "The analysis contained invalid values. Please try again.", gin.H{"reason": invalid.Reason}
	default:
		return CodeInternal, http.StatusInternalServerError, "Failed to analyze research", nil
	}
}
