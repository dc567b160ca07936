package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"noticeflow/middleware"
	"noticeflow/notice"
)

// accessTokenHeader carries the per-record capability token on mutations
// of an existing stage.
const accessTokenHeader = "X-Access-Token"

type ProcessHandler struct {
	svc            *notice.Service
	defaultCountry string
}

func NewProcessHandler(svc *notice.Service, defaultCountry string) *ProcessHandler {
	return &ProcessHandler{svc: svc, defaultCountry: defaultCountry}
}

// Create opens a new process at its initial stage.
// POST /api/v1/processes?country=MD&stage=PN
func (h *ProcessHandler) Create(c *gin.Context) {
	country := c.Query("country")
	if country == "" {
		country = h.defaultCountry
	}
	stage, ok := notice.ParseStage(c.DefaultQuery("stage", string(notice.StagePN)))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown stage"})
		return
	}

	var tender notice.Tender
	if err := c.ShouldBindJSON(&tender); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.svc.Create(c.Request.Context(), notice.CreateParams{
		Country: country,
		Stage:   stage,
		Owner:   middleware.GetOwner(c),
		Tender:  tender,
	})
	if err != nil {
		writeEngineError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resultBody(result))
}

// Derive builds the next stage from a stored predecessor stage.
// POST /api/v1/processes/:processId/stages/:stage?from=PN&date=2026-01-02T15:04:05Z
func (h *ProcessHandler) Derive(c *gin.Context) {
	newStage, ok := notice.ParseStage(c.Param("stage"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown stage"})
		return
	}
	fromStage, ok := notice.ParseStage(c.Query("from"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown predecessor stage"})
		return
	}
	if required, ok := notice.DerivesFrom(newStage); !ok || required != fromStage {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stage cannot be derived from the given predecessor"})
		return
	}

	startDate, err := time.Parse(time.RFC3339, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
		return
	}

	var tender notice.Tender
	if err := c.ShouldBindJSON(&tender); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.svc.Derive(c.Request.Context(), notice.DeriveParams{
		ProcessID: c.Param("processId"),
		FromStage: fromStage,
		NewStage:  newStage,
		Owner:     middleware.GetOwner(c),
		Token:     c.GetHeader(accessTokenHeader),
		StartDate: startDate,
		Tender:    tender,
	})
	if err != nil {
		writeEngineError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resultBody(result))
}

// Relaunch rolls an active stage over into a new working stage.
// POST /api/v1/processes/:processId/relaunch?from=CN&stage=CN2
func (h *ProcessHandler) Relaunch(c *gin.Context) {
	fromStage, ok := notice.ParseStage(c.Query("from"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown predecessor stage"})
		return
	}
	newStage := c.Query("stage")
	if newStage == "" || newStage == string(fromStage) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid working stage name"})
		return
	}
	if _, base := notice.ParseStage(newStage); base {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Working stage name is reserved"})
		return
	}

	result, err := h.svc.Rollover(c.Request.Context(), notice.RolloverParams{
		ProcessID: c.Param("processId"),
		FromStage: fromStage,
		NewStage:  newStage,
		Owner:     middleware.GetOwner(c),
		Token:     c.GetHeader(accessTokenHeader),
	})
	if err != nil {
		writeEngineError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resultBody(result))
}

func resultBody(r notice.Result) gin.H {
	return gin.H{
		"processId": r.ProcessID,
		"stage":     r.Stage,
		"token":     r.Token,
		"payload":   r.Tender,
	}
}

// writeEngineError maps the engine's closed error taxonomy onto HTTP.
func writeEngineError(c *gin.Context, err error) {
	var engineErr *notice.Error
	if !errors.As(err, &engineErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	status := http.StatusUnprocessableEntity
	switch engineErr {
	case notice.ErrDataNotFound:
		status = http.StatusNotFound
	case notice.ErrInvalidOwner, notice.ErrInvalidToken:
		status = http.StatusForbidden
	}

	c.JSON(status, gin.H{"code": engineErr.Code, "message": engineErr.Message})
}
