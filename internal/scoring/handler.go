package scoring

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"resume-scorer/internal/model"
	"resume-scorer/internal/shared/metrics"
	"resume-scorer/internal/shared/server/middleware"
	"resume-scorer/internal/shared/server/respond"
	"resume-scorer/internal/shared/telemetry"
)

// Handler exposes the scoring endpoint.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches scoring routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/score", h.postScore)
}

func (h *Handler) postScore(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid request body", bindDetails(err))
		return
	}
	c.Set("goal", req.Goal)
	c.Set("studentId", req.StudentID)

	telemetry.Info("score.request", map[string]any{
		"request_id": middleware.RequestIDFromContext(c),
		"student_id": req.StudentID,
		"goal":       req.Goal,
	})

	metrics.IncScoreRequest()
	start := time.Now()
	result, err := h.Svc.Score(req.Goal, req.ResumeText)
	metrics.ObserveScoreDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	if err != nil {
		metrics.IncScoreError()
		switch {
		case errors.Is(err, ErrUnknownGoal):
			msg := fmt.Sprintf("Unsupported goal %q. Supported: %s", req.Goal, strings.Join(h.Svc.Goals(), ", "))
			respond.Error(c, http.StatusBadRequest, ErrorCodeUnknownGoal, msg, nil)
		case errors.Is(err, model.ErrModelUnavailable):
			respond.Error(c, http.StatusServiceUnavailable, ErrorCodeModelUnavailable, "No trained model is available for this goal", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "Failed to score resume", nil)
		}
		return
	}
	metrics.IncScoreOutcome(result.IsPass)

	respond.OK(c, result)
}

func bindDetails(err error) any {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		fields := make([]string, 0, len(verr))
		for _, fe := range verr {
			fields = append(fields, fe.Field())
		}
		return gin.H{"invalid_fields": fields}
	}
	return nil
}
