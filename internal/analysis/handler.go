package analysis

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"careerprep-backend/internal/extract"
	"careerprep-backend/internal/history"
	"careerprep-backend/internal/shared/metrics"
	"careerprep-backend/internal/shared/server/middleware"
	"careerprep-backend/internal/shared/server/respond"
	"careerprep-backend/internal/shared/telemetry"
	"careerprep-backend/internal/shared/util"
)

const (
	defaultTargetRole = "General Role"
	maxUploadBytes    = 10 << 20
)

// Handler wires the analyze endpoint to the pipeline service.
type Handler struct {
	Svc     *Service
	History history.Repo
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, historyRepo history.Repo) *Handler {
	return &Handler{Svc: svc, History: historyRepo}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, extra ...gin.HandlerFunc) {
	handlers := append(append([]gin.HandlerFunc{}, extra...), h.analyze)
	rg.POST("/analyze", handlers...)
}

func (h *Handler) analyze(c *gin.Context) {
	start := time.Now()
	metrics.IncAnalyzeRequests()

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "No resume file uploaded")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		respond.Error(c, http.StatusBadRequest, "Resume file is too large")
		return
	}

	targetRole := strings.TrimSpace(c.PostForm("jobRole"))
	if targetRole == "" {
		targetRole = defaultTargetRole
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "Could not read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "Could not read uploaded file")
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")

	result, source, err := h.Svc.Analyze(c.Request.Context(), data, mimeType, targetRole)
	if err != nil {
		switch {
		case errors.Is(err, extract.ErrUnsupportedType):
			respond.Error(c, http.StatusBadRequest, fmt.Sprintf("Unsupported file type: %s. Upload a PDF, DOCX or plain-text resume.", mimeType))
		case errors.Is(err, ErrNotResume):
			metrics.IncAnalyzeRejected()
			respond.Error(c, http.StatusBadRequest, fmt.Sprintf(
				"The uploaded file does not look like a resume. Expected sections such as %s.",
				strings.Join(ExpectedSections(), ", ")))
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to analyze resume")
		}
		return
	}

	c.Set("analysisSource", string(source))
	switch source {
	case SourceAI:
		metrics.IncAnalyzeAI()
	case SourceFallback:
		metrics.IncAnalyzeFallback()
	}
	durationMs := time.Since(start).Milliseconds()
	metrics.ObserveAnalyzeDurationMs(float64(durationMs))

	h.record(c, fileHeader.Filename, mimeType, targetRole, source, result.Status, durationMs)

	respond.OK(c, result)
}

// record writes the request metadata to the history log. The analysis
// payload itself is never persisted. A failed write is logged and
// otherwise ignored; the client already has its result.
func (h *Handler) record(c *gin.Context, fileName, mimeType, targetRole string, source Source, status string, durationMs int64) {
	if h.History == nil {
		return
	}
	safeName, err := util.SanitizeFileName(fileName)
	if err != nil {
		safeName = "resume"
	}
	// Client ids are stored hashed; raw ids never reach the database.
	rec := history.Record{
		ID:         uuid.NewString(),
		ClientID:   util.HashClientKey(middleware.ClientIDFromContext(c)),
		TargetRole: targetRole,
		FileName:   safeName,
		MimeType:   mimeType,
		Source:     string(source),
		Status:     status,
		DurationMs: durationMs,
		CreatedAt:  time.Now().UTC(),
	}
	if err := h.History.Save(c.Request.Context(), rec); err != nil {
		telemetry.Error("history.save.failed", map[string]any{"error": err.Error()})
	}
}
