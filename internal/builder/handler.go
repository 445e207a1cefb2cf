package builder

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"careerprep-backend/internal/shared/metrics"
	"careerprep-backend/internal/shared/server/respond"
	"careerprep-backend/internal/shared/storage/object"
	"careerprep-backend/internal/shared/telemetry"
)

const (
	docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	downloadName    = "MyResume.docx"
)

// Handler serves resume document generation and re-download.
type Handler struct {
	Store object.ObjectStore
}

// NewHandler constructs a Handler.
func NewHandler(store object.ObjectStore) *Handler {
	return &Handler{Store: store}
}

// RegisterRoutes attaches builder routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate-resume", h.generate)
	rg.GET("/resumes/:id", h.download)
}

func (h *Handler) generate(c *gin.Context) {
	var content ResumeContent
	if err := c.ShouldBindJSON(&content); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid resume content")
		return
	}

	data, err := Render(content)
	if err != nil {
		telemetry.Error("builder.render.failed", map[string]any{"error": err.Error()})
		respond.Error(c, http.StatusInternalServerError, "Failed to generate resume")
		return
	}
	metrics.IncResumesRendered()

	resumeID := h.archive(c, data)
	if resumeID != "" {
		c.Header("X-Resume-Id", resumeID)
	}

	c.Header("Content-Disposition", `attachment; filename=`+downloadName)
	c.Data(http.StatusOK, docxContentType, data)
}

// archive keeps a copy of the generated document in the object store so
// it can be re-downloaded later. Failures are logged and ignored; the
// client still gets its document.
func (h *Handler) archive(c *gin.Context, data []byte) string {
	if h.Store == nil {
		return ""
	}
	resumeID := uuid.NewString()
	key := storageKey(resumeID)
	if _, err := h.Store.SaveWithKey(c.Request.Context(), key, docxContentType, bytes.NewReader(data)); err != nil {
		telemetry.Error("builder.archive.failed", map[string]any{"error": err.Error(), "key": key})
		return ""
	}
	return resumeID
}

func (h *Handler) download(c *gin.Context) {
	resumeID := c.Param("id")
	if h.Store == nil || resumeID == "" || uuid.Validate(resumeID) != nil {
		respond.Error(c, http.StatusNotFound, "Resume not found")
		return
	}

	reader, err := h.Store.Open(c.Request.Context(), storageKey(resumeID))
	if err != nil {
		respond.Error(c, http.StatusNotFound, "Resume not found")
		return
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to read resume")
		return
	}

	c.Header("Content-Disposition", `attachment; filename=`+downloadName)
	c.Data(http.StatusOK, docxContentType, data)
}

func storageKey(resumeID string) string {
	return "generated/" + resumeID + ".docx"
}
