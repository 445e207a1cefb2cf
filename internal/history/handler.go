package history

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"careerprep-backend/internal/shared/server/middleware"
	"careerprep-backend/internal/shared/server/respond"
	"careerprep-backend/internal/shared/util"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// Handler serves the analysis request log.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches history routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/history", h.list)
}

func (h *Handler) list(c *gin.Context) {
	// Records are keyed by the hashed client id, matching what the
	// analyze handler stores.
	clientID := util.HashClientKey(middleware.ClientIDFromContext(c))

	limit := queryInt(c, "limit", defaultListLimit)
	if limit < 1 || limit > maxListLimit {
		limit = defaultListLimit
	}
	offset := queryInt(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	records, err := h.Repo.List(c.Request.Context(), clientID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to load history")
		return
	}
	respond.OK(c, gin.H{"history": records})
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
