package analyses

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"resume-analyzer/internal/shared/server/middleware"
	"resume-analyzer/internal/shared/server/respond"
	"resume-analyzer/internal/versions"
	"resume-analyzer/resume/export"
	"resume-analyzer/resume/model"
	"resume-analyzer/resume/taxonomy"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis and version routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
	rg.GET("/versions", h.listVersions)
	rg.GET("/versions/:id", h.getVersion)
	rg.POST("/versions/:id/optimizations", h.optimizations)
	rg.GET("/taxonomy", h.getTaxonomy)
}

type analyzeRequest struct {
	Resume   *model.ResumeDocument `json:"resume" binding:"required"`
	Taxonomy *taxonomy.Spec        `json:"taxonomy"`
}

type analyzeResponse struct {
	VersionID string               `json:"version_id"`
	Timestamp time.Time            `json:"timestamp"`
	Analysis  model.AnalysisResult `json:"analysis"`
	Score     model.Score          `json:"score"`
}

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "invalid analyze request", []map[string]string{
			{"field": "body", "issue": err.Error()},
		})
		return
	}

	v, err := h.Svc.Analyze(c.Request.Context(), *req.Resume, req.Taxonomy)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidTaxonomy):
			respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "invalid taxonomy", []map[string]string{
				{"field": "taxonomy", "issue": err.Error()},
			})
		default:
			respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "failed to analyze resume", nil)
		}
		return
	}
	c.Set(middleware.VersionIDKey, v.ID)

	respond.JSON(c, http.StatusCreated, analyzeResponse{
		VersionID: v.ID,
		Timestamp: v.Timestamp,
		Analysis:  v.Analysis,
		Score:     v.Score,
	})
}

func (h *Handler) listVersions(c *gin.Context) {
	limit := defaultListLimit
	offset := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "limit must be a positive integer", nil)
			return
		}
		limit = parsed
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if raw := c.Query("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "offset must be a non-negative integer", nil)
			return
		}
		offset = parsed
	}

	items, err := h.Svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, "failed to list versions", nil)
		return
	}
	respond.OK(c, gin.H{
		"items":  items,
		"limit":  limit,
		"offset": offset,
	})
}

func (h *Handler) getVersion(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.VersionIDKey, id)

	v, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		h.versionError(c, err, "failed to fetch version")
		return
	}
	respond.OK(c, v)
}

func (h *Handler) optimizations(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.VersionIDKey, id)

	var opts export.PresentationOptions
	if c.Request.ContentLength != 0 {
		// A chunked empty body reads as io.EOF and means defaults.
		if err := c.ShouldBindJSON(&opts); err != nil && !errors.Is(err, io.EOF) {
			respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "invalid presentation options", []map[string]string{
				{"field": "body", "issue": err.Error()},
			})
			return
		}
	}

	out, err := h.Svc.Optimizations(c.Request.Context(), id, opts)
	if err != nil {
		if errors.Is(err, export.ErrInvalidOptions) {
			respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "invalid presentation options", []map[string]string{
				{"field": "options", "issue": err.Error()},
			})
			return
		}
		h.versionError(c, err, "failed to build optimizations")
		return
	}
	respond.OK(c, out)
}

func (h *Handler) getTaxonomy(c *gin.Context) {
	respond.OK(c, h.Svc.Taxonomy())
}

func (h *Handler) versionError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, versions.ErrNotFound) {
		respond.Error(c, http.StatusNotFound, respond.CodeNotFound, "version not found", nil)
		return
	}
	respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, fallback, nil)
}
