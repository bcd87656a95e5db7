// Package gateway is the server-side boundary between the board client and
// the remote jobs API.
//
// Routes:
//
//	GET  /jobs   → list postings (upstream, cache, or fallback dataset)
//	POST /jobs   → create posting (upstream, or local synthesis)
//	GET  /health → liveness probe
//
// Both job routes always answer 200/201 from this boundary: upstream failures
// are absorbed by substituting the fallback dataset (list) or a locally
// synthesised record (create).
package gateway

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jobgrid/board-service/internal/cache"
	"jobgrid/board-service/internal/fallback"
	"jobgrid/board-service/internal/model"
	"jobgrid/board-service/internal/upstream"
)

// fallbackPageSize drives the synthetic totalPages figure on the fallback
// path: ceil(matches / fallbackPageSize).
const fallbackPageSize = 10

// Handler holds shared dependencies for the job routes.
type Handler struct {
	upstream *upstream.Client
	cache    *cache.Listing
	log      *zap.SugaredLogger

	// Guards the monotonic id used for locally synthesised records.
	idMu   sync.Mutex
	lastID int64
}

// NewHandler returns a configured Handler. cache may be nil.
func NewHandler(up *upstream.Client, listing *cache.Listing, log *zap.SugaredLogger) *Handler {
	return &Handler{upstream: up, cache: listing, log: log.Named("gateway")}
}

// RegisterRoutes mounts the job routes on r.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/jobs", h.listJobs)
	r.POST("/jobs", h.createJob)
	r.GET("/health", healthHandler)
}

// ─── List ────────────────────────────────────────────────────────────────────

func (h *Handler) listJobs(c *gin.Context) {
	criteria := parseCriteria(c)

	key := cache.Key(criteria)
	if body, ok := h.cache.Get(c.Request.Context(), key); ok {
		c.Data(http.StatusOK, "application/json", body)
		return
	}

	// "Remote" is a pass-through token: the upstream API models remote work
	// as a location string like any other city, so the sentinel is only
	// meaningful to the fallback filter and is stripped from the upstream
	// query.
	upCriteria := criteria
	if upCriteria.Location == "Remote" {
		upCriteria.Location = ""
	}

	_, body, err := h.upstream.List(c.Request.Context(), upCriteria)
	if err != nil {
		h.log.Warnw("upstream list failed, serving fallback", "err", err)
		c.JSON(http.StatusOK, h.fallbackListing(criteria))
		return
	}

	h.cache.Set(c.Request.Context(), key, body)
	c.Data(http.StatusOK, "application/json", body)
}

// fallbackListing filters the sample dataset with the caller's criteria and
// wraps it in the standard envelope.
func (h *Handler) fallbackListing(criteria model.FilterCriteria) model.ListEnvelope {
	matched := fallback.Filter(fallback.SampleJobs(), criteria)
	return model.ListEnvelope{
		Data:       matched,
		Total:      len(matched),
		Page:       1,
		Limit:      fallbackPageSize,
		TotalPages: (len(matched) + fallbackPageSize - 1) / fallbackPageSize,
	}
}

// parseCriteria reads the optional filter query parameters. Salary bounds
// that fail to parse as integers are treated as absent — presence is the only
// format requirement at this boundary.
func parseCriteria(c *gin.Context) model.FilterCriteria {
	criteria := model.FilterCriteria{
		Search:   c.Query("search"),
		Location: c.Query("location"),
		JobType:  c.Query("jobType"),
	}
	if raw := c.Query("salaryMin"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			criteria.SalaryMin = &v
		}
	}
	if raw := c.Query("salaryMax"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			criteria.SalaryMax = &v
		}
	}
	return criteria
}

// ─── Create ──────────────────────────────────────────────────────────────────

func (h *Handler) createJob(c *gin.Context) {
	var req model.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job payload: " + err.Error()})
		return
	}

	job, err := h.upstream.Create(c.Request.Context(), req)
	if err != nil {
		h.log.Warnw("upstream create failed, synthesising local record", "err", err)
		local := h.synthesiseJob(req)
		c.JSON(http.StatusCreated, model.CreateJobResponse{
			Message: createMessage(req.IsDraft, true),
			Job:     local,
		})
		return
	}

	c.JSON(http.StatusCreated, model.CreateJobResponse{
		Message: createMessage(req.IsDraft, false),
		Job:     *job,
	})
}

func createMessage(isDraft, localOnly bool) string {
	switch {
	case isDraft && localOnly:
		return "Job draft saved locally - upstream unavailable"
	case isDraft:
		return "Job draft saved successfully"
	case localOnly:
		return "Job published locally - upstream unavailable"
	default:
		return "Job published successfully"
	}
}

// synthesiseJob fabricates a record when upstream is unreachable. The id is
// the current Unix-millisecond timestamp, bumped when two creates land in the
// same millisecond so ids stay strictly increasing within this process. They
// are not unique across processes or restarts.
func (h *Handler) synthesiseJob(req model.CreateJobRequest) model.JobRecord {
	h.idMu.Lock()
	id := time.Now().UnixMilli()
	if id <= h.lastID {
		id = h.lastID + 1
	}
	h.lastID = id
	h.idMu.Unlock()

	job := model.JobRecord{
		ID:                  strconv.FormatInt(id, 10),
		Title:               req.Title,
		Company:             req.Company,
		Location:            req.Location,
		JobType:             req.JobType,
		Description:         &req.Description,
		ApplicationDeadline: req.ApplicationDeadline,
		CreatedAt:           time.Now().UTC().Format("2006-01-02T15:04:05.000Z"),
	}
	if req.SalaryMin != nil {
		job.SalaryMin = *req.SalaryMin
	}
	if req.SalaryMax != nil {
		job.SalaryMax = *req.SalaryMax
	}
	return job
}

// ─── Health ──────────────────────────────────────────────────────────────────

const version = "1.0.0"

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "board-service",
		"version": version,
	})
}

// WarmDefaultListing runs the list pipeline for empty criteria and stores the
// result in the cache. Used by the scheduler so the landing-page query is
// served hot.
func (h *Handler) WarmDefaultListing(ctx context.Context) error {
	var criteria model.FilterCriteria
	_, body, err := h.upstream.List(ctx, criteria)
	if err != nil {
		return err
	}
	h.cache.Set(ctx, cache.Key(criteria), body)
	return nil
}
