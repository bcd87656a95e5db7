package gateway_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jobgrid/board-service/internal/gateway"
	"jobgrid/board-service/internal/model"
	"jobgrid/board-service/internal/upstream"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newRouter wires a gateway against upstreamURL with no cache.
func newRouter(upstreamURL string) *gin.Engine {
	log := zap.NewNop().Sugar()
	up := upstream.New(upstreamURL, 2*time.Second, log)
	return gateway.NewRouter(gateway.NewHandler(up, nil, log), log)
}

// deadUpstream returns a base URL that refuses connections.
func deadUpstream(t *testing.T) string {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()
	return server.URL
}

func doRequest(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// ── List: upstream reachable ───────────────────────────────────────────────

func TestListJobs_PassesUpstreamBodyThrough(t *testing.T) {
	const body = `{"data":[],"total":0,"page":1,"limit":50,"totalPages":0}`
	upstreamSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer upstreamSrv.Close()

	rec := doRequest(newRouter(upstreamSrv.URL), http.MethodGet, "/jobs", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, body, rec.Body.String(), "upstream body must pass through verbatim")
}

func TestListJobs_TranslatesQueryParams(t *testing.T) {
	var got map[string][]string
	upstreamSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`{"data":[],"total":0,"page":1,"limit":50,"totalPages":0}`))
	}))
	defer upstreamSrv.Close()

	doRequest(newRouter(upstreamSrv.URL), http.MethodGet,
		"/jobs?search=Dev&location=Pune&jobType=Contract&salaryMin=400000&salaryMax=900000", "")

	require.NotNil(t, got)
	assert.Equal(t, "1", got["page"][0])
	assert.Equal(t, "50", got["limit"][0])
	assert.Equal(t, "Dev", got["search"][0])
	assert.Equal(t, "Pune", got["location"][0])
	assert.Equal(t, "Contract", got["job_type"][0])
	assert.Equal(t, "400000", got["salary_min"][0])
	assert.Equal(t, "900000", got["salary_max"][0])
}

// The "Remote" sentinel is a pass-through token: it must not reach upstream
// as a location filter.
func TestListJobs_RemoteSentinelNotForwardedUpstream(t *testing.T) {
	var got map[string][]string
	upstreamSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`{"data":[],"total":0,"page":1,"limit":50,"totalPages":0}`))
	}))
	defer upstreamSrv.Close()

	doRequest(newRouter(upstreamSrv.URL), http.MethodGet, "/jobs?location=Remote", "")

	require.NotNil(t, got)
	assert.Empty(t, got["location"], "Remote must not be forwarded as an upstream filter")
}

func TestListJobs_UnparseableSalaryTreatedAsAbsent(t *testing.T) {
	var got map[string][]string
	upstreamSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`{"data":[],"total":0,"page":1,"limit":50,"totalPages":0}`))
	}))
	defer upstreamSrv.Close()

	rec := doRequest(newRouter(upstreamSrv.URL), http.MethodGet, "/jobs?salaryMin=lots", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, got["salary_min"])
}

// ── List: fallback path ────────────────────────────────────────────────────

func TestListJobs_FallbackFiltersBySearch(t *testing.T) {
	rec := doRequest(newRouter(deadUpstream(t)), http.MethodGet, "/jobs?search=Developer", "")

	require.Equal(t, http.StatusOK, rec.Code, "fallback must never surface a failure status")

	var env model.ListEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NotEmpty(t, env.Data)

	for _, j := range env.Data {
		matched := strings.Contains(strings.ToLower(j.Title), "developer") ||
			strings.Contains(strings.ToLower(j.Company), "developer")
		assert.True(t, matched, "job %s does not match the search criterion", j.ID)
	}
	assert.Equal(t, len(env.Data), env.Total)
	assert.Equal(t, 1, env.Page)
	assert.Equal(t, 10, env.Limit)
	assert.Equal(t, (len(env.Data)+9)/10, env.TotalPages)
}

func TestListJobs_FallbackOnMalformedUpstream(t *testing.T) {
	upstreamSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected": true}`))
	}))
	defer upstreamSrv.Close()

	rec := doRequest(newRouter(upstreamSrv.URL), http.MethodGet, "/jobs", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var env model.ListEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.NotEmpty(t, env.Data, "malformed upstream must substitute the fallback dataset")
}

func TestListJobs_FallbackIsIdempotent(t *testing.T) {
	router := newRouter(deadUpstream(t))

	first := doRequest(router, http.MethodGet, "/jobs?search=Developer&location=Bangalore", "")
	second := doRequest(router, http.MethodGet, "/jobs?search=Developer&location=Bangalore", "")

	assert.Equal(t, first.Body.String(), second.Body.String(),
		"identical criteria against a dead upstream must yield identical result sets")
}

func TestListJobs_FallbackRemoteOnly(t *testing.T) {
	rec := doRequest(newRouter(deadUpstream(t)), http.MethodGet, "/jobs?location=Remote", "")

	var env model.ListEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	for _, j := range env.Data {
		assert.Equal(t, "Remote", j.Location)
	}
}

// ── Create ─────────────────────────────────────────────────────────────────

const createBody = `{
	"title": "Platform Engineer", "company": "Acme", "location": "Pune",
	"job_type": "Full-time", "salary_min": 600000, "salary_max": 1000000,
	"description": "Build and run the deployment platform.",
	"application_deadline": "2025-12-31", "isDraft": false
}`

func TestCreateJob_EchoesUpstreamAssignedID(t *testing.T) {
	upstreamSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"srv-99","title":"Platform Engineer","company":"Acme",
			"location":"Pune","job_type":"Full-time","salary_min":600000,
			"salary_max":1000000,"created_at":"2025-08-21T10:00:00.000Z"}`))
	}))
	defer upstreamSrv.Close()

	rec := doRequest(newRouter(upstreamSrv.URL), http.MethodPost, "/jobs", createBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp model.CreateJobResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "srv-99", resp.Job.ID)
	assert.Equal(t, "Job published successfully", resp.Message)
}

func TestCreateJob_SynthesisesLocallyWhenUpstreamDown(t *testing.T) {
	rec := doRequest(newRouter(deadUpstream(t)), http.MethodPost, "/jobs", createBody)

	require.Equal(t, http.StatusCreated, rec.Code, "create must appear to succeed even without upstream")

	var resp model.CreateJobResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	_, err := strconv.ParseInt(resp.Job.ID, 10, 64)
	assert.NoError(t, err, "synthesised id %q should be a numeric string", resp.Job.ID)
	assert.Contains(t, resp.Message, "locally")
	assert.Nil(t, resp.Job.Requirements)
	assert.Nil(t, resp.Job.Responsibilities)
	assert.NotEmpty(t, resp.Job.CreatedAt)
}

func TestCreateJob_LocalIDsIncreaseWithinProcess(t *testing.T) {
	router := newRouter(deadUpstream(t))

	var prev int64
	for i := 0; i < 3; i++ {
		rec := doRequest(router, http.MethodPost, "/jobs", createBody)
		var resp model.CreateJobResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		id, err := strconv.ParseInt(resp.Job.ID, 10, 64)
		require.NoError(t, err)
		assert.Greater(t, id, prev)
		prev = id
	}
}

func TestCreateJob_DraftWording(t *testing.T) {
	draft := strings.Replace(createBody, `"isDraft": false`, `"isDraft": true`, 1)
	rec := doRequest(newRouter(deadUpstream(t)), http.MethodPost, "/jobs", draft)

	var resp model.CreateJobResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "draft")
}

func TestCreateJob_RejectsInvalidSchema(t *testing.T) {
	rec := doRequest(newRouter(deadUpstream(t)), http.MethodPost, "/jobs",
		`{"title": "", "job_type": "Weekend-only"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ── Health ─────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	rec := doRequest(newRouter(deadUpstream(t)), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
