// Package upstream implements the typed HTTP client for the remote jobs API.
//
// The remote API is treated as a black box: any non-2xx status, transport
// error or response that does not carry the expected envelope fields is
// reported as an error, and the gateway decides how to recover.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"jobgrid/board-service/internal/model"
)

const (
	// The gateway always requests a single fixed page from upstream.
	listPage  = 1
	listLimit = 50
)

// Client talks to the remote jobs API.
type Client struct {
	baseURL string
	client  *http.Client
	log     *zap.SugaredLogger
}

// New constructs a Client with a shared HTTP client.
func New(baseURL string, timeout time.Duration, log *zap.SugaredLogger) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		log:     log.Named("upstream"),
	}
}

// listEnvelopeWire mirrors the upstream list response with pointer fields so
// that a missing envelope member is distinguishable from a zero value.
type listEnvelopeWire struct {
	Data       *[]model.JobRecord `json:"data"`
	Total      *int               `json:"total"`
	Page       *int               `json:"page"`
	Limit      *int               `json:"limit"`
	TotalPages *int               `json:"totalPages"`
}

// List fetches one page of jobs matching the criteria. On success it returns
// both the decoded envelope and the raw body so the gateway can pass the
// upstream response through verbatim.
func (c *Client) List(ctx context.Context, criteria model.FilterCriteria) (*model.ListEnvelope, []byte, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(listPage))
	params.Set("limit", strconv.Itoa(listLimit))
	if criteria.Search != "" {
		params.Set("search", criteria.Search)
	}
	if criteria.Location != "" {
		params.Set("location", criteria.Location)
	}
	if criteria.JobType != "" {
		params.Set("job_type", criteria.JobType)
	}
	if criteria.SalaryMin != nil {
		params.Set("salary_min", strconv.Itoa(*criteria.SalaryMin))
	}
	if criteria.SalaryMax != nil {
		params.Set("salary_max", strconv.Itoa(*criteria.SalaryMax))
	}

	body, err := c.get(ctx, c.baseURL+"/jobs?"+params.Encode())
	if err != nil {
		return nil, nil, err
	}

	var wire listEnvelopeWire
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, nil, errors.Wrap(err, "decode list response")
	}
	if wire.Data == nil || wire.Total == nil || wire.Page == nil || wire.Limit == nil || wire.TotalPages == nil {
		return nil, nil, errors.New("list response missing envelope fields")
	}

	env := &model.ListEnvelope{
		Data:       *wire.Data,
		Total:      *wire.Total,
		Page:       *wire.Page,
		Limit:      *wire.Limit,
		TotalPages: *wire.TotalPages,
	}
	c.log.Debugw("list fetched", "count", len(env.Data), "total", env.Total)
	return env, body, nil
}

// Create forwards a new job posting upstream and returns the record the
// remote API assigned. The record must carry an id; anything else counts as
// a malformed response.
func (c *Client) Create(ctx context.Context, req model.CreateJobRequest) (*model.JobRecord, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "encode create payload")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/jobs", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "http POST")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read body")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Newf("upstream returned %d: %s", resp.StatusCode, string(body))
	}

	var job model.JobRecord
	if err := json.Unmarshal(body, &job); err != nil {
		return nil, errors.Wrap(err, "decode create response")
	}
	if job.ID == "" {
		return nil, errors.New("create response missing id")
	}
	return &job, nil
}

func (c *Client) get(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "http GET")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read body")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Newf("upstream returned %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
