package board

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

	"jobgrid/board-service/internal/model"
)

// Client is the board's HTTP client for the proxy gateway.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient constructs a Client for the gateway at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// listEnvelopeWire mirrors the gateway list response with pointer fields so a
// well-formedness check can tell missing members from zero values.
type listEnvelopeWire struct {
	Data       *[]model.JobRecord `json:"data"`
	Total      *int               `json:"total"`
	Page       *int               `json:"page"`
	Limit      *int               `json:"limit"`
	TotalPages *int               `json:"totalPages"`
}

// ListJobs fetches the listing for criteria. Criteria salary bounds must
// already be in annual currency units. A response missing any envelope field
// is reported as an error so the Fetcher can fall back.
func (c *Client) ListJobs(ctx context.Context, criteria model.FilterCriteria) (*model.ListEnvelope, error) {
	params := url.Values{}
	if criteria.Search != "" {
		params.Set("search", criteria.Search)
	}
	if criteria.Location != "" {
		params.Set("location", criteria.Location)
	}
	if criteria.JobType != "" {
		params.Set("jobType", criteria.JobType)
	}
	if criteria.SalaryMin != nil {
		params.Set("salaryMin", strconv.Itoa(*criteria.SalaryMin))
	}
	if criteria.SalaryMax != nil {
		params.Set("salaryMax", strconv.Itoa(*criteria.SalaryMax))
	}

	reqURL := c.baseURL + "/jobs"
	if encoded := params.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}

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
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf("gateway returned %d: %s", resp.StatusCode, string(body))
	}

	var wire listEnvelopeWire
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, errors.Wrap(err, "decode list response")
	}
	if wire.Data == nil || wire.Total == nil || wire.Page == nil || wire.Limit == nil || wire.TotalPages == nil {
		return nil, errors.New("list response missing envelope fields")
	}

	return &model.ListEnvelope{
		Data:       *wire.Data,
		Total:      *wire.Total,
		Page:       *wire.Page,
		Limit:      *wire.Limit,
		TotalPages: *wire.TotalPages,
	}, nil
}

// CreateJob submits a new posting through the gateway.
func (c *Client) CreateJob(ctx context.Context, req model.CreateJobRequest) (*model.CreateJobResponse, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "encode create payload")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/jobs", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "http POST")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read body")
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, errors.Newf("gateway returned %d: %s", resp.StatusCode, string(body))
	}

	var out model.CreateJobResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, errors.Wrap(err, "decode create response")
	}
	return &out, nil
}
