package board

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobgrid/board-service/internal/model"
)

func gatewayStub(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, 2*time.Second)
}

func TestClientListJobs_WellFormedResponse(t *testing.T) {
	client := gatewayStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[],"total":0,"page":1,"limit":10,"totalPages":0}`))
	})

	env, err := client.ListJobs(context.Background(), model.FilterCriteria{})
	if err != nil {
		t.Fatalf("ListJobs returned unexpected error: %v", err)
	}
	if env.Limit != 10 {
		t.Errorf("Limit = %d, want 10", env.Limit)
	}
}

func TestClientListJobs_MissingEnvelopeFieldIsError(t *testing.T) {
	client := gatewayStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	})
	if _, err := client.ListJobs(context.Background(), model.FilterCriteria{}); err == nil {
		t.Error("a response without pagination fields must be rejected")
	}
}

func TestClientListJobs_ForwardsCriteria(t *testing.T) {
	var got map[string][]string
	client := gatewayStub(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`{"data":[],"total":0,"page":1,"limit":10,"totalPages":0}`))
	})

	min := 5000000
	_, err := client.ListJobs(context.Background(), model.FilterCriteria{
		Search: "Dev", Location: "Remote", JobType: "Contract", SalaryMin: &min,
	})
	if err != nil {
		t.Fatalf("ListJobs returned unexpected error: %v", err)
	}
	if got["search"][0] != "Dev" || got["location"][0] != "Remote" ||
		got["jobType"][0] != "Contract" || got["salaryMin"][0] != "5000000" {
		t.Errorf("forwarded query = %v", got)
	}
}

func TestClientCreateJob_RequiresCreatedStatus(t *testing.T) {
	client := gatewayStub(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid job payload"}`, http.StatusBadRequest)
	})
	if _, err := client.CreateJob(context.Background(), model.CreateJobRequest{}); err == nil {
		t.Error("a 400 from the gateway must surface as an error")
	}
}
