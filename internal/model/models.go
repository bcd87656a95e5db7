// Package model defines the wire shapes exchanged between the board client,
// the proxy gateway and the remote jobs API.
package model

import "fmt"

// JobType values accepted by the creation form and the remote API.
type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeContract   JobType = "Contract"
	JobTypeInternship JobType = "Internship"
)

// ParseJobType converts a raw string to a JobType, returning an error for
// unknown values.
func ParseJobType(s string) (JobType, error) {
	jt := JobType(s)
	switch jt {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship:
		return jt, nil
	}
	return "", fmt.Errorf("unknown job type %q", s)
}

// JobRecord is the canonical job posting shape, authoritative from the remote
// API. Optional fields are pointers so that absent values serialise as null,
// matching the upstream wire format. Requirements and Responsibilities are
// only present on records created through this system's form; remote-origin
// records may omit them.
type JobRecord struct {
	ID                  string  `json:"id"`
	Title               string  `json:"title"`
	Company             string  `json:"company"`
	Location            string  `json:"location"`
	JobType             string  `json:"job_type"`
	SalaryMin           int     `json:"salary_min"`
	SalaryMax           int     `json:"salary_max"`
	Description         *string `json:"description"`
	Requirements        *string `json:"requirements"`
	Responsibilities    *string `json:"responsibilities"`
	ApplicationDeadline *string `json:"application_deadline"`
	CreatedAt           string  `json:"created_at"`
}

// ListEnvelope wraps a page of job records. The gateway returns this shape
// on both the upstream and the fallback path.
type ListEnvelope struct {
	Data       []JobRecord `json:"data"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalPages int         `json:"totalPages"`
}

// FilterCriteria is the set of user-chosen search constraints at a point in
// time. Empty strings and nil salaries impose no constraint.
//
// Unit caveat: on the board side SalaryMin/SalaryMax are in thousands per
// month (the display unit of the salary slider); the listing fetch controller
// scales them to annual currency units (×100000) before they reach the
// gateway or the fallback filter engine.
type FilterCriteria struct {
	Search    string
	Location  string
	JobType   string
	SalaryMin *int
	SalaryMax *int
}

// CreateJobRequest is the POST /jobs body. Binding tags validate the schema
// at the proxy boundary; richer form rules (description length, requirements
// presence) live in the board-side form controller.
type CreateJobRequest struct {
	Title               string  `json:"title" binding:"required"`
	Company             string  `json:"company" binding:"required"`
	Location            string  `json:"location" binding:"required"`
	JobType             string  `json:"job_type" binding:"required,oneof=Full-time Part-time Contract Internship"`
	SalaryMin           *int    `json:"salary_min" binding:"omitempty,min=0"`
	SalaryMax           *int    `json:"salary_max" binding:"omitempty,min=0"`
	Description         string  `json:"description" binding:"required"`
	Requirements        *string `json:"requirements"`
	Responsibilities    *string `json:"responsibilities"`
	ApplicationDeadline *string `json:"application_deadline"`
	IsDraft             bool    `json:"isDraft"`
}

// CreateJobResponse is returned by the gateway with HTTP 201 on every create,
// whether the record landed upstream or was synthesised locally.
type CreateJobResponse struct {
	Message string    `json:"message"`
	Job     JobRecord `json:"job"`
}
