// Package fallback holds the in-process sample dataset and the pure filter
// engine applied to it when the remote jobs API is unavailable.
package fallback

import (
	"strings"

	"jobgrid/board-service/internal/model"
)

// Filter applies the criteria to jobs and returns the matches in their
// original relative order. The input slice is never mutated, and absent
// criteria impose no constraint. All predicates combine with logical AND.
//
// Salary semantics are band-overlap checks against annual currency units:
// a SalaryMin floor keeps jobs whose salary_max reaches it, a SalaryMax
// ceiling keeps jobs whose salary_min stays under it.
func Filter(jobs []model.JobRecord, c model.FilterCriteria) []model.JobRecord {
	out := make([]model.JobRecord, 0, len(jobs))
	for _, j := range jobs {
		if matches(j, c) {
			out = append(out, j)
		}
	}
	return out
}

func matches(j model.JobRecord, c model.FilterCriteria) bool {
	if c.Search != "" {
		q := strings.ToLower(c.Search)
		if !strings.Contains(strings.ToLower(j.Title), q) &&
			!strings.Contains(strings.ToLower(j.Company), q) {
			return false
		}
	}

	if c.Location != "" {
		// "Remote" is a sentinel, not a substring: it must match the
		// location exactly so that "Remote-friendly Bangalore" offers
		// don't leak into a remote-only search.
		if c.Location == "Remote" {
			if j.Location != "Remote" {
				return false
			}
		} else if !strings.Contains(strings.ToLower(j.Location), strings.ToLower(c.Location)) {
			return false
		}
	}

	if c.JobType != "" {
		if !strings.Contains(strings.ToLower(j.JobType), strings.ToLower(c.JobType)) {
			return false
		}
	}

	if c.SalaryMin != nil && j.SalaryMax < *c.SalaryMin {
		return false
	}
	if c.SalaryMax != nil && j.SalaryMin > *c.SalaryMax {
		return false
	}

	return true
}
