// Package board is the headless client core behind the job grid: it holds the
// user's filter state, fetches listings through the gateway, shapes records
// for rendering, and drives the new-posting form.
package board

import (
	"sync"

	"jobgrid/board-service/internal/model"
)

// FilterState aggregates the four search controls. It performs no validation;
// every setter publishes the complete current snapshot to the single
// subscriber, synchronously and without debounce.
//
// Salary bounds are held in thousands-per-month display units, matching the
// slider on screen. The Fetcher scales them before they reach the gateway.
type FilterState struct {
	mu         sync.Mutex
	search     string
	location   string
	jobType    string
	salary     *[2]int
	subscriber func(model.FilterCriteria)
}

// NewFilterState returns an empty FilterState.
func NewFilterState() *FilterState {
	return &FilterState{}
}

// Subscribe registers fn as the single subscriber and immediately publishes
// the current (default) snapshot — this is the initial-mount fetch.
func (s *FilterState) Subscribe(fn func(model.FilterCriteria)) {
	s.mu.Lock()
	s.subscriber = fn
	snap := s.snapshotLocked()
	s.mu.Unlock()
	fn(snap)
}

// SetSearch updates the free-text search term.
func (s *FilterState) SetSearch(q string) {
	s.mu.Lock()
	s.search = q
	s.publishLocked()
}

// SetLocation updates the location filter ("Remote" is the remote-only
// sentinel).
func (s *FilterState) SetLocation(loc string) {
	s.mu.Lock()
	s.location = loc
	s.publishLocked()
}

// SetJobType updates the job type filter.
func (s *FilterState) SetJobType(jt string) {
	s.mu.Lock()
	s.jobType = jt
	s.publishLocked()
}

// SetSalaryRange updates the salary band, in thousands per month.
func (s *FilterState) SetSalaryRange(min, max int) {
	s.mu.Lock()
	s.salary = &[2]int{min, max}
	s.publishLocked()
}

// Snapshot returns the current criteria without publishing.
func (s *FilterState) Snapshot() model.FilterCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// publishLocked releases the mutex before invoking the subscriber so the
// callback may call back into the FilterState.
func (s *FilterState) publishLocked() {
	fn := s.subscriber
	snap := s.snapshotLocked()
	s.mu.Unlock()
	if fn != nil {
		fn(snap)
	}
}

func (s *FilterState) snapshotLocked() model.FilterCriteria {
	c := model.FilterCriteria{
		Search:   s.search,
		Location: s.location,
		JobType:  s.jobType,
	}
	if s.salary != nil {
		min, max := s.salary[0], s.salary[1]
		c.SalaryMin = &min
		c.SalaryMax = &max
	}
	return c
}
