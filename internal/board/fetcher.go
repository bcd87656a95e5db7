package board

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"jobgrid/board-service/internal/model"
)

// State is the listing fetch controller's lifecycle state.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateSuccess
	// StateFallback means the grid shows the board's local sample set with a
	// non-blocking notice.
	StateFallback
	// StateError exists in the data model but is unreachable as long as the
	// gateway honours its always-200 contract.
	StateError
)

// fallbackNotice is surfaced alongside the local sample set.
const fallbackNotice = "Using demo data - API temporarily unavailable"

// The slider expresses salaries in thousands per month; the remote API in
// annual currency units.
const salaryScale = 100000

// Lister is the slice of the gateway client the Fetcher needs.
type Lister interface {
	ListJobs(ctx context.Context, criteria model.FilterCriteria) (*model.ListEnvelope, error)
}

// Fetcher drives the job grid: it fetches on every criteria change and on
// explicit refresh, transforms records for display, and replaces the current
// result set wholesale on each completion.
//
// Overlapping fetches are resolved with a monotonically increasing sequence
// number: a completion whose sequence is no longer current is discarded, so a
// slow early response can never overwrite a later one.
type Fetcher struct {
	client Lister
	log    *zap.SugaredLogger
	now    func() time.Time

	seq atomic.Uint64

	mu       sync.Mutex
	state    State
	criteria model.FilterCriteria
	jobs     []DisplayJob
	notice   string
}

// NewFetcher returns an idle Fetcher.
func NewFetcher(client Lister, log *zap.SugaredLogger) *Fetcher {
	return &Fetcher{
		client: client,
		log:    log.Named("fetcher"),
		now:    time.Now,
		state:  StateIdle,
	}
}

// BindFilters subscribes the Fetcher to fs; the immediate snapshot publish
// performs the initial-mount fetch.
func (f *Fetcher) BindFilters(ctx context.Context, fs *FilterState) {
	fs.Subscribe(func(c model.FilterCriteria) {
		f.Fetch(ctx, c)
	})
}

// RefreshJobs re-runs the fetch with the currently held criteria. Called by
// external collaborators, e.g. after a successful creation.
func (f *Fetcher) RefreshJobs(ctx context.Context) {
	f.mu.Lock()
	criteria := f.criteria
	f.mu.Unlock()
	f.Fetch(ctx, criteria)
}

// Fetch runs one fetch cycle for criteria and blocks until the state has
// settled (or the result was discarded as stale).
func (f *Fetcher) Fetch(ctx context.Context, criteria model.FilterCriteria) {
	seq := f.seq.Add(1)

	f.mu.Lock()
	f.state = StateLoading
	f.criteria = criteria
	f.mu.Unlock()

	env, err := f.client.ListJobs(ctx, scaleSalary(criteria))

	f.mu.Lock()
	defer f.mu.Unlock()
	if seq != f.seq.Load() {
		// A newer fetch is in flight; this response is stale.
		return
	}

	if err != nil {
		f.log.Warnw("listing fetch failed, showing local sample data", "err", err)
		f.jobs = f.transform(boardSampleJobs())
		f.state = StateFallback
		f.notice = fallbackNotice
		return
	}

	f.jobs = f.transform(env.Data)
	f.state = StateSuccess
	f.notice = ""
}

func (f *Fetcher) transform(records []model.JobRecord) []DisplayJob {
	now := f.now()
	jobs := make([]DisplayJob, 0, len(records))
	for _, r := range records {
		jobs = append(jobs, ToDisplayJob(r, now))
	}
	return jobs
}

// scaleSalary converts the slider's thousands-per-month bounds to the annual
// currency units the gateway and the remote API expect.
func scaleSalary(c model.FilterCriteria) model.FilterCriteria {
	if c.SalaryMin != nil {
		v := *c.SalaryMin * salaryScale
		c.SalaryMin = &v
	}
	if c.SalaryMax != nil {
		v := *c.SalaryMax * salaryScale
		c.SalaryMax = &v
	}
	return c
}

// State returns the current lifecycle state.
func (f *Fetcher) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Jobs returns the current display set. The slice is replaced, never patched,
// so callers may hold it across fetches.
func (f *Fetcher) Jobs() []DisplayJob {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.jobs
}

// Notice returns the non-blocking banner text, empty when there is none.
func (f *Fetcher) Notice() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.notice
}

// Empty reports whether the settled result set has no jobs; the grid renders
// an empty-state message instead of an error banner in that case.
func (f *Fetcher) Empty() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return (f.state == StateSuccess || f.state == StateFallback) && len(f.jobs) == 0
}
