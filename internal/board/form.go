package board

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"jobgrid/board-service/internal/model"
)

// JobForm holds the new-posting form fields. Salary bounds are annual
// currency units here, entered directly by the user.
type JobForm struct {
	Title            string `validate:"required"`
	Company          string `validate:"required"`
	Location         string `validate:"required"`
	JobType          string `validate:"required,oneof=Full-time Part-time Contract Internship"`
	SalaryMin        *int   `validate:"omitempty,min=0"`
	SalaryMax        *int   `validate:"omitempty,min=0"`
	Description      string `validate:"required,min=10"`
	Requirements     string `validate:"required"`
	Responsibilities string `validate:"required"`
	Deadline         *time.Time
}

var formValidator = validator.New()

// fieldMessages maps struct field + failed rule to the user-facing message.
var fieldMessages = map[string]string{
	"Title/required":            "Job Title is required",
	"Company/required":          "Company is required",
	"Location/required":         "Location is required",
	"JobType/required":          "Job Type is required",
	"JobType/oneof":             "Job Type must be Full-time, Part-time, Contract or Internship",
	"SalaryMin/min":             "Minimum salary must be positive",
	"SalaryMax/min":             "Maximum salary must be positive",
	"Description/required":      "Description must be at least 10 characters",
	"Description/min":           "Description must be at least 10 characters",
	"Requirements/required":     "Requirements are required",
	"Responsibilities/required": "Responsibilities are required",
}

// Validate checks the form and returns field-level errors keyed by field
// name. An empty map means the form may be submitted.
func (f *JobForm) Validate() map[string]string {
	errs := map[string]string{}

	if err := formValidator.Struct(f); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			msg, ok := fieldMessages[fe.StructField()+"/"+fe.Tag()]
			if !ok {
				msg = fe.StructField() + " is invalid"
			}
			errs[fe.StructField()] = msg
		}
	}

	// Cross-field rule, only when both bounds are present and individually
	// valid.
	if f.SalaryMin != nil && f.SalaryMax != nil &&
		*f.SalaryMin >= 0 && *f.SalaryMax >= 0 && *f.SalaryMax < *f.SalaryMin {
		errs["SalaryMax"] = "Maximum salary must be greater than minimum salary"
	}

	return errs
}

// Payload serialises the form to the gateway's create body. The deadline, if
// set, is rendered as YYYY-MM-DD.
func (f *JobForm) Payload(isDraft bool) model.CreateJobRequest {
	req := model.CreateJobRequest{
		Title:            f.Title,
		Company:          f.Company,
		Location:         f.Location,
		JobType:          f.JobType,
		SalaryMin:        f.SalaryMin,
		SalaryMax:        f.SalaryMax,
		Description:      f.Description,
		Requirements:     &f.Requirements,
		Responsibilities: &f.Responsibilities,
		IsDraft:          isDraft,
	}
	if f.Deadline != nil {
		d := f.Deadline.Format("2006-01-02")
		req.ApplicationDeadline = &d
	}
	return req
}

// Reset clears the form back to its defaults.
func (f *JobForm) Reset() {
	*f = JobForm{}
}

// Creator is the slice of the gateway client the Submission needs.
type Creator interface {
	CreateJob(ctx context.Context, req model.CreateJobRequest) (*model.CreateJobResponse, error)
}

// Submission wires the form to the gateway and the rest of the board: on a
// successful create it clears the form, closes the creation view and signals
// the listing fetch controller to refresh.
type Submission struct {
	Client    Creator
	OnClose   func()
	OnCreated func()
}

// Submit validates and sends the form. Field errors block the submission and
// are returned for rendering; a transport error leaves the form intact so the
// user can retry.
func (s *Submission) Submit(ctx context.Context, form *JobForm, isDraft bool) (map[string]string, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return errs, nil
	}

	if _, err := s.Client.CreateJob(ctx, form.Payload(isDraft)); err != nil {
		return nil, err
	}

	form.Reset()
	if s.OnClose != nil {
		s.OnClose()
	}
	if s.OnCreated != nil {
		s.OnCreated()
	}
	return nil, nil
}
