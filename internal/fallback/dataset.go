package fallback

import "jobgrid/board-service/internal/model"

func strptr(s string) *string { return &s }

// sampleJobs is the fixed in-process dataset substituted when the remote jobs
// API is unreachable. Kept deliberately small and static — it only has to make
// the grid look alive while upstream is down.
var sampleJobs = []model.JobRecord{
	{
		ID:          "1",
		Title:       "Full Stack Developer",
		Company:     "Amazon",
		Location:    "Bangalore",
		JobType:     string(model.JobTypeFullTime),
		SalaryMin:   800000,
		SalaryMax:   1200000,
		Description: strptr("We are looking for a skilled Full Stack Developer to join our team."),
		CreatedAt:   "2025-08-21T10:00:00.000Z",
	},
	{
		ID:          "2",
		Title:       "UX/UI Designer",
		Company:     "Upwork",
		Location:    "Remote",
		JobType:     string(model.JobTypeFullTime),
		SalaryMin:   800000,
		SalaryMax:   1200000,
		Description: strptr("Create intuitive and engaging user experiences."),
		CreatedAt:   "2025-08-21T10:00:00.000Z",
	},
	{
		ID:          "3",
		Title:       "Node.js Developer",
		Company:     "Tesla",
		Location:    "Bangalore",
		JobType:     string(model.JobTypeFullTime),
		SalaryMin:   800000,
		SalaryMax:   1200000,
		Description: strptr("Join our backend team to build scalable Node.js applications."),
		CreatedAt:   "2025-08-21T10:00:00.000Z",
	},
	{
		ID:          "4",
		Title:       "Node.js Developer",
		Company:     "Google",
		Location:    "Mumbai",
		JobType:     string(model.JobTypeFullTime),
		SalaryMin:   600000,
		SalaryMax:   1000000,
		Description: strptr("Join our backend team to build scalable Node.js applications."),
		CreatedAt:   "2025-08-21T10:00:00.000Z",
	},
	{
		ID:          "5",
		Title:       "UX/UI Designer",
		Company:     "Upwork",
		Location:    "Chennai",
		JobType:     string(model.JobTypeContract),
		SalaryMin:   400000,
		SalaryMax:   800000,
		Description: strptr("Create intuitive and engaging user experiences."),
		CreatedAt:   "2025-08-21T10:00:00.000Z",
	},
	{
		ID:          "6",
		Title:       "Full Stack Developer",
		Company:     "Facebook",
		Location:    "Bangalore",
		JobType:     string(model.JobTypeFullTime),
		SalaryMin:   800000,
		SalaryMax:   1200000,
		Description: strptr("We are looking for a skilled Full Stack Developer to join our team."),
		CreatedAt:   "2025-08-21T10:00:00.000Z",
	},
	{
		ID:          "7",
		Title:       "Node.js Developer",
		Company:     "PayPal",
		Location:    "Hyderabad",
		JobType:     string(model.JobTypePartTime),
		SalaryMin:   500000,
		SalaryMax:   900000,
		Description: strptr("We are looking for a skilled Node.js Developer to join our team."),
		CreatedAt:   "2025-08-21T10:00:00.000Z",
	},
	{
		ID:          "8",
		Title:       "UX/UI Designer",
		Company:     "Apple",
		Location:    "Bangalore",
		JobType:     string(model.JobTypeInternship),
		SalaryMin:   300000,
		SalaryMax:   600000,
		Description: strptr("Design delightful interfaces alongside a senior design team."),
		CreatedAt:   "2025-08-21T10:00:00.000Z",
	},
}

// SampleJobs returns a fresh copy of the fallback dataset. Callers receive
// their own slice and Description pointers, so nothing they do can corrupt
// the shared dataset between requests.
func SampleJobs() []model.JobRecord {
	out := make([]model.JobRecord, len(sampleJobs))
	copy(out, sampleJobs)
	for i := range out {
		if out[i].Description != nil {
			d := *out[i].Description
			out[i].Description = &d
		}
	}
	return out
}
