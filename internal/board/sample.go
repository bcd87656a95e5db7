package board

import "jobgrid/board-service/internal/model"

// boardSampleJobs is the client-side safety net, distinct from the gateway's
// fallback dataset: it covers the case where even the gateway is unreachable
// or answers with a shape the board cannot use.
func boardSampleJobs() []model.JobRecord {
	desc := func(s string) *string { return &s }
	return []model.JobRecord{
		{
			ID:          "demo-1",
			Title:       "Frontend Developer",
			Company:     "Swiggy",
			Location:    "Bangalore",
			JobType:     string(model.JobTypeFullTime),
			SalaryMin:   700000,
			SalaryMax:   1100000,
			Description: desc("Build delightful interfaces for millions of users. Work closely with design."),
			CreatedAt:   "2025-08-21T10:00:00.000Z",
		},
		{
			ID:          "demo-2",
			Title:       "Backend Engineer",
			Company:     "Zomato",
			Location:    "Remote",
			JobType:     string(model.JobTypeFullTime),
			SalaryMin:   900000,
			SalaryMax:   1400000,
			Description: desc("Own high-throughput ordering services. Ship reliable APIs."),
			CreatedAt:   "2025-08-21T10:00:00.000Z",
		},
		{
			ID:          "demo-3",
			Title:       "Product Designer",
			Company:     "Razorpay",
			Location:    "Mumbai",
			JobType:     string(model.JobTypeContract),
			SalaryMin:   500000,
			SalaryMax:   900000,
			Description: desc("Design payment flows used across India. Collaborate with product and engineering."),
			CreatedAt:   "2025-08-21T10:00:00.000Z",
		},
	}
}
