package board

import (
	"fmt"
	"math"
	"strings"
	"time"

	"jobgrid/board-service/internal/model"
)

// DisplayJob is the render-ready projection of a JobRecord. It is derived
// deterministically and never sent back to the server.
type DisplayJob struct {
	JobTitle    string
	CompanyName string
	CompanyLogo string // empty means absent; the card derives one from the name
	Experience  string
	WorkType    string
	Salary      string
	Description []string
	TimeAgo     string
	OnApply     func()
}

// The remote schema carries no experience field, so every card shows the same
// placeholder.
const defaultExperience = "1-3 yr Exp"

// placeholderDescription is shown when a record has no description at all.
var placeholderDescription = []string{
	"A user-friendly interface lets you browse stunning photos and videos",
	"Filter destinations based on interests and travel style, and create personalized",
}

// ToDisplayJob maps a JobRecord to its card representation, using now as the
// reference point for the age badge.
func ToDisplayJob(j model.JobRecord, now time.Time) DisplayJob {
	workType := j.JobType
	if workType == "" {
		workType = "Onsite"
	}

	return DisplayJob{
		JobTitle:    j.Title,
		CompanyName: j.Company,
		Experience:  defaultExperience,
		WorkType:    workType,
		Salary:      formatSalary(j.SalaryMax),
		Description: descriptionLines(j.Description),
		TimeAgo:     timeAgo(j.CreatedAt, now),
		OnApply:     func() {}, // apply is a placeholder action for now
	}
}

// timeAgo renders the age of a posting: "{N}h Ago" under a day, "{N}d Ago"
// after. A future created_at yields a negative hour count; that quirk is part
// of the observable contract and deliberately not corrected here.
func timeAgo(createdAt string, now time.Time) string {
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return "0h Ago"
	}
	hours := int(math.Floor(now.Sub(t).Hours()))
	if hours < 24 {
		return fmt.Sprintf("%dh Ago", hours)
	}
	return fmt.Sprintf("%dd Ago", hours/24)
}

// formatSalary renders the top of the band in lakhs per annum, one decimal.
func formatSalary(salaryMax int) string {
	return fmt.Sprintf("%.1fLPA", float64(salaryMax)/100000)
}

// descriptionLines splits a description on "." and keeps at most the first
// two fragments that are non-empty after trimming. The fragments themselves
// keep their original spacing.
func descriptionLines(description *string) []string {
	if description == nil || *description == "" {
		return placeholderDescription
	}
	lines := make([]string, 0, 2)
	for _, frag := range strings.Split(*description, ".") {
		if strings.TrimSpace(frag) == "" {
			continue
		}
		lines = append(lines, frag)
		if len(lines) == 2 {
			break
		}
	}
	return lines
}

// LogoURL derives a best-effort logo location from a company name: lowercase,
// strip everything non-alphanumeric, append ".com" and point it at a
// logo-by-domain service. There is no guarantee the resource exists; the
// renderer must tolerate it failing to load.
func LogoURL(company string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(company) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return "https://logo.clearbit.com/" + b.String() + ".com"
}
