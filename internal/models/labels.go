package models

// Display labels for the job board. Older postings from the platform still
// carry snake_case enum values, so both spellings map to the same label.

var employmentTypeLabels = map[string]string{
	"full_time":          "Full Time",
	"part_time":          "Part Time",
	"contract":           "Contract",
	"internship":         "Internship",
	EmploymentFullTime:   "Full Time",
	EmploymentPartTime:   "Part Time",
	EmploymentContract:   "Contract",
	EmploymentInternship: "Internship",
}

var workplaceTypeLabels = map[string]string{
	"remote":        "Remote",
	"on_site":       "On Site",
	"hybrid":        "Hybrid",
	WorkplaceRemote: "Remote",
	WorkplaceOnSite: "On Site",
	WorkplaceHybrid: "Hybrid",
}

var seniorityLevelLabels = map[string]string{
	"entry":            "Entry Level",
	"mid":              "Mid Level",
	"senior":           "Senior Level",
	"lead":             "Lead",
	"director":         "Director",
	"executive":        "Executive",
	SeniorityEntry:     "Entry Level",
	SeniorityMid:       "Mid Level",
	SenioritySenior:    "Senior Level",
	SeniorityLead:      "Lead",
	SeniorityDirector:  "Director",
	SeniorityExecutive: "Executive",
}

func EmploymentTypeLabel(t string) string {
	if l, ok := employmentTypeLabels[t]; ok {
		return l
	}
	return t
}

func WorkplaceTypeLabel(t string) string {
	if l, ok := workplaceTypeLabels[t]; ok {
		return l
	}
	return t
}

func SeniorityLevelLabel(l string) string {
	if s, ok := seniorityLevelLabels[l]; ok {
		return s
	}
	return l
}
