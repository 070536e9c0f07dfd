package wizard

// Draft is the in-progress application. It lives only in memory: it is
// created when the wizard starts, mutated through the step forms, and thrown
// away after a successful submission or on navigation away. Nothing here
// touches the network.
type Draft struct {
	// Fallbacks for when the identity is missing a value; the signed-in
	// identity always wins where it is set.
	FirstName string
	LastName  string
	Email     string

	Phone          string
	Country        string
	ExpectedSalary string
	SalaryCurrency string

	ProfessionalSummary  string
	TotalExperienceYears int

	ResumeURL string

	Experience []WorkExperience
	Education  []EducationEntry

	// Both are sets: exact-string duplicates are rejected at the point of
	// entry.
	Skills         []string
	Certifications []string

	// Monotonic counter for row ids. The ids key list rows while editing and
	// are discarded before submission.
	nextRowID int
}

// WorkExperience is one prior job. When IsCurrent is set the end date is not
// required.
type WorkExperience struct {
	ID          int
	Company     string
	Position    string
	StartDate   string
	EndDate     string
	Description string
	IsCurrent   bool
}

// EducationEntry is one academic record.
type EducationEntry struct {
	ID             int
	Institution    string
	Degree         string
	Field          string
	GraduationYear string
}

func NewDraft() *Draft {
	return &Draft{
		Country:        "United States",
		SalaryCurrency: "USD",
	}
}

// AddExperience appends an empty row and returns it for editing.
func (d *Draft) AddExperience() *WorkExperience {
	d.nextRowID++
	d.Experience = append(d.Experience, WorkExperience{ID: d.nextRowID})
	return &d.Experience[len(d.Experience)-1]
}

// ExperienceByID returns the row with the given id, or nil.
func (d *Draft) ExperienceByID(id int) *WorkExperience {
	for i := range d.Experience {
		if d.Experience[i].ID == id {
			return &d.Experience[i]
		}
	}
	return nil
}

func (d *Draft) RemoveExperience(id int) bool {
	for i := range d.Experience {
		if d.Experience[i].ID == id {
			d.Experience = append(d.Experience[:i], d.Experience[i+1:]...)
			return true
		}
	}
	return false
}

// AddEducation appends an empty row and returns it for editing.
func (d *Draft) AddEducation() *EducationEntry {
	d.nextRowID++
	d.Education = append(d.Education, EducationEntry{ID: d.nextRowID})
	return &d.Education[len(d.Education)-1]
}

// EducationByID returns the row with the given id, or nil.
func (d *Draft) EducationByID(id int) *EducationEntry {
	for i := range d.Education {
		if d.Education[i].ID == id {
			return &d.Education[i]
		}
	}
	return nil
}

func (d *Draft) RemoveEducation(id int) bool {
	for i := range d.Education {
		if d.Education[i].ID == id {
			d.Education = append(d.Education[:i], d.Education[i+1:]...)
			return true
		}
	}
	return false
}

func (d *Draft) hasSkill(skill string) bool {
	for _, s := range d.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

func (d *Draft) hasCertification(cert string) bool {
	for _, c := range d.Certifications {
		if c == cert {
			return true
		}
	}
	return false
}
