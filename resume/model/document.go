package model

import "strings"

// ResumeDocument is the structured resume payload the engine reads.
// The engine never mutates it.
type ResumeDocument struct {
	Contact    Contact      `json:"contact"`
	Summary    string       `json:"summary,omitempty"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
	Skills     []string     `json:"skills"`
}

// Contact captures top-of-resume contact details. All fields are optional.
type Contact struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

// Experience is a single work history entry.
type Experience struct {
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
}

// Education is a single education entry.
type Education struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
}

// FilledContactFields counts non-blank contact fields among name, email, phone, location.
func (c Contact) FilledContactFields() int {
	n := 0
	for _, v := range []string{c.Name, c.Email, c.Phone, c.Location} {
		if hasValue(v) {
			n++
		}
	}
	return n
}

// IsEmpty reports whether every field of the entry is blank.
func (e Experience) IsEmpty() bool {
	return !hasValue(e.Title) && !hasValue(e.Company) && !hasValue(e.Duration) && !hasValue(e.Description)
}

// IsEmpty reports whether every field of the entry is blank.
func (e Education) IsEmpty() bool {
	return !hasValue(e.Degree) && !hasValue(e.Institution) && !hasValue(e.Year)
}

// IsComplete reports whether the entry names both a degree and an institution.
func (e Education) IsComplete() bool {
	return hasValue(e.Degree) && hasValue(e.Institution)
}

// HasEmail reports whether a non-blank email is present.
func (d ResumeDocument) HasEmail() bool {
	return hasValue(d.Contact.Email)
}

// HasPhone reports whether a non-blank phone is present.
func (d ResumeDocument) HasPhone() bool {
	return hasValue(d.Contact.Phone)
}

// HasSummary reports whether a non-blank summary is present.
func (d ResumeDocument) HasSummary() bool {
	return hasValue(d.Summary)
}

// ExperienceEntries returns the entries that carry at least one non-blank field.
func (d ResumeDocument) ExperienceEntries() []Experience {
	out := make([]Experience, 0, len(d.Experience))
	for _, e := range d.Experience {
		if !e.IsEmpty() {
			out = append(out, e)
		}
	}
	return out
}

// EducationEntries returns the entries that carry at least one non-blank field.
func (d ResumeDocument) EducationEntries() []Education {
	out := make([]Education, 0, len(d.Education))
	for _, e := range d.Education {
		if !e.IsEmpty() {
			out = append(out, e)
		}
	}
	return out
}

// UniqueSkills returns trimmed skills de-duplicated case-insensitively, keeping
// the first spelling and the original order. Blank entries are dropped.
func (d ResumeDocument) UniqueSkills() []string {
	seen := make(map[string]bool, len(d.Skills))
	out := make([]string, 0, len(d.Skills))
	for _, s := range d.Skills {
		trimmed := strings.TrimSpace(s)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, trimmed)
	}
	return out
}

// Completeness reports which sections carry content. Contact counts as
// present only when an email is given.
func (d ResumeDocument) Completeness() SectionCompleteness {
	return SectionCompleteness{
		HasContact:    d.HasEmail(),
		HasSummary:    d.HasSummary(),
		HasExperience: len(d.ExperienceEntries()) > 0,
		HasEducation:  len(d.EducationEntries()) > 0,
		HasSkills:     len(d.UniqueSkills()) > 0,
	}
}

func hasValue(s string) bool {
	return strings.TrimSpace(s) != ""
}
