package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Each report takes a typed filter struct bound from the query string.
// Required fields are checked by Validate before any query runs, and the
// resulting error names every missing field at once.

// MembersFilter drives report 1: the full member listing of one
// organization, narrowed by membership and member attributes.
type MembersFilter struct {
	Organization  string `form:"organization"`
	Role          string `form:"role"`
	Status        string `form:"status"`
	Batch         string `form:"batch"` // academic-year prefix, e.g. "2023"
	Committee     string `form:"committee"`
	Gender        string `form:"gender"`
	DegreeProgram string `form:"degreeProgram"`
}

func (f *MembersFilter) Validate() error {
	return requireFilters(filterValues{"organization": f.Organization})
}

// OrgTermFilter is shared by reports 2, 6 and 10: one organization in one
// semester of one academic year.
type OrgTermFilter struct {
	Organization string `form:"organization"`
	Semester     string `form:"semester"`
	AcademicYear string `form:"academicYear"`
}

func (f *OrgTermFilter) Validate() error {
	return requireFilters(filterValues{
		"organization": f.Organization,
		"semester":     f.Semester,
		"academicYear": f.AcademicYear,
	})
}

// StudentFilter drives report 3.
type StudentFilter struct {
	StudentNumber string `form:"studentNumber"`
}

func (f *StudentFilter) Validate() error {
	return requireFilters(filterValues{"studentNumber": f.StudentNumber})
}

// OrgYearFilter drives report 4.
type OrgYearFilter struct {
	Organization string `form:"organization"`
	AcademicYear string `form:"academicYear"`
}

func (f *OrgYearFilter) Validate() error {
	return requireFilters(filterValues{
		"organization": f.Organization,
		"academicYear": f.AcademicYear,
	})
}

// RoleHistoryFilter drives report 5. Role defaults to President when the
// caller leaves it out.
type RoleHistoryFilter struct {
	Organization string `form:"organization"`
	Role         string `form:"role"`
}

const defaultHistoryRole = "President"

func (f *RoleHistoryFilter) Validate() error {
	if err := requireFilters(filterValues{"organization": f.Organization}); err != nil {
		return err
	}
	if f.Role == "" {
		f.Role = defaultHistoryRole
	}
	return nil
}

// SemesterWindowFilter drives report 7: the last N semesters of one
// organization.
type SemesterWindowFilter struct {
	Organization string `form:"organization"`
	N            string `form:"n"`

	count int
}

func (f *SemesterWindowFilter) Validate() error {
	if err := requireFilters(filterValues{"organization": f.Organization, "n": f.N}); err != nil {
		return err
	}
	count, err := strconv.Atoi(f.N)
	if err != nil || count < 1 {
		return fmt.Errorf("'n' must be a positive integer")
	}
	f.count = count
	return nil
}

// Count returns the parsed semester count; valid only after Validate.
func (f *SemesterWindowFilter) Count() int {
	return f.count
}

// OrgDateFilter is shared by reports 8 and 9: one organization as of a
// cutoff date.
type OrgDateFilter struct {
	Organization string `form:"organization"`
	Date         string `form:"date"`

	cutoff time.Time
}

func (f *OrgDateFilter) Validate() error {
	if err := requireFilters(filterValues{"organization": f.Organization, "date": f.Date}); err != nil {
		return err
	}
	cutoff, err := time.Parse(dateLayout, f.Date)
	if err != nil {
		return fmt.Errorf("'date' must be formatted as YYYY-MM-DD")
	}
	f.cutoff = cutoff
	return nil
}

// Cutoff returns the parsed date; valid only after Validate.
func (f *OrgDateFilter) Cutoff() time.Time {
	return f.cutoff
}

type filterValues map[string]string

// requireFilters returns an error naming every missing required filter, or
// nil when all are present.
func requireFilters(values filterValues) error {
	var missing []string
	for name, value := range values {
		if value == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return fmt.Errorf("missing required filters: %s", strings.Join(missing, ", "))
}
