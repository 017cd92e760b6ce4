package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// academicYearRegex matches school-year spans like 2024-2025
	academicYearRegex = regexp.MustCompile(`^[0-9]{4}-[0-9]{4}$`)

	// semesterRegex matches the term labels memberships and fees carry
	semesterRegex = regexp.MustCompile(`^(1st|2nd|Summer)$`)
)

// ValidateAcademicYear validates the YYYY-YYYY academic year format used on
// memberships and fees.
func ValidateAcademicYear(fl validator.FieldLevel) bool {
	year := fl.Field().String()
	return academicYearRegex.MatchString(year)
}

// ValidateSemester validates the term label: 1st, 2nd or Summer.
func ValidateSemester(fl validator.FieldLevel) bool {
	return semesterRegex.MatchString(fl.Field().String())
}
