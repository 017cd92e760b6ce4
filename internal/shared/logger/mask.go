package logger

import "strings"

// MaskStudentNumber hides the middle of a student number for log output.
// "2021-04567" -> "20****567"
func MaskStudentNumber(sn string) string {
	if len(sn) <= 4 {
		return strings.Repeat("*", len(sn))
	}
	return sn[:2] + strings.Repeat("*", len(sn)-5) + sn[len(sn)-3:]
}

// MaskEmail hides the local part of an email address except its first
// character. "alice@example.com" -> "a****@example.com"
func MaskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 1 {
		return email
	}
	return email[:1] + "****" + email[at:]
}
