// Package export turns a resume snapshot into downloadable artifacts:
// plain text, PDF via a headless browser, and (eventually) DOCX.
package export

import (
	"regexp"
	"strings"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Filename derives a download filename from the resume title. Each
// character outside [a-zA-Z0-9] becomes an underscore and the result is
// lowercased, so "Backend Role" becomes "backend_role_resume.pdf".
func Filename(title, ext string) string {
	if strings.TrimSpace(title) == "" {
		return "resume." + ext
	}
	safe := strings.ToLower(unsafeFilenameChars.ReplaceAllString(title, "_"))
	return safe + "_resume." + ext
}
