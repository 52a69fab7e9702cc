package export

import (
	"errors"

	"github.com/jonathan/resume-builder/internal/types"
)

// ErrDOCXNotAvailable reports that Word export has no backing
// implementation yet. Callers surface it as a 501 rather than failing
// the whole export surface.
var ErrDOCXNotAvailable = errors.New("docx export is not available yet")

// DOCX is a placeholder for Word export.
func DOCX(types.ResumeData) ([]byte, error) {
	return nil, ErrDOCXNotAvailable
}
