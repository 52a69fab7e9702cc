package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/resume-builder/internal/types"
)

// FormatYearMonth formats a "YYYY-MM" date string as "Month Year".
// An empty input formats to an empty string; anything unparseable is
// returned as-is rather than failing the render.
func FormatYearMonth(s string) string {
	if s == "" {
		return ""
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return s
	}
	return t.Format("January 2006")
}

// DateRange formats a start/end pair, substituting "Present" for the end
// date when current is set, regardless of the stored end value.
func DateRange(start, end string, current bool) string {
	if current {
		return FormatYearMonth(start) + " - Present"
	}
	from, to := FormatYearMonth(start), FormatYearMonth(end)
	switch {
	case from == "" && to == "":
		return ""
	case to == "":
		return from
	case from == "":
		return to
	}
	return from + " - " + to
}

// HSL wraps a stored "H S% L%" triple in a CSS hsl() function
func HSL(triple string) string {
	return fmt.Sprintf("hsl(%s)", triple)
}

// JoinNonEmpty joins the non-empty parts with the separator
func JoinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// SkillNames joins skill names with ", "
func SkillNames(skills []types.Skill) string {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	return strings.Join(names, ", ")
}

// InterestNames joins interest names with ", "
func InterestNames(interests []types.Interest) string {
	names := make([]string, 0, len(interests))
	for _, i := range interests {
		names = append(names, i.Name)
	}
	return strings.Join(names, ", ")
}

// LanguageList formats languages as "Name (proficiency)" joined with ", "
func LanguageList(langs []types.Language) string {
	parts := make([]string, 0, len(langs))
	for _, l := range langs {
		parts = append(parts, fmt.Sprintf("%s (%s)", l.Name, l.Proficiency))
	}
	return strings.Join(parts, ", ")
}
