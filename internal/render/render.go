// Package render maps a resume snapshot to one of the built-in HTML layouts.
// Renderers are pure: identical input always produces identical output, and
// rendering never mutates the snapshot.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("resume").Funcs(template.FuncMap{
	"formatDate":    FormatYearMonth,
	"dateRange":     DateRange,
	"hsl":           HSL,
	"skillNames":    SkillNames,
	"interestNames": InterestNames,
	"languageList":  LanguageList,
	"join":          JoinNonEmpty,
	"commaList":     func(items []string) string { return strings.Join(items, ", ") },
}).ParseFS(templateFS, "templates/*.html.tmpl"))

// view is the data handed to the layout templates: the resume itself plus
// presentation values with defaults already resolved.
type view struct {
	types.ResumeData
	Theme      template.CSS // css hsl(...) accent color
	FontSize   float64
	FontFamily string
	LineHeight float64

	TechnicalSkills []types.Skill
	SoftSkills      []types.Skill
}

func newView(d types.ResumeData) view {
	defaults := types.DefaultSettings()
	settings := d.Settings
	if settings.ThemeColor == "" {
		settings.ThemeColor = defaults.ThemeColor
	}
	if settings.FontSize == 0 {
		settings.FontSize = defaults.FontSize
	}
	if settings.FontFamily == "" {
		settings.FontFamily = defaults.FontFamily
	}
	if settings.LineHeight == 0 {
		settings.LineHeight = defaults.LineHeight
	}

	v := view{
		ResumeData: d,
		Theme:      template.CSS(HSL(settings.ThemeColor)),
		FontSize:   settings.FontSize,
		FontFamily: settings.FontFamily,
		LineHeight: settings.LineHeight,
	}
	for _, s := range d.Skills {
		if s.Category == types.SkillSoft {
			v.SoftSkills = append(v.SoftSkills, s)
		} else {
			v.TechnicalSkills = append(v.TechnicalSkills, s)
		}
	}
	return v
}

// Render produces the HTML preview for the snapshot's selected template.
// An unrecognized template identifier falls back to the default layout
// instead of failing.
func Render(d types.ResumeData) (string, error) {
	return RenderTemplate(d, d.Template)
}

// RenderTemplate renders the snapshot through an explicitly chosen template,
// leaving the snapshot's own template field out of the decision. Used by the
// template gallery.
func RenderTemplate(d types.ResumeData, tmpl types.TemplateType) (string, error) {
	if !tmpl.Valid() {
		tmpl = types.DefaultTemplate
	}

	var out strings.Builder
	if err := templates.ExecuteTemplate(&out, string(tmpl)+".html.tmpl", newView(d)); err != nil {
		return "", fmt.Errorf("failed to render %s template: %w", tmpl, err)
	}
	return out.String(), nil
}
