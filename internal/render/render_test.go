package render

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func parseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func sampleResume() types.ResumeData {
	d := types.Initial()
	d.PersonalInfo.FullName = "Ada Lovelace"
	d.PersonalInfo.Email = "ada@example.com"
	d.PersonalInfo.Phone = "555-0100"
	d.CareerObjective = "Build reliable analytical engines."
	d.Education = []types.Education{{
		ID:          "edu-1",
		Institution: "MIT",
		Degree:      "BSc",
		Field:       "Computer Science",
		StartDate:   "2020-09",
		EndDate:     "2024-05",
		GPA:         "3.9",
	}}
	d.Skills = []types.Skill{
		{ID: "sk-1", Name: "Go", Category: types.SkillTechnical},
		{ID: "sk-2", Name: "Leadership", Category: types.SkillSoft},
	}
	d.Experience = []types.Experience{{
		ID:               "exp-1",
		Company:          "Acme Corp",
		Role:             "Engineer",
		StartDate:        "2024-06",
		Current:          true,
		Responsibilities: []string{"Shipped the widget pipeline"},
	}}
	return d
}

func TestRenderATSSections(t *testing.T) {
	d := sampleResume()
	d.Template = types.TemplateATS

	html, err := Render(d)
	require.NoError(t, err)
	doc := parseHTML(t, html)

	headings := doc.Find("h2").Map(func(_ int, s *goquery.Selection) string {
		return strings.TrimSpace(s.Text())
	})
	assert.Contains(t, headings, "Education")
	assert.Contains(t, headings, "Skills")
	assert.Contains(t, headings, "Work Experience")
	assert.Contains(t, headings, "Professional Summary")
	// No projects on the sample resume, so the section must be absent.
	assert.NotContains(t, headings, "Projects")

	body := doc.Text()
	assert.Contains(t, body, "MIT")
	assert.Contains(t, body, "BSc in Computer Science")
	assert.Contains(t, body, "Ada Lovelace")
}

func TestRenderCurrentExperienceShowsPresent(t *testing.T) {
	d := sampleResume()

	for _, tmpl := range types.Templates {
		t.Run(string(tmpl), func(t *testing.T) {
			html, err := RenderTemplate(d, tmpl)
			require.NoError(t, err)
			assert.Contains(t, html, "Present")
			assert.NotContains(t, html, "ZgotmplZ")
		})
	}
}

func TestRenderEmptySectionsOmitted(t *testing.T) {
	d := types.Initial()
	d.PersonalInfo.FullName = "Ada Lovelace"

	for _, tmpl := range types.Templates {
		t.Run(string(tmpl), func(t *testing.T) {
			html, err := RenderTemplate(d, tmpl)
			require.NoError(t, err)
			doc := parseHTML(t, html)
			assert.Equal(t, 0, doc.Find("section").Length())
			assert.Contains(t, doc.Text(), "Ada Lovelace")
		})
	}
}

func TestRenderMissingNameFallsBack(t *testing.T) {
	d := types.Initial()

	html, err := Render(d)
	require.NoError(t, err)
	assert.Contains(t, html, "Your Name")
}

func TestRenderUnknownTemplateFallsBack(t *testing.T) {
	d := sampleResume()
	d.Template = types.TemplateType("holographic")

	html, err := Render(d)
	require.NoError(t, err)

	want, err := RenderTemplate(d, types.DefaultTemplate)
	require.NoError(t, err)
	assert.Equal(t, want, html)
}

func TestRenderDeterministic(t *testing.T) {
	d := sampleResume()

	first, err := Render(d)
	require.NoError(t, err)
	second, err := Render(d)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderDoesNotMutateSnapshot(t *testing.T) {
	d := sampleResume()
	before := d.Clone()

	_, err := Render(d)
	require.NoError(t, err)
	assert.Equal(t, before, d)
}

func TestRenderThemeColorApplied(t *testing.T) {
	d := sampleResume()
	d.Settings.ThemeColor = "0 84% 60%"

	html, err := Render(d)
	require.NoError(t, err)
	assert.Contains(t, html, "hsl(0 84% 60%)")
	assert.NotContains(t, html, "ZgotmplZ")
}

func TestRenderDefaultSettingsBackfilled(t *testing.T) {
	d := sampleResume()
	d.Settings = types.ResumeSettings{}

	html, err := Render(d)
	require.NoError(t, err)
	assert.Contains(t, html, "hsl(217 91% 60%)")
	assert.Contains(t, html, "IBM Plex Serif")
	assert.Contains(t, html, "font-size:11pt")
}

func TestRenderModernContactIcons(t *testing.T) {
	d := sampleResume()

	html, err := RenderTemplate(d, types.TemplateModern)
	require.NoError(t, err)
	doc := parseHTML(t, html)

	// Email and phone are set on the sample resume, location is not
	icons := doc.Find(".contact-icon")
	assert.Equal(t, 2, icons.Length())
	assert.Contains(t, icons.Text(), "ada@example.com")
}

func TestRenderModernHideIcons(t *testing.T) {
	d := sampleResume()
	d.Settings.HideIcons = true

	html, err := RenderTemplate(d, types.TemplateModern)
	require.NoError(t, err)
	doc := parseHTML(t, html)

	assert.Equal(t, 0, doc.Find(".contact-icon").Length())
	// Contact details still appear, just without glyphs
	assert.Contains(t, doc.Text(), "ada@example.com")
	assert.Contains(t, doc.Text(), "555-0100")
}

func TestRenderModernSkillSplit(t *testing.T) {
	d := sampleResume()

	html, err := RenderTemplate(d, types.TemplateModern)
	require.NoError(t, err)
	doc := parseHTML(t, html)

	body := doc.Text()
	assert.Contains(t, body, "Technical:")
	assert.Contains(t, body, "Soft:")
	assert.Contains(t, body, "Go")
	assert.Contains(t, body, "Leadership")
}
