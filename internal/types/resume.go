// Package types provides type definitions for the resume data model shared across the builder.
//
//nolint:revive // types is a standard Go package name pattern
package types

// TemplateType identifies one of the built-in resume templates
type TemplateType string

// Template identifiers form a closed set; anything else falls back to DefaultTemplate at render time
const (
	TemplateModern   TemplateType = "modern"
	TemplateClassic  TemplateType = "classic"
	TemplateMinimal  TemplateType = "minimal"
	TemplateCreative TemplateType = "creative"
	TemplateATS      TemplateType = "ats"
	TemplateSimple   TemplateType = "simple"
	TemplateElegant  TemplateType = "elegant"
)

// DefaultTemplate is used for new resumes and as the fallback for unknown identifiers
const DefaultTemplate = TemplateModern

// Templates lists every built-in template in display order
var Templates = []TemplateType{
	TemplateModern,
	TemplateClassic,
	TemplateMinimal,
	TemplateCreative,
	TemplateATS,
	TemplateSimple,
	TemplateElegant,
}

// Valid reports whether t is one of the built-in template identifiers
func (t TemplateType) Valid() bool {
	for _, known := range Templates {
		if t == known {
			return true
		}
	}
	return false
}

// SkillCategory classifies a skill as technical or soft
type SkillCategory string

// Skill categories
const (
	SkillTechnical SkillCategory = "technical"
	SkillSoft      SkillCategory = "soft"
)

// Proficiency represents a spoken-language proficiency level
type Proficiency string

// Language proficiency levels
const (
	ProficiencyBasic          Proficiency = "basic"
	ProficiencyConversational Proficiency = "conversational"
	ProficiencyProfessional   Proficiency = "professional"
	ProficiencyNative         Proficiency = "native"
)

// InterestCategory classifies an interest entry
type InterestCategory string

// Interest categories
const (
	InterestHobby      InterestCategory = "hobby"
	InterestSport      InterestCategory = "sport"
	InterestArt        InterestCategory = "art"
	InterestTechnology InterestCategory = "technology"
	InterestOther      InterestCategory = "other"
)

// PersonalInfo holds the contact header of a resume
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	Website  string `json:"website"`
	Image    string `json:"image,omitempty"`  // profile image URL or data URI
	GitHub   string `json:"github,omitempty"`
	Code     string `json:"code,omitempty"` // code portfolio URL
}

// Education is one entry in the education section
type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"` // YYYY-MM
	EndDate     string `json:"endDate"`   // YYYY-MM
	GPA         string `json:"gpa"`
	Description string `json:"description"`
}

// Skill is one entry in the skills section
type Skill struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Category SkillCategory `json:"category"`
}

// Project is one entry in the projects section
type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
}

// Experience is one entry in the experience section. When Current is true the
// stored EndDate is ignored for display and "Present" is rendered instead.
type Experience struct {
	ID               string   `json:"id"`
	Company          string   `json:"company"`
	Role             string   `json:"role"`
	Location         string   `json:"location"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	Current          bool     `json:"current"`
	Responsibilities []string `json:"responsibilities"`
}

// Certification is one entry in the certifications section
type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"` // YYYY-MM
	Link   string `json:"link"`
}

// Language is one entry in the languages section
type Language struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Proficiency Proficiency `json:"proficiency"`
}

// Achievement is one entry in the achievements section
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// Interest is one entry in the interests section
type Interest struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Category InterestCategory `json:"category"`
}

// AIFeedback holds the most recent AI review of a resume. It is replaced
// wholesale on every regeneration, never merged.
type AIFeedback struct {
	OverallScore      int      `json:"overallScore"`
	GrammarScore      int      `json:"grammarScore"`
	ProfessionalScore int      `json:"professionalScore"`
	CompletenessScore int      `json:"completenessScore"`
	Suggestions       []string `json:"suggestions"`
	Strengths         []string `json:"strengths"`
	Weaknesses        []string `json:"weaknesses"`
	GeneratedAt       string   `json:"generatedAt"`
}

// ResumeSettings holds presentation settings applied by every template
type ResumeSettings struct {
	ThemeColor   string  `json:"themeColor"` // HSL triple, e.g. "217 91% 60%"
	FontSize     float64 `json:"fontSize"`   // base size in pt
	FontFamily   string  `json:"fontFamily"`
	FontSubset   string  `json:"fontSubset"`
	FontVariants string  `json:"fontVariants"`
	LineHeight   float64 `json:"lineHeight"`
	HideIcons    bool    `json:"hideIcons"`
}

// Settings bounds enforced by callers of the store's PatchSettings
const (
	MinFontSize   = 9.0
	MaxFontSize   = 18.0
	MinLineHeight = 1.0
	MaxLineHeight = 2.0
)

// FontFamilies is the fixed catalog of fonts offered by the settings panel
var FontFamilies = []string{
	"Arial", "Cambria", "Garamond", "IBM Plex Sans", "IBM Plex Serif", "Lato",
	"Lora", "Merriweather", "Open Sans", "Playfair Display", "PT Sans", "PT Serif",
	"Roboto Condensed", "Times New Roman",
}

// ValidFontFamily reports whether name is in the font catalog
func ValidFontFamily(name string) bool {
	for _, f := range FontFamilies {
		if f == name {
			return true
		}
	}
	return false
}

// ThemeColor is a named HSL preset for the theme color picker
type ThemeColor struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ThemeColors lists the built-in theme color presets
var ThemeColors = []ThemeColor{
	{Name: "Blue", Value: "217 91% 60%"},
	{Name: "Indigo", Value: "239 84% 67%"},
	{Name: "Purple", Value: "271 81% 56%"},
	{Name: "Pink", Value: "330 81% 60%"},
	{Name: "Red", Value: "0 84% 60%"},
	{Name: "Orange", Value: "25 95% 53%"},
	{Name: "Amber", Value: "38 92% 50%"},
	{Name: "Green", Value: "142 76% 36%"},
	{Name: "Teal", Value: "173 80% 40%"},
	{Name: "Cyan", Value: "189 94% 43%"},
	{Name: "Gray", Value: "220 9% 46%"},
	{Name: "Slate", Value: "215 16% 47%"},
}

// ResumeData is the full aggregate for one resume: content, presentation
// settings, and the latest AI feedback if any.
type ResumeData struct {
	ID              string          `json:"id,omitempty"`
	Title           string          `json:"title"`
	Template        TemplateType    `json:"template"`
	Settings        ResumeSettings  `json:"settings"`
	PersonalInfo    PersonalInfo    `json:"personalInfo"`
	CareerObjective string          `json:"careerObjective"`
	Education       []Education     `json:"education"`
	Skills          []Skill         `json:"skills"`
	Projects        []Project       `json:"projects"`
	Experience      []Experience    `json:"experience"`
	Certifications  []Certification `json:"certifications"`
	Languages       []Language      `json:"languages"`
	Achievements    []Achievement   `json:"achievements"`
	Interests       []Interest      `json:"interests"`
	AIFeedback      *AIFeedback     `json:"aiFeedback,omitempty"`
}

// DefaultSettings returns the presentation defaults applied to new resumes
// and backfilled on load when the stored record has no settings.
func DefaultSettings() ResumeSettings {
	return ResumeSettings{
		ThemeColor:   "217 91% 60%",
		FontSize:     11,
		FontFamily:   "IBM Plex Serif",
		FontSubset:   "latin",
		FontVariants: "regular, italic, 600",
		LineHeight:   1.5,
		HideIcons:    false,
	}
}

// Initial returns a ResumeData with all-empty defaults. Every list field is
// non-nil so downstream consumers never see a nil slice.
func Initial() ResumeData {
	return ResumeData{
		Title:          "My Resume",
		Template:       DefaultTemplate,
		Settings:       DefaultSettings(),
		Education:      []Education{},
		Skills:         []Skill{},
		Projects:       []Project{},
		Experience:     []Experience{},
		Certifications: []Certification{},
		Languages:      []Language{},
		Achievements:   []Achievement{},
		Interests:      []Interest{},
	}
}

// Clone returns a deep copy of the aggregate. Snapshots handed out by the
// store are clones, so holders can never mutate the store's current value.
func (d ResumeData) Clone() ResumeData {
	out := d

	out.Education = append([]Education(nil), d.Education...)
	out.Skills = append([]Skill(nil), d.Skills...)
	out.Certifications = append([]Certification(nil), d.Certifications...)
	out.Languages = append([]Language(nil), d.Languages...)
	out.Achievements = append([]Achievement(nil), d.Achievements...)
	out.Interests = append([]Interest(nil), d.Interests...)

	out.Projects = append([]Project(nil), d.Projects...)
	for i := range out.Projects {
		out.Projects[i].Technologies = append([]string(nil), out.Projects[i].Technologies...)
	}

	out.Experience = append([]Experience(nil), d.Experience...)
	for i := range out.Experience {
		out.Experience[i].Responsibilities = append([]string(nil), out.Experience[i].Responsibilities...)
	}

	if d.AIFeedback != nil {
		fb := *d.AIFeedback
		fb.Suggestions = append([]string(nil), d.AIFeedback.Suggestions...)
		fb.Strengths = append([]string(nil), d.AIFeedback.Strengths...)
		fb.Weaknesses = append([]string(nil), d.AIFeedback.Weaknesses...)
		out.AIFeedback = &fb
	}

	return out
}

// Normalize backfills zero-valued fields with system defaults so that a
// partially populated document (e.g. loaded from an older stored row) always
// reaches consumers fully shaped. List fields become empty, non-nil slices.
func (d ResumeData) Normalize() ResumeData {
	out := d.Clone()

	if out.Title == "" {
		out.Title = Initial().Title
	}
	if out.Template == "" {
		out.Template = DefaultTemplate
	}
	if (out.Settings == ResumeSettings{}) {
		out.Settings = DefaultSettings()
	}

	if out.Education == nil {
		out.Education = []Education{}
	}
	if out.Skills == nil {
		out.Skills = []Skill{}
	}
	if out.Projects == nil {
		out.Projects = []Project{}
	}
	if out.Experience == nil {
		out.Experience = []Experience{}
	}
	if out.Certifications == nil {
		out.Certifications = []Certification{}
	}
	if out.Languages == nil {
		out.Languages = []Language{}
	}
	if out.Achievements == nil {
		out.Achievements = []Achievement{}
	}
	if out.Interests == nil {
		out.Interests = []Interest{}
	}

	return out
}
