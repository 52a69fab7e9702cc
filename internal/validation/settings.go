package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
)

var validate = validator.New()

// settingsRules carries the range constraints for appearance settings.
// Pointer fields mirror the patch shape: absent fields are not checked.
type settingsRules struct {
	FontSize   *float64 `validate:"omitempty,gte=9,lte=18"`
	LineHeight *float64 `validate:"omitempty,gte=1,lte=2"`
}

// ValidateSettingsPatch checks a partial settings update. Only fields
// present in the patch are validated.
func ValidateSettingsPatch(p store.SettingsPatch) error {
	verr := &Error{}

	rules := settingsRules{FontSize: p.FontSize, LineHeight: p.LineHeight}
	if err := validate.Struct(rules); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				switch fe.StructField() {
				case "FontSize":
					verr.add("fontSize", fmt.Sprintf("must be between %g and %g", types.MinFontSize, types.MaxFontSize))
				case "LineHeight":
					verr.add("lineHeight", fmt.Sprintf("must be between %g and %g", types.MinLineHeight, types.MaxLineHeight))
				}
			}
		} else {
			return fmt.Errorf("failed to validate settings: %w", err)
		}
	}

	if p.FontFamily != nil && !types.ValidFontFamily(*p.FontFamily) {
		verr.add("fontFamily", fmt.Sprintf("unknown font family %q", *p.FontFamily))
	}

	return verr.orNil()
}

// ValidatePatch checks a top-level partial update before it is applied.
// Only the constrained fields it carries are examined.
func ValidatePatch(p store.Patch) error {
	verr := &Error{}

	if p.Template != nil && !p.Template.Valid() {
		verr.add("template", fmt.Sprintf("unknown template %q", *p.Template))
	}
	if p.Settings != nil {
		st := *p.Settings
		if st.FontSize != 0 && (st.FontSize < types.MinFontSize || st.FontSize > types.MaxFontSize) {
			verr.add("settings.fontSize", fmt.Sprintf("must be between %g and %g", types.MinFontSize, types.MaxFontSize))
		}
		if st.LineHeight != 0 && (st.LineHeight < types.MinLineHeight || st.LineHeight > types.MaxLineHeight) {
			verr.add("settings.lineHeight", fmt.Sprintf("must be between %g and %g", types.MinLineHeight, types.MaxLineHeight))
		}
		if st.FontFamily != "" && !types.ValidFontFamily(st.FontFamily) {
			verr.add("settings.fontFamily", fmt.Sprintf("unknown font family %q", st.FontFamily))
		}
	}
	if p.Skills != nil {
		for i, sk := range *p.Skills {
			if sk.Category != "" && sk.Category != types.SkillTechnical && sk.Category != types.SkillSoft {
				verr.add(fmt.Sprintf("skills[%d].category", i), fmt.Sprintf("unknown category %q", sk.Category))
			}
		}
	}

	return verr.orNil()
}

// ValidateResume checks a full document before it replaces the snapshot:
// template identifier, settings ranges, and per-entry enums.
func ValidateResume(d types.ResumeData) error {
	verr := &Error{}

	if d.Template != "" && !d.Template.Valid() {
		verr.add("template", fmt.Sprintf("unknown template %q", d.Template))
	}

	s := d.Settings
	if s.FontSize != 0 && (s.FontSize < types.MinFontSize || s.FontSize > types.MaxFontSize) {
		verr.add("settings.fontSize", fmt.Sprintf("must be between %g and %g", types.MinFontSize, types.MaxFontSize))
	}
	if s.LineHeight != 0 && (s.LineHeight < types.MinLineHeight || s.LineHeight > types.MaxLineHeight) {
		verr.add("settings.lineHeight", fmt.Sprintf("must be between %g and %g", types.MinLineHeight, types.MaxLineHeight))
	}
	if s.FontFamily != "" && !types.ValidFontFamily(s.FontFamily) {
		verr.add("settings.fontFamily", fmt.Sprintf("unknown font family %q", s.FontFamily))
	}

	for i, sk := range d.Skills {
		if sk.Category != "" && sk.Category != types.SkillTechnical && sk.Category != types.SkillSoft {
			verr.add(fmt.Sprintf("skills[%d].category", i), fmt.Sprintf("unknown category %q", sk.Category))
		}
	}
	for i, l := range d.Languages {
		switch l.Proficiency {
		case "", types.ProficiencyBasic, types.ProficiencyConversational, types.ProficiencyProfessional, types.ProficiencyNative:
		default:
			verr.add(fmt.Sprintf("languages[%d].proficiency", i), fmt.Sprintf("unknown proficiency %q", l.Proficiency))
		}
	}
	for i, in := range d.Interests {
		switch in.Category {
		case "", types.InterestHobby, types.InterestSport, types.InterestArt, types.InterestTechnology, types.InterestOther:
		default:
			verr.add(fmt.Sprintf("interests[%d].category", i), fmt.Sprintf("unknown category %q", in.Category))
		}
	}

	return verr.orNil()
}
