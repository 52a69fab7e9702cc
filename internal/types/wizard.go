package types

import "strings"

// WizardStep identifies one section of the editing wizard
type WizardStep string

// Wizard steps in display order
const (
	StepPersonal       WizardStep = "personal"
	StepObjective      WizardStep = "objective"
	StepEducation      WizardStep = "education"
	StepSkills         WizardStep = "skills"
	StepProjects       WizardStep = "projects"
	StepExperience     WizardStep = "experience"
	StepCertifications WizardStep = "certifications"
	StepLanguages      WizardStep = "languages"
	StepAchievements   WizardStep = "achievements"
	StepInterests      WizardStep = "interests"
)

// StepInfo pairs a wizard step key with its display label
type StepInfo struct {
	Key   WizardStep `json:"key"`
	Label string     `json:"label"`
}

// WizardSteps lists the ten wizard sections in display order
var WizardSteps = []StepInfo{
	{Key: StepPersonal, Label: "Personal Info"},
	{Key: StepObjective, Label: "Career Objective"},
	{Key: StepEducation, Label: "Education"},
	{Key: StepSkills, Label: "Skills"},
	{Key: StepProjects, Label: "Projects"},
	{Key: StepExperience, Label: "Experience"},
	{Key: StepCertifications, Label: "Certifications"},
	{Key: StepLanguages, Label: "Languages"},
	{Key: StepAchievements, Label: "Achievements"},
	{Key: StepInterests, Label: "Interests"},
}

// FirstStep returns the step the wizard opens on
func FirstStep() WizardStep {
	return StepPersonal
}

// ValidStep reports whether step is a known wizard step
func ValidStep(step WizardStep) bool {
	for _, s := range WizardSteps {
		if s.Key == step {
			return true
		}
	}
	return false
}

// StepComplete reports whether the given wizard section has enough content to
// show a completion check mark. This drives the progress indicator only;
// navigation is never gated on it.
func (d ResumeData) StepComplete(step WizardStep) bool {
	switch step {
	case StepPersonal:
		return d.PersonalInfo.FullName != "" && d.PersonalInfo.Email != ""
	case StepObjective:
		return strings.TrimSpace(d.CareerObjective) != ""
	case StepEducation:
		return len(d.Education) > 0
	case StepSkills:
		return len(d.Skills) > 0
	case StepProjects:
		return len(d.Projects) > 0
	case StepExperience:
		return len(d.Experience) > 0
	case StepCertifications:
		return len(d.Certifications) > 0
	case StepLanguages:
		return len(d.Languages) > 0
	case StepAchievements:
		return len(d.Achievements) > 0
	case StepInterests:
		return len(d.Interests) > 0
	default:
		return false
	}
}
