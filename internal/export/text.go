package export

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Text renders the resume as a plain-text document. Sections appear in a
// fixed order and are skipped entirely when empty; dates are emitted as
// stored rather than reformatted.
func Text(d types.ResumeData) string {
	var b strings.Builder

	name := d.PersonalInfo.FullName
	if name == "" {
		name = "Your Name"
	}
	b.WriteString(name + "\n")

	contact := joinNonEmpty(" | ",
		d.PersonalInfo.Email,
		d.PersonalInfo.Phone,
		d.PersonalInfo.Location,
	)
	if contact != "" {
		b.WriteString(contact + "\n")
	}
	links := joinNonEmpty(" | ", d.PersonalInfo.LinkedIn, d.PersonalInfo.Website)
	if links != "" {
		b.WriteString(links + "\n")
	}
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	if d.CareerObjective != "" {
		writeSection(&b, "PROFESSIONAL SUMMARY")
		b.WriteString(d.CareerObjective + "\n\n")
	}

	if len(d.Skills) > 0 {
		writeSection(&b, "SKILLS")
		names := make([]string, 0, len(d.Skills))
		for _, s := range d.Skills {
			names = append(names, s.Name)
		}
		b.WriteString(strings.Join(names, ", ") + "\n\n")
	}

	if len(d.Experience) > 0 {
		writeSection(&b, "EXPERIENCE")
		for _, exp := range d.Experience {
			end := exp.EndDate
			if exp.Current {
				end = "Present"
			}
			fmt.Fprintf(&b, "%s at %s\n", exp.Role, exp.Company)
			if exp.StartDate != "" || end != "" {
				fmt.Fprintf(&b, "%s - %s\n", exp.StartDate, end)
			}
			if exp.Location != "" {
				b.WriteString(exp.Location + "\n")
			}
			for _, r := range exp.Responsibilities {
				b.WriteString("- " + r + "\n")
			}
			b.WriteString("\n")
		}
	}

	if len(d.Education) > 0 {
		writeSection(&b, "EDUCATION")
		for _, edu := range d.Education {
			degree := edu.Degree
			if edu.Field != "" {
				degree += " in " + edu.Field
			}
			fmt.Fprintf(&b, "%s\n%s\n", degree, edu.Institution)
			if edu.StartDate != "" || edu.EndDate != "" {
				fmt.Fprintf(&b, "%s - %s\n", edu.StartDate, edu.EndDate)
			}
			if edu.GPA != "" {
				b.WriteString("GPA: " + edu.GPA + "\n")
			}
			b.WriteString("\n")
		}
	}

	if len(d.Projects) > 0 {
		writeSection(&b, "PROJECTS")
		for _, p := range d.Projects {
			b.WriteString(p.Title + "\n")
			if p.Description != "" {
				b.WriteString(p.Description + "\n")
			}
			if len(p.Technologies) > 0 {
				b.WriteString("Technologies: " + strings.Join(p.Technologies, ", ") + "\n")
			}
			if p.Link != "" {
				b.WriteString(p.Link + "\n")
			}
			b.WriteString("\n")
		}
	}

	if len(d.Certifications) > 0 {
		writeSection(&b, "CERTIFICATIONS")
		for _, c := range d.Certifications {
			line := c.Name
			if c.Issuer != "" {
				line += " - " + c.Issuer
			}
			if c.Date != "" {
				line += " (" + c.Date + ")"
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
	}

	if len(d.Languages) > 0 {
		writeSection(&b, "LANGUAGES")
		for _, l := range d.Languages {
			fmt.Fprintf(&b, "%s (%s)\n", l.Name, l.Proficiency)
		}
		b.WriteString("\n")
	}

	if len(d.Achievements) > 0 {
		writeSection(&b, "ACHIEVEMENTS")
		for _, a := range d.Achievements {
			b.WriteString(a.Title + "\n")
			if a.Description != "" {
				b.WriteString(a.Description + "\n")
			}
		}
		b.WriteString("\n")
	}

	if len(d.Interests) > 0 {
		writeSection(&b, "INTERESTS")
		names := make([]string, 0, len(d.Interests))
		for _, i := range d.Interests {
			names = append(names, i.Name)
		}
		b.WriteString(strings.Join(names, ", ") + "\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeSection(b *strings.Builder, title string) {
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("-", 30) + "\n")
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
