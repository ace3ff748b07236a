package portfolio

import (
	"time"

	"github.com/hamzabelkadi/portfolio-api/internal/domain/contact"
	"github.com/hamzabelkadi/portfolio-api/internal/domain/education"
	"github.com/hamzabelkadi/portfolio-api/internal/domain/experience"
	"github.com/hamzabelkadi/portfolio-api/internal/domain/project"
	"github.com/hamzabelkadi/portfolio-api/internal/domain/skills"
	"github.com/hamzabelkadi/portfolio-api/internal/domain/social"
	"github.com/hamzabelkadi/portfolio-api/internal/domain/user"
)

// Fallbacks for profile fields the page renders unconditionally.
const (
	DefaultName  = "Belkadi Hamza"
	DefaultTitle = "Full Stack Developer & AI Enthusiast"
	DefaultImage = "https://i.ibb.co/xqfTHp3X/hero.jpg"
	DefaultEmail = "hamzabelkadi25@gmail.com"
	DefaultPhone = "+212 679-084-271"

	OngoingMarker = "Present"
)

// BuildView assembles the public portfolio view from the stored records.
// Inputs may be nil or empty; the view always carries empty slices rather
// than nulls.
func BuildView(
	owner *user.User,
	edu []education.Education,
	cats []skills.SkillCategory,
	exps []experience.Experience,
	projs []project.Project,
	contacts []contact.ContactInfo,
	links []social.SocialLink,
) View {
	heroLinks := SocialLinks(links)

	return View{
		Hero: Hero{
			Name:        fallback(owner.FullName, DefaultName),
			Title:       fallback(owner.Bio, DefaultTitle),
			Image:       fallback(owner.ImageURL, DefaultImage),
			SocialLinks: heroLinks,
		},
		Education:  EducationEntries(edu),
		Skills:     SkillsSection{Categories: SkillGroups(cats)},
		Experience: ExperienceEntries(exps),
		Projects:   ProjectCards(projs),
		Contact: Contact{
			Email:       fallback(owner.Email, DefaultEmail),
			Phone:       PhoneOrDefault(contacts),
			SocialLinks: heroLinks,
		},
	}
}

func EducationEntries(in []education.Education) []EducationEntry {
	out := make([]EducationEntry, 0, len(in))
	for _, e := range in {
		out = append(out, EducationEntry{
			Degree:      e.Degree,
			School:      e.School,
			Period:      yearPeriod(e.StartDate, e.EndDate, e.Current),
			Description: e.Description,
			Current:     e.Current,
		})
	}
	return out
}

func ExperienceEntries(in []experience.Experience) []ExperienceEntry {
	out := make([]ExperienceEntry, 0, len(in))
	for _, e := range in {
		desc := e.Tasks
		if desc == nil {
			desc = []string{}
		}
		out = append(out, ExperienceEntry{
			Title:       e.Title,
			Company:     e.Company,
			Period:      monthPeriod(e.StartDate, e.EndDate, e.Current),
			Description: desc,
		})
	}
	return out
}

func ProjectCards(in []project.Project) []ProjectCard {
	out := make([]ProjectCard, 0, len(in))
	for _, p := range in {
		stack := p.Stack
		if stack == nil {
			stack = []string{}
		}
		out = append(out, ProjectCard{
			Name:        p.Name,
			Description: p.Description,
			Stack:       stack,
			Category:    p.Category,
			Icon:        p.Icon,
			Link:        p.Link,
			ImageURL:    p.ImageURL,
		})
	}
	return out
}

func SkillGroups(in []skills.SkillCategory) []SkillGroup {
	out := make([]SkillGroup, 0, len(in))
	for _, c := range in {
		group := SkillGroup{Title: c.Title, Icon: c.Icon, Skills: make([]SkillLevel, 0, len(c.Skills))}
		for _, s := range c.Skills {
			group.Skills = append(group.Skills, SkillLevel{Name: s.Name, Level: s.Level})
		}
		out = append(out, group)
	}
	return out
}

func SocialLinks(in []social.SocialLink) []Link {
	out := make([]Link, 0, len(in))
	for _, l := range in {
		out = append(out, Link{Name: l.PlatformName, URL: l.URL, Icon: l.Icon})
	}
	return out
}

// PhoneOrDefault takes the first contact record's phone. The collection
// holds at most one meaningful entry.
func PhoneOrDefault(contacts []contact.ContactInfo) string {
	for _, c := range contacts {
		if c.Phone != "" {
			return c.Phone
		}
	}
	return DefaultPhone
}

// FilterByCategory is the category-tab filter over an already built list.
// An empty or "all" category returns the input unchanged.
func FilterByCategory(cards []ProjectCard, category string) []ProjectCard {
	if category == "" || category == "all" {
		return cards
	}
	out := make([]ProjectCard, 0, len(cards))
	for _, c := range cards {
		if c.Category == category {
			out = append(out, c)
		}
	}
	return out
}

// yearPeriod renders "2019 – 2023"; ongoing entries always end with the
// marker, even when an end date is stored.
func yearPeriod(start, end string, current bool) string {
	s := yearOf(start)
	if current {
		return s + " – " + OngoingMarker
	}
	return s + " – " + yearOf(end)
}

// monthPeriod renders "January 2020 – March 2022".
func monthPeriod(start, end string, current bool) string {
	s := monthYearOf(start)
	if current {
		return s + " – " + OngoingMarker
	}
	return s + " – " + monthYearOf(end)
}

func yearOf(isoDate string) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return t.Format("2006")
}

func monthYearOf(isoDate string) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return t.Format("January 2006")
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
