// Package patterns extracts a formatting fingerprint from raw resume text.
package patterns

import (
	"regexp"
	"sort"
	"strings"
)

// sectionPattern pairs a canonical section name with the heading regex that
// detects it. The catalogue is an explicit ordered table so it can be swapped
// or extended without touching the scoring logic.
type sectionPattern struct {
	Name    string
	Pattern *regexp.Regexp
}

// Canonical section names, in catalogue order.
const (
	SectionContact        = "Contact"
	SectionSummary        = "Summary"
	SectionExperience     = "Experience"
	SectionEducation      = "Education"
	SectionSkills         = "Skills"
	SectionProjects       = "Projects"
	SectionCertifications = "Certifications"
	SectionAwards         = "Awards"
	SectionPublications   = "Publications"
	SectionVolunteer      = "Volunteer"
)

// sectionCatalogue matches a trimmed whole line, anchored and case-insensitive.
var sectionCatalogue = []sectionPattern{
	{SectionContact, regexp.MustCompile(`(?i)^(contact|contact information)$`)},
	{SectionSummary, regexp.MustCompile(`(?i)^(summary|professional summary|profile|objective|about( me)?)$`)},
	{SectionExperience, regexp.MustCompile(`(?i)^((work |professional |relevant )?experience|employment( history)?|work history)$`)},
	{SectionEducation, regexp.MustCompile(`(?i)^(education|academic background|qualifications)$`)},
	{SectionSkills, regexp.MustCompile(`(?i)^((technical |core |key )?skills|competencies|technologies)$`)},
	{SectionProjects, regexp.MustCompile(`(?i)^((personal |side |selected )?projects)$`)},
	{SectionCertifications, regexp.MustCompile(`(?i)^(certifications?|certificates|licenses( and certifications)?)$`)},
	{SectionAwards, regexp.MustCompile(`(?i)^(awards|honors( and awards)?|achievements)$`)},
	{SectionPublications, regexp.MustCompile(`(?i)^(publications?)$`)},
	{SectionVolunteer, regexp.MustCompile(`(?i)^(volunteer( work| experience)?|volunteering|community involvement)$`)},
}

// CanonicalSections returns the catalogue's canonical section names in
// catalogue order. The returned slice is a copy.
func CanonicalSections() []string {
	names := make([]string, 0, len(sectionCatalogue))
	for _, entry := range sectionCatalogue {
		names = append(names, entry.Name)
	}
	return names
}

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`(\+?\d{1,2}[\s.-]?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`)
)

// maxHeadingLength guards against long ALL-CAPS sentences being misread as
// headings. Lines longer than this are never classified as section headings.
const maxHeadingLength = 50

// detectedSection is a canonical section with the line index where it first appeared.
type detectedSection struct {
	Name string
	Line int
}

// matchSectionHeading returns the canonical section name for a line, or "".
// The line must match a catalogue entry as a trimmed whole line.
func matchSectionHeading(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) > maxHeadingLength {
		return ""
	}
	for _, entry := range sectionCatalogue {
		if entry.Pattern.MatchString(trimmed) {
			return entry.Name
		}
	}
	return ""
}

// detectSections scans lines for canonical section headings. The first match
// per canonical name wins; later duplicates are ignored. If no explicit
// Contact heading is found, the first 5 lines are inspected for an email or
// phone number and a leading Contact entry is synthesized.
func detectSections(lines []string) []detectedSection {
	seen := make(map[string]bool, len(sectionCatalogue))
	var sections []detectedSection

	for i, line := range lines {
		name := matchSectionHeading(line)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		sections = append(sections, detectedSection{Name: name, Line: i})
	}

	if !seen[SectionContact] {
		limit := len(lines)
		if limit > 5 {
			limit = 5
		}
		for i := 0; i < limit; i++ {
			if emailPattern.MatchString(lines[i]) || phonePattern.MatchString(lines[i]) {
				sections = append(sections, detectedSection{Name: SectionContact, Line: i})
				break
			}
		}
	}

	// Final order = first line of appearance.
	sort.SliceStable(sections, func(a, b int) bool {
		return sections[a].Line < sections[b].Line
	})

	return sections
}

// sectionOrder flattens detected sections into their canonical names.
func sectionOrder(sections []detectedSection) []string {
	order := make([]string, 0, len(sections))
	for _, s := range sections {
		order = append(order, s.Name)
	}
	return order
}
