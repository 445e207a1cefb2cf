package analysis

import "strings"

// Section keywords used to decide whether uploaded text reads like a
// resume. Core words carry the sections almost every resume has; the
// secondary list covers common variants.
var (
	coreSections      = []string{"education", "skills", "experience", "projects"}
	secondarySections = []string{"about", "languages", "summary", "contact", "objective", "profile"}
)

const minSectionHits = 2

// LooksLikeResume reports whether the text contains at least two distinct
// section keywords. Matching is case-insensitive substring search, so
// headings like "EDUCATION" or "Work Experience" both count.
func LooksLikeResume(text string) bool {
	lower := strings.ToLower(text)
	hits := 0
	for _, kw := range coreSections {
		if strings.Contains(lower, kw) {
			hits++
			if hits >= minSectionHits {
				return true
			}
		}
	}
	for _, kw := range secondarySections {
		if strings.Contains(lower, kw) {
			hits++
			if hits >= minSectionHits {
				return true
			}
		}
	}
	return false
}

// ExpectedSections lists the core keywords, for use in rejection messages.
func ExpectedSections() []string {
	out := make([]string, len(coreSections))
	copy(out, coreSections)
	return out
}
