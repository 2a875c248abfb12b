// Package recipe segments cleaned page text into structured recipe records.
package recipe

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/recetario-ai/recetario/internal/domain"
)

// Segmenter splits cleaned page text into a structured Recipe. Marker order
// is fixed: the INGREDIENTS marker is located first, then PREPARATION within
// the remainder. A page missing either marker yields no recipe.
type Segmenter struct {
	ingredientsRe *regexp.Regexp
	preparationRe *regexp.Regexp
	dietaryRe     *regexp.Regexp
	authorRe      *regexp.Regexp
	authorLineRe  *regexp.Regexp
}

// NewSegmenter creates a segmenter with the recipe-book section markers.
func NewSegmenter() *Segmenter {
	return &Segmenter{
		ingredientsRe: regexp.MustCompile(`(?i)\bINGREDIENTS\b`),
		preparationRe: regexp.MustCompile(`(?i)\bPREPARATION\b`),
		dietaryRe:     regexp.MustCompile(`(?i)This recipe is suitable[^\n]*`),
		// The attribution label tolerates a gendered suffix.
		authorRe:     regexp.MustCompile(`(?i)\bAuthor(?:ess)?:\s*([^\n]*)`),
		authorLineRe: regexp.MustCompile(`(?i)\bAuthor(?:ess)?:[^\n]*`),
	}
}

// Segment turns cleaned page text into a Recipe. The second return value is
// false for pages that are not recipe pages (front matter, indexes, or any
// page missing the INGREDIENTS or PREPARATION marker). A returned Recipe
// always carries a non-empty title, ingredients, and preparation; the dietary
// and author fields are best-effort and empty when absent.
func (s *Segmenter) Segment(text string) (domain.Recipe, bool) {
	parts := s.ingredientsRe.Split(text, 2)
	if len(parts) < 2 {
		return domain.Recipe{}, false
	}

	subparts := s.preparationRe.Split(parts[1], 2)
	if len(subparts) < 2 {
		return domain.Recipe{}, false
	}

	ingredients := strings.TrimSpace(subparts[0])
	preparation := strings.TrimSpace(subparts[1])

	var dietary string
	if m := s.dietaryRe.FindString(preparation); m != "" {
		dietary = strings.TrimSpace(m)
		preparation = strings.TrimSpace(s.dietaryRe.ReplaceAllString(preparation, ""))
	}

	var author string
	if m := s.authorRe.FindStringSubmatch(text); m != nil {
		author = strings.TrimSpace(m[1])
		preparation = strings.TrimSpace(s.authorLineRe.ReplaceAllString(preparation, ""))
	}

	// The attribution often shares a line with the dietary note; keep the
	// fields separate.
	if loc := s.authorLineRe.FindStringIndex(dietary); loc != nil {
		dietary = strings.TrimSpace(dietary[:loc[0]])
	}

	title := normalizeTitle(parts[0])
	if title == "" || ingredients == "" || preparation == "" {
		return domain.Recipe{}, false
	}

	return domain.Recipe{
		Title:             title,
		Ingredients:       ingredients,
		Preparation:       preparation,
		DietaryConditions: dietary,
		Author:            author,
	}, true
}

// normalizeTitle collapses the header lines preceding the INGREDIENTS marker
// into a single title: blank lines dropped, repeated lines deduplicated in
// first-occurrence order (running headers repeat the recipe name), joined
// with single spaces and title-cased.
func normalizeTitle(source string) string {
	seen := make(map[string]struct{})
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(source), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		lines = append(lines, line)
	}
	return titleCase(strings.Join(lines, " "))
}

// titleCase upper-cases the first letter of every word and lower-cases the
// rest, the way the recipe book prints its titles.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		prevLetter = false
		b.WriteRune(r)
	}
	return b.String()
}
