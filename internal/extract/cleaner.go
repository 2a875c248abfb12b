package extract

import (
	"regexp"
	"strings"
)

// cleanRule is one boilerplate deletion applied to raw page text. Rules run
// in declaration order; each deletes every match of its pattern.
type cleanRule struct {
	name string
	re   *regexp.Regexp
}

// boilerplateRules is the fixed ordered table of page boilerplate removed
// before segmentation: URL-like tokens, "N / M" page-fraction markers, the
// source-brand footer line and its variants, trailing page markers, and the
// promotional line closing most recipe pages.
var boilerplateRules = []cleanRule{
	{name: "url", re: regexp.MustCompile(`(?i)http\S+`)},
	{name: "page_fraction", re: regexp.MustCompile(`\d{1,3}\s*/\s*\d{1,3}`)},
	{name: "brand_footer", re: regexp.MustCompile(`(?i)FYS\s*\|[^\n]*`)},
	{name: "brand_site", re: regexp.MustCompile(`(?i)www\.fys\.com\.ar`)},
	{name: "page_marker", re: regexp.MustCompile(`(?i)\s+Page\s+\d+`)},
	{name: "promo_line", re: regexp.MustCompile(`(?i)You can find more recipes and information at`)},
}

var blankRuns = regexp.MustCompile(`\n+`)

// CleanPage strips boilerplate from raw page text: every rule in the table is
// applied in order, then newline runs collapse to a single newline and the
// result is trimmed. Pure function of its input.
func CleanPage(text string) string {
	for _, rule := range boilerplateRules {
		text = rule.re.ReplaceAllString(text, "")
	}
	return strings.TrimSpace(blankRuns.ReplaceAllString(text, "\n"))
}
