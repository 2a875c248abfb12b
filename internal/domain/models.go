package domain

// RawPage is the cleaned text of a single source page. Pages exist only
// during corpus build and are discarded after segmentation.
type RawPage struct {
	PageNumber int
	Text       string
}

// Recipe is a structured recipe segmented from one source page. Instances
// are created once during corpus build and never mutated afterwards.
type Recipe struct {
	Title             string
	Ingredients       string
	Preparation       string
	DietaryConditions string // empty when the page carries no dietary note
	Author            string // empty when the page carries no attribution
}

// PageRange is a 1-based inclusive page interval of the source document.
type PageRange struct {
	Start int
	End   int
}

// Contains reports whether the given 1-based page number falls inside the range.
func (r PageRange) Contains(page int) bool {
	return page >= r.Start && page <= r.End
}
