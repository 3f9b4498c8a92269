package query

// State is a stateful browse session over the engine. Every filter, search,
// or sort change snaps the page back to 1; only SetPage moves within the
// current result set.
type State struct {
	params Params
}

// NewState returns a session positioned at page 1 with no filters.
func NewState() *State {
	return &State{params: Params{Page: 1}}
}

// Params returns the current query parameters.
func (s *State) Params() Params {
	return s.params
}

// SetSection switches the starting derived view and resets the page.
func (s *State) SetSection(section string) {
	s.params.Section = section
	s.params.Page = 1
}

// SetSearch replaces the free-text query and resets the page.
func (s *State) SetSearch(query string) {
	s.params.Search = query
	s.params.Page = 1
}

// SetCategory replaces the category filter and resets the page.
func (s *State) SetCategory(category string) {
	s.params.Category = category
	s.params.Page = 1
}

// SetPriceRange replaces the price bucket and resets the page.
func (s *State) SetPriceRange(bucket string) {
	s.params.PriceRange = bucket
	s.params.Page = 1
}

// SetSortBy replaces the sort key and resets the page.
func (s *State) SetSortBy(sortBy string) {
	s.params.SortBy = sortBy
	s.params.Page = 1
}

// SetPerPage replaces the page size and resets the page.
func (s *State) SetPerPage(perPage int) {
	s.params.PerPage = perPage
	s.params.Page = 1
}

// SetPage moves to the given 1-based page; values below 1 are ignored.
func (s *State) SetPage(page int) {
	if page < 1 {
		return
	}
	s.params.Page = page
}
