package directory

import (
	"sync"

	"github.com/founderhub/founderhub/internal/models"
)

// View is the stateful directory a single viewer pages through: current
// criteria plus current page. Changing any criterion re-filters from the
// unfiltered source and snaps the page back to 1; without the reset a
// shrunken result set would leave the viewer on an out-of-range page.
type View[T any, C comparable] struct {
	mu       sync.Mutex
	source   func() []T
	filter   func([]T, C) []T
	criteria C
	page     int
	pageSize int
}

// NewView builds a directory view over a snapshot provider.
func NewView[T any, C comparable](source func() []T, filter func([]T, C) []T, pageSize int) *View[T, C] {
	return &View[T, C]{
		source:   source,
		filter:   filter,
		page:     1,
		pageSize: pageSize,
	}
}

// Apply installs new criteria. The page resets to 1 only when the criteria
// actually changed, so paging with unchanged filters stays where it is.
func (v *View[T, C]) Apply(criteria C) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if criteria != v.criteria {
		v.criteria = criteria
		v.page = 1
	}
}

// SetPage moves to the requested page, clamped to [1, totalPages] of the
// current filtered result.
func (v *View[T, C]) SetPage(page int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if page < 1 {
		page = 1
	}
	filtered := v.filter(v.source(), v.criteria)
	if p := Paginate(filtered, v.pageSize, 1); page > p.TotalPages {
		page = p.TotalPages
	}
	v.page = page
}

// Current re-filters the source and returns the visible page. The page is
// clamped down if the source shrank underneath the stored page number.
func (v *View[T, C]) Current() Page[T] {
	v.mu.Lock()
	defer v.mu.Unlock()

	filtered := v.filter(v.source(), v.criteria)
	page := Paginate(filtered, v.pageSize, v.page)
	if v.page > page.TotalPages {
		v.page = page.TotalPages
		page = Paginate(filtered, v.pageSize, v.page)
	}
	return page
}

// Criteria returns the criteria currently applied.
func (v *View[T, C]) Criteria() C {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.criteria
}

// NewFoundersView wires a View over the users snapshot with the founder
// filter pass.
func NewFoundersView(source func() []models.User, pageSize int) *View[models.User, FounderCriteria] {
	return NewView(source, FilterFounders, pageSize)
}

// NewBusinessesView wires a View over the derived businesses with the
// business filter pass. Derivation runs on every read so mutations to the
// user collection surface immediately.
func NewBusinessesView(source func() []models.User, pageSize int) *View[models.Business, BusinessCriteria] {
	derived := func() []models.Business { return DeriveBusinesses(source()) }
	return NewView(derived, FilterBusinesses, pageSize)
}
