package directory

// Page is one visible slice of a filtered collection.
type Page[T any] struct {
	Items      []T
	Number     int
	TotalPages int
}

// Paginate slices items into the requested page. TotalPages is at least 1
// even for an empty collection, because the views render an empty state
// rather than zero pages. Out-of-range pages yield an empty item slice.
func Paginate[T any](items []T, pageSize, page int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}

	totalPages := (len(items) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start < 0 || start >= len(items) {
		return Page[T]{Items: []T{}, Number: page, TotalPages: totalPages}
	}
	if end > len(items) {
		end = len(items)
	}

	return Page[T]{Items: items[start:end], Number: page, TotalPages: totalPages}
}
