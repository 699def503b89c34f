package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginateSlicesContiguously(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	first := Paginate(items, 3, 1)
	assert.Equal(t, []int{1, 2, 3}, first.Items)
	assert.Equal(t, 3, first.TotalPages)

	last := Paginate(items, 3, 3)
	assert.Equal(t, []int{7}, last.Items, "last page is clipped to bounds")
}

func TestPaginatePagesCoverCollectionExactly(t *testing.T) {
	for _, size := range []int{1, 2, 3, 6, 10} {
		items := make([]int, 17)
		p := Paginate(items, size, 1)

		total := 0
		for page := 1; page <= p.TotalPages; page++ {
			total += len(Paginate(items, size, page).Items)
		}
		require.Equal(t, len(items), total, "page size %d", size)
	}
}

func TestPaginateEmptyCollectionHasOnePage(t *testing.T) {
	p := Paginate([]int{}, 6, 1)

	assert.Equal(t, 1, p.TotalPages, "the UI renders an empty state, never zero pages")
	assert.Empty(t, p.Items)
}

func TestPaginateOutOfRangePageIsEmpty(t *testing.T) {
	items := []int{1, 2, 3}

	assert.Empty(t, Paginate(items, 2, 5).Items)
	assert.Empty(t, Paginate(items, 2, 0).Items)
	assert.Equal(t, 2, Paginate(items, 2, 5).TotalPages)
}
