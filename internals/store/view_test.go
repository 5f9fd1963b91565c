package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginateSevenRowsPageSizeFive(t *testing.T) {
	records := seedRecords(7)

	page1, info := Paginate(records, 1, 5)
	require.Len(t, page1, 5)
	assert.Equal(t, 2, info.TotalPages)
	assert.True(t, info.HasNext)
	assert.False(t, info.HasPrev)

	page2, info := Paginate(records, 2, 5)
	require.Len(t, page2, 2)
	assert.Equal(t, "rec-006", page2[0].ID)
	assert.False(t, info.HasNext)
	assert.True(t, info.HasPrev)
}

func TestPageClampsAfterShrink(t *testing.T) {
	// skenario: satu-satunya record di halaman 2 dihapus
	records := seedRecords(6)
	_, info := Paginate(records, 2, 5)
	require.Equal(t, 2, info.Page)

	shrunk := records[:5]
	items, info := Paginate(shrunk, 2, 5)
	assert.Equal(t, 1, info.Page, "out-of-range page clamps backward")
	assert.Len(t, items, 5)
}

func TestEmptySequenceStaysOnPageOne(t *testing.T) {
	items, info := Paginate([]testRecord{}, 3, 5)
	assert.Empty(t, items)
	assert.Equal(t, 1, info.Page)
	assert.Equal(t, 1, info.TotalPages)
	assert.Equal(t, 0, info.Total)
}

func TestPageInvariantHoldsForAllInputs(t *testing.T) {
	for total := 0; total <= 12; total++ {
		records := seedRecords(total)
		for page := -1; page <= 6; page++ {
			_, info := Paginate(records, page, 5)
			maxPage := (total + 4) / 5
			if maxPage < 1 {
				maxPage = 1
			}
			assert.GreaterOrEqual(t, info.Page, 1)
			assert.LessOrEqual(t, info.Page, maxPage)
		}
	}
}

func TestSortByDoesNotMutateInput(t *testing.T) {
	records := seedRecords(4)
	sorted := SortBy(records, func(a, b testRecord) bool { return a.ID > b.ID })

	assert.Equal(t, "rec-004", sorted[0].ID)
	assert.Equal(t, "rec-001", records[0].ID, "input order untouched")
}
