package character

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chars(n int) []Character {
	out := make([]Character, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, Character{ID: i, Doc: Document{FieldName: fmt.Sprintf("Character %d", i)}})
	}
	return out
}

func corpus() []Character {
	return []Character{
		{ID: 1, Doc: Document{FieldName: "Mickey Mouse", FieldFilms: []any{"Fantasia"}, FieldTVShows: []any{"House of Mouse"}}},
		{ID: 2, Doc: Document{FieldName: "Scrooge McDuck", FieldTVShows: []any{"DuckTales"}}},
		{ID: 3, Doc: Document{FieldName: "Elsa", FieldFilms: []any{"Frozen", "Frozen II"}}},
		{ID: 4, Doc: Document{FieldName: "Anna", FieldFilms: []any{"Frozen"}, FieldTVShows: []any{}}},
		{ID: 5, Doc: Document{FieldImage: "x.png"}},
	}
}

func ids(cs []Character) []int {
	out := make([]int, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ID)
	}
	return out
}

func TestPaginate_ThirdPage(t *testing.T) {
	page := Paginate(chars(23), Query{Page: 3, Limit: 10})

	assert.Equal(t, []int{21, 22, 23}, ids(page.Data))
	assert.Equal(t, Meta{Total: 23, Page: 3, Limit: 10, TotalPages: 3}, page.Meta)
}

func TestPaginate_PageBeyondLast(t *testing.T) {
	page := Paginate(chars(23), Query{Page: 7, Limit: 10})

	require.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.Equal(t, 23, page.Meta.Total)
	assert.Equal(t, 3, page.Meta.TotalPages)
}

func TestPaginate_HugePageOrLimit(t *testing.T) {
	tests := []struct {
		name      string
		query     Query
		wantIDs   []int
		wantPages int
	}{
		{name: "max page", query: Query{Page: math.MaxInt64, Limit: 20}, wantIDs: []int{}, wantPages: 2},
		{name: "max page and limit", query: Query{Page: math.MaxInt64, Limit: math.MaxInt64}, wantIDs: []int{}, wantPages: 1},
		{name: "max limit third page", query: Query{Page: 3, Limit: math.MaxInt64}, wantIDs: []int{}, wantPages: 1},
		{name: "max limit first page", query: Query{Page: 1, Limit: math.MaxInt64}, wantIDs: ids(chars(23)), wantPages: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var page Page
			require.NotPanics(t, func() { page = Paginate(chars(23), tt.query) })

			require.NotNil(t, page.Data)
			assert.Equal(t, tt.wantIDs, ids(page.Data))
			assert.Equal(t, 23, page.Meta.Total)
			assert.Equal(t, tt.wantPages, page.Meta.TotalPages)
		})
	}
}

func TestPaginate_Defaults(t *testing.T) {
	page := Paginate(chars(45), Query{})

	assert.Len(t, page.Data, DefaultLimit)
	assert.Equal(t, DefaultPage, page.Meta.Page)
	assert.Equal(t, DefaultLimit, page.Meta.Limit)
	assert.Equal(t, 3, page.Meta.TotalPages)
}

func TestTotalPages(t *testing.T) {
	for total := 0; total <= 50; total++ {
		for limit := 1; limit <= 12; limit++ {
			want := total / limit
			if total%limit != 0 {
				want++
			}
			assert.Equal(t, want, TotalPages(total, limit), "total=%d limit=%d", total, limit)
		}
	}
}

func TestPaginate_SearchIsCaseInsensitive(t *testing.T) {
	for _, term := range []string{"mickey", "MOUSE", "key mo"} {
		t.Run(term, func(t *testing.T) {
			page := Paginate(corpus(), Query{Search: term})
			assert.Equal(t, []int{1}, ids(page.Data))
			assert.Equal(t, 1, page.Meta.Total)
		})
	}
}

func TestPaginate_SearchSkipsNamelessRecords(t *testing.T) {
	page := Paginate(corpus(), Query{Search: "png"})
	assert.Empty(t, page.Data)
}

func TestPaginate_ExactTitle(t *testing.T) {
	page := Paginate(corpus(), Query{FilterType: MediaTVShows, FilterTitle: "DuckTales"})

	assert.Equal(t, []int{2}, ids(page.Data))
	assert.Equal(t, 1, page.Meta.Total)
}

func TestPaginate_ExactTitleTakesPrecedence(t *testing.T) {
	page := Paginate(corpus(), Query{Filter: "tvShows", FilterType: MediaFilms, FilterTitle: "Frozen"})
	assert.Equal(t, []int{3, 4}, ids(page.Data))
}

func TestPaginate_UnknownFilterTypeDoesNotFilter(t *testing.T) {
	page := Paginate(corpus(), Query{Filter: "films", FilterType: "shorts", FilterTitle: "Frozen"})
	assert.Len(t, page.Data, 5)
}

func TestPaginate_CoarseFilter(t *testing.T) {
	tests := []struct {
		filter string
		want   []int
	}{
		{filter: "films", want: []int{1, 3, 4}},
		{filter: "tvShows", want: []int{1, 2}},
		{filter: "all", want: []int{1, 2, 3, 4, 5}},
		{filter: "", want: []int{1, 2, 3, 4, 5}},
		{filter: "bogus", want: []int{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			page := Paginate(corpus(), Query{Filter: tt.filter})
			assert.Equal(t, tt.want, ids(page.Data))
		})
	}
}

func TestPaginate_ExactIsSubsetOfCoarse(t *testing.T) {
	all := corpus()
	for _, mt := range []MediaType{MediaFilms, MediaTVShows} {
		coarse := ids(Paginate(all, Query{Filter: string(mt), Limit: 100}).Data)
		for _, title := range []string{"Frozen", "Frozen II", "Fantasia", "DuckTales", "House of Mouse"} {
			exact := Paginate(all, Query{FilterType: mt, FilterTitle: title, Limit: 100}).Data
			for _, c := range exact {
				assert.Contains(t, coarse, c.ID)
			}
		}
	}
}

func TestPaginate_DoesNotMutateInput(t *testing.T) {
	all := corpus()
	_ = Paginate(all, Query{Search: "elsa", Filter: "films"})
	assert.Len(t, all, 5)
	assert.Equal(t, 1, all[0].ID)
}
