package character

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20

	// Значения грубого фильтра (legacy).
	FilterAll = "all"
)

// Query - параметры выборки списка персонажей.
type Query struct {
	Search      string
	Filter      string
	FilterType  MediaType
	FilterTitle string
	Page        int
	Limit       int
}

type Meta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

type Page struct {
	Data []Character
	Meta Meta
}

func (q Query) normalized() Query {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	return q
}

// Paginate фильтрует персонажей по запросу и вырезает страницу.
// Порядок элементов сохраняется таким, каким его отдало хранилище.
func Paginate(all []Character, q Query) Page {
	q = q.normalized()

	filtered := all
	if q.Search != "" {
		// Caser хранит состояние, поэтому свой на каждый вызов.
		lower := cases.Lower(language.Und)
		needle := lower.String(q.Search)
		filtered = keep(filtered, func(c Character) bool {
			return strings.Contains(lower.String(c.Doc.Name()), needle)
		})
	}

	switch {
	case q.FilterType != "" && q.FilterTitle != "":
		if q.FilterType.Valid() {
			filtered = keep(filtered, func(c Character) bool {
				return contains(c.Doc.Titles(q.FilterType), q.FilterTitle)
			})
		}
	case q.Filter != "" && q.Filter != FilterAll:
		if t := MediaType(q.Filter); t.Valid() {
			filtered = keep(filtered, func(c Character) bool {
				return len(c.Doc.Titles(t)) > 0
			})
		}
	}

	total := len(filtered)
	data := []Character{}

	// Сравнение до умножения: (page-1)*limit может переполнить int.
	if total > 0 && q.Page-1 <= (total-1)/q.Limit {
		start := (q.Page - 1) * q.Limit
		end := total
		if total-start > q.Limit {
			end = start + q.Limit
		}
		data = filtered[start:end]
	}

	return Page{
		Data: data,
		Meta: Meta{
			Total:      total,
			Page:       q.Page,
			Limit:      q.Limit,
			TotalPages: TotalPages(total, q.Limit),
		},
	}
}

// TotalPages = ceil(total / limit).
func TotalPages(total, limit int) int {
	if limit < 1 || total < 1 {
		return 0
	}
	return (total-1)/limit + 1
}

func keep(in []Character, pred func(Character) bool) []Character {
	out := make([]Character, 0, len(in))
	for _, c := range in {
		if pred(c) {
			out = append(out, c)
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
