package character

import (
	"golang.org/x/exp/slices"
)

type MediaType string

const (
	MediaFilms   MediaType = "films"
	MediaTVShows MediaType = "tvShows"
	MediaAll     MediaType = "all"
)

// Valid сообщает, указывает ли тип на конкретный список (films или tvShows).
func (t MediaType) Valid() bool {
	return t == MediaFilms || t == MediaTVShows
}

// Media - отсортированные уникальные названия фильмов и сериалов.
type Media struct {
	Films   []string
	TVShows []string
}

// DistinctMedia собирает все уникальные films и tvShows за один проход.
func DistinctMedia(all []Character) Media {
	films := make(map[string]struct{})
	shows := make(map[string]struct{})

	for _, c := range all {
		for _, f := range c.Doc.Films() {
			films[f] = struct{}{}
		}
		for _, s := range c.Doc.TVShows() {
			shows[s] = struct{}{}
		}
	}

	return Media{
		Films:   sortedKeys(films),
		TVShows: sortedKeys(shows),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
