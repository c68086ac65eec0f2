package character

import (
	"characterdex/internal/domain/character"
)

type listInput struct {
	Page        int    `query:"page" default:"1" minimum:"1" maximum:"1000000" doc:"Номер страницы"`
	Limit       int    `query:"limit" default:"20" minimum:"1" maximum:"1000" doc:"Размер страницы"`
	Search      string `query:"search" doc:"Подстрока имени без учета регистра"`
	Filter      string `query:"filter" default:"all" doc:"all, films или tvShows: только персонажи с непустым списком"`
	FilterType  string `query:"filterType" doc:"films или tvShows, вместе с filterTitle"`
	FilterTitle string `query:"filterTitle" doc:"Точное название фильма или сериала"`
}

func (in *listInput) query() character.Query {
	return character.Query{
		Search:      in.Search,
		Filter:      in.Filter,
		FilterType:  character.MediaType(in.FilterType),
		FilterTitle: in.FilterTitle,
		Page:        in.Page,
		Limit:       in.Limit,
	}
}

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Data []map[string]any `json:"data"`
	Meta character.Meta   `json:"meta"`
}

type idInput struct {
	ID int `path:"id" doc:"Идентификатор персонажа"`
}

type createInput struct {
	Body map[string]any
}

type updateInput struct {
	ID   int `path:"id" doc:"Идентификатор персонажа"`
	Body map[string]any
}

// characterOutput - документ персонажа плоским объектом {id, ...поля}.
type characterOutput struct {
	Body map[string]any
}

type deleteOutput struct {
	Body struct {
		Success bool `json:"success"`
	}
}

func withSuccess(c character.Character) map[string]any {
	out := c.Fields()
	out["success"] = true
	return out
}
