package character

import (
	"encoding/json"
)

// Поля документа, которые понимает сервис. Остальные ключи хранятся как есть.
const (
	FieldName    = "name"
	FieldImage   = "image"
	FieldFilms   = "films"
	FieldTVShows = "tvShows"
	FieldURL     = "url"
	FieldID      = "id"
)

// Document - произвольный JSON-объект персонажа.
type Document map[string]any

// StoredDocument - строка таблицы data в сыром виде.
type StoredDocument struct {
	ID   int
	Data string
}

type Character struct {
	ID  int
	Doc Document
}

func (d Document) Name() string {
	s, _ := d[FieldName].(string)
	return s
}

func (d Document) Image() string {
	s, _ := d[FieldImage].(string)
	return s
}

func (d Document) Films() []string {
	return stringList(d[FieldFilms])
}

func (d Document) TVShows() []string {
	return stringList(d[FieldTVShows])
}

// Titles возвращает films или tvShows в зависимости от типа.
func (d Document) Titles(t MediaType) []string {
	switch t {
	case MediaFilms:
		return d.Films()
	case MediaTVShows:
		return d.TVShows()
	}
	return nil
}

func stringList(v any) []string {
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Encode сериализует документ для хранения. id в документ не пишется.
func (d Document) Encode() (string, error) {
	doc := make(Document, len(d))
	for k, v := range d {
		if k == FieldID {
			continue
		}
		doc[k] = v
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Decode разбирает сохраненный документ и присоединяет к нему id. Ошибка только
// для невалидного JSON и корня, который не объект: films/tvShows другой формы
// просто не дают названий.
func Decode(row StoredDocument) (Character, error) {
	var doc Document
	if err := json.Unmarshal([]byte(row.Data), &doc); err != nil {
		return Character{}, &DecodeError{ID: row.ID, Err: err}
	}
	if doc == nil {
		return Character{}, &DecodeError{ID: row.ID, Err: errNotObject}
	}
	return Character{ID: row.ID, Doc: doc}, nil
}

// DecodeAll декодирует все строки. Первая битая строка прерывает разбор.
func DecodeAll(rows []StoredDocument) ([]Character, error) {
	out := make([]Character, 0, len(rows))
	for _, row := range rows {
		c, err := Decode(row)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Fields отдает плоское представление {id, ...document} для ответа API.
func (c Character) Fields() map[string]any {
	out := make(map[string]any, len(c.Doc)+1)
	for k, v := range c.Doc {
		out[k] = v
	}
	out[FieldID] = c.ID
	return out
}
