package character

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const dataURIPrefix = "data:"

// Prepare проверяет документ перед записью и приводит films/tvShows к
// каноничному виду: обрезанные пробелы, без пустых строк и повторов.
func Prepare(doc Document) (Document, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: empty body", ErrInvalidInput)
	}

	out := make(Document, len(doc))
	for k, v := range doc {
		if k == FieldID {
			continue
		}
		out[k] = v
	}

	name, ok := out[FieldName].(string)
	if !ok || strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	for _, key := range []string{FieldFilms, FieldTVShows} {
		v, present := out[key]
		if !present || v == nil {
			continue
		}
		list, err := normalizeTitles(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidInput, key, err)
		}
		out[key] = list
	}

	if img, ok := out[FieldImage].(string); ok {
		if err := validateImage(img); err != nil {
			return nil, fmt.Errorf("%w: image: %v", ErrInvalidInput, err)
		}
	}

	return out, nil
}

func normalizeTitles(v any) ([]string, error) {
	var raw []string
	switch list := v.(type) {
	case []string:
		raw = list
	case []any:
		raw = make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected string, got %T", item)
			}
			raw = append(raw, s)
		}
	case string:
		// форма админки присылает список через запятую
		raw = strings.Split(list, ",")
	default:
		return nil, fmt.Errorf("expected list of strings, got %T", v)
	}

	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out, nil
}

// validateImage пропускает обычные URL, а data-URI проверяет на то,
// что внутри действительно картинка.
func validateImage(img string) error {
	if !strings.HasPrefix(img, dataURIPrefix) {
		return nil
	}

	header, payload, ok := strings.Cut(img[len(dataURIPrefix):], ",")
	if !ok {
		return fmt.Errorf("malformed data URI")
	}
	if !strings.HasSuffix(header, ";base64") {
		return fmt.Errorf("data URI must be base64 encoded")
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return fmt.Errorf("invalid base64 payload: %w", err)
	}

	mime := mimetype.Detect(raw)
	if !strings.HasPrefix(mime.String(), "image/") {
		return fmt.Errorf("unsupported content type %s", mime.String())
	}
	return nil
}
