package importer

import (
	"fmt"
	"regexp"
	"strings"
)

const TargetTable = "data"

type LineKind int

const (
	LineSkip LineKind = iota
	LineSchema
	LineInsert
)

// Tuple - одна строка из многострочного INSERT дампа.
type Tuple struct {
	ID   string
	JSON string
}

// Statement возвращает однострочный INSERT для целевой таблицы.
func (t Tuple) Statement() string {
	return fmt.Sprintf("INSERT INTO %s (id, data) VALUES (%s, '%s')",
		TargetTable, t.ID, strings.ReplaceAll(t.JSON, "'", "''"))
}

// Line - результат разбора одной физической строки дампа.
type Line struct {
	Kind   LineKind
	Schema string
	Tuples []Tuple
}

var (
	autoIncrementPK = regexp.MustCompile(`(?i)\bINT(?:\(\d+\))?\s+UNSIGNED\s+(?:NOT\s+NULL\s+)?(?:PRIMARY\s+KEY\s+AUTO_INCREMENT|AUTO_INCREMENT\s+PRIMARY\s+KEY)`)
	jsonType        = regexp.MustCompile(`(?i)\bJSON\b`)
	characterSet    = regexp.MustCompile(`(?i)\s*CHARACTER SET [a-z0-9_]+`)
	collate         = regexp.MustCompile(`(?i)\s*COLLATE[ =][a-z0-9_]+`)
	engine          = regexp.MustCompile(`(?i)\s*ENGINE=[a-z0-9_]+`)
	defaultCharset  = regexp.MustCompile(`(?i)\s*DEFAULT CHARSET=[a-z0-9_]+`)

	insertTuple = regexp.MustCompile(`\((\d+),\s*'((?:[^'\\]|\\.|'')*)'\)`)

	sourceUnescaper = strings.NewReplacer(`\'`, `'`, `\"`, `"`, `\\`, `\`)
)

// ParseLine классифицирует строку дампа и переводит ее в диалект SQLite.
// Один логический оператор должен помещаться в одну физическую строку.
func ParseLine(raw string) Line {
	sql := strings.TrimSpace(raw)

	if sql == "" || strings.HasPrefix(sql, "--") || strings.HasPrefix(sql, "/*") {
		return Line{Kind: LineSkip}
	}

	if strings.HasPrefix(sql, "INSERT INTO") {
		return Line{Kind: LineInsert, Tuples: ExtractTuples(sql)}
	}

	switch {
	case strings.Contains(sql, "CREATE TABLE"):
		return Line{Kind: LineSchema, Schema: RewriteCreateTable(sql)}
	case strings.Contains(sql, "DROP TABLE"):
		return Line{Kind: LineSchema, Schema: sql}
	}

	return Line{Kind: LineSkip}
}

// RewriteCreateTable заменяет MySQL-специфичные конструкции на эквиваленты SQLite.
func RewriteCreateTable(sql string) string {
	sql = autoIncrementPK.ReplaceAllString(sql, "INTEGER PRIMARY KEY AUTOINCREMENT")
	sql = jsonType.ReplaceAllString(sql, "TEXT")
	sql = characterSet.ReplaceAllString(sql, "")
	sql = collate.ReplaceAllString(sql, "")
	sql = engine.ReplaceAllString(sql, "")
	sql = defaultCharset.ReplaceAllString(sql, "")
	return sql
}

// ExtractTuples достает пары (id, 'json') из INSERT и снимает MySQL-экранирование.
func ExtractTuples(sql string) []Tuple {
	matches := insertTuple.FindAllStringSubmatch(sql, -1)
	tuples := make([]Tuple, 0, len(matches))
	for _, m := range matches {
		tuples = append(tuples, Tuple{ID: m[1], JSON: UnescapeSource(m[2])})
	}
	return tuples
}

// UnescapeSource снимает экранирование MySQL: \' -> ', \" -> ", \\ -> \.
func UnescapeSource(s string) string {
	return sourceUnescaper.Replace(s)
}
