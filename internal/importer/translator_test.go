package importer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type fakeTarget struct {
	schema   []string
	batches  [][]string
	rows     int
	failIDs  map[string]bool
	failDDL  bool
	countErr error
}

func (f *fakeTarget) Exec(_ context.Context, stmt string) error {
	if f.failDDL {
		return errors.New("table already exists")
	}
	f.schema = append(f.schema, stmt)
	return nil
}

func (f *fakeTarget) ExecBatch(_ context.Context, stmts []string) ([]error, error) {
	batch := append([]string(nil), stmts...)
	f.batches = append(f.batches, batch)

	results := make([]error, len(stmts))
	for i, stmt := range stmts {
		for id := range f.failIDs {
			if strings.Contains(stmt, fmt.Sprintf("VALUES (%s,", id)) {
				results[i] = errors.New("UNIQUE constraint failed: data.id")
			}
		}
		if results[i] == nil {
			f.rows++
		}
	}
	return results, nil
}

func (f *fakeTarget) Count(_ context.Context, _ string) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.rows, nil
}

func dump(inserts ...string) string {
	lines := []string{
		"-- MySQL dump",
		"/*!40101 SET NAMES utf8mb4 */;",
		"DROP TABLE IF EXISTS `data`;",
		"CREATE TABLE `data` (`id` INT UNSIGNED PRIMARY KEY AUTO_INCREMENT, `data` JSON) ENGINE=InnoDB;",
		"",
	}
	lines = append(lines, inserts...)
	return strings.Join(lines, "\n") + "\n"
}

func TestTranslator_Import(t *testing.T) {
	target := &fakeTarget{}
	tr := New(target, slog.Default())

	report, err := tr.Import(context.Background(), strings.NewReader(dump(
		`INSERT INTO data VALUES (1,'{"name":"Elsa"}'),(2,'{"name":"Anna"}');`,
		`INSERT INTO data VALUES (3,'{"name":"Olaf"}');`,
	)))
	require.NoError(t, err)

	require.Len(t, target.schema, 2)
	assert.Equal(t, "DROP TABLE IF EXISTS `data`;", target.schema[0])
	assert.Contains(t, target.schema[1], "INTEGER PRIMARY KEY AUTOINCREMENT")

	require.Len(t, target.batches, 1)
	assert.Equal(t, []string{
		`INSERT INTO data (id, data) VALUES (1, '{"name":"Elsa"}')`,
		`INSERT INTO data (id, data) VALUES (2, '{"name":"Anna"}')`,
		`INSERT INTO data (id, data) VALUES (3, '{"name":"Olaf"}')`,
	}, target.batches[0])

	assert.Equal(t, 7, report.Lines)
	assert.Equal(t, 2, report.SchemaApplied)
	assert.Equal(t, 3, report.Tuples)
	assert.Equal(t, 3, report.Inserted)
	assert.Equal(t, 3, report.RowCount)
	assert.Equal(t, 1, report.Batches)
	assert.Empty(t, report.Skipped)
}

func TestTranslator_Batching(t *testing.T) {
	var inserts []string
	for i := 1; i <= 25; i++ {
		inserts = append(inserts, fmt.Sprintf(`INSERT INTO data VALUES (%d,'{"name":"c%d"}');`, i, i))
	}

	target := &fakeTarget{}
	tr := New(target, slog.Default(), WithBatchSize(10))

	report, err := tr.Import(context.Background(), strings.NewReader(dump(inserts...)))
	require.NoError(t, err)

	require.Len(t, target.batches, 3)
	assert.Len(t, target.batches[0], 10)
	assert.Len(t, target.batches[1], 10)
	assert.Len(t, target.batches[2], 5)
	assert.Equal(t, 25, report.RowCount)
	assert.Equal(t, report.Tuples, report.RowCount)
}

func TestTranslator_SkipsFailingTuples(t *testing.T) {
	target := &fakeTarget{failIDs: map[string]bool{"2": true}}
	tr := New(target, slog.Default())

	report, err := tr.Import(context.Background(), strings.NewReader(dump(
		`INSERT INTO data VALUES (1,'{"name":"Elsa"}'),(2,'{"name":"Anna"}'),(3,'{"name":"Olaf"}');`,
	)))
	require.NoError(t, err)

	assert.Equal(t, 2, report.Inserted)
	require.Len(t, report.Skipped, 1)
	assert.Equal(t, "2", report.Skipped[0].ID)
	assert.Equal(t, 6, report.Skipped[0].Line)
	assert.ErrorContains(t, report.Skipped[0].Err, "UNIQUE")
	assert.Equal(t, 2, report.RowCount)
}

func TestTranslator_SchemaFailureIsNotFatal(t *testing.T) {
	target := &fakeTarget{failDDL: true}
	tr := New(target, slog.Default())

	report, err := tr.Import(context.Background(), strings.NewReader(dump(
		`INSERT INTO data VALUES (1,'{"name":"Elsa"}');`,
	)))
	require.NoError(t, err)

	assert.Len(t, report.SchemaFailures, 2)
	assert.Equal(t, 0, report.SchemaApplied)
	assert.Equal(t, 1, report.Inserted)
}

func TestTranslator_CountFailureIsNotFatal(t *testing.T) {
	target := &fakeTarget{countErr: errors.New("no such table: data")}
	tr := New(target, slog.Default())

	report, err := tr.Import(context.Background(), strings.NewReader(dump()))
	require.NoError(t, err)
	assert.Equal(t, -1, report.RowCount)
	assert.Error(t, report.CountErr)
}

func TestTranslator_Progress(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 2500; i++ {
		b.WriteString("-- filler\n")
	}

	var calls []int
	tr := New(&fakeTarget{}, slog.Default(), WithProgress(1000, func(lines int) {
		calls = append(calls, lines)
	}))

	report, err := tr.Import(context.Background(), strings.NewReader(b.String()))
	require.NoError(t, err)
	assert.Equal(t, 2500, report.Lines)
	assert.Equal(t, []int{1000, 2000}, calls)
}

func TestTranslator_LongLineWithoutTrailingNewline(t *testing.T) {
	var tuples []string
	for i := 1; i <= 3000; i++ {
		tuples = append(tuples, fmt.Sprintf(`(%d,'{"name":"%s"}')`, i, strings.Repeat("x", 40)))
	}
	line := "INSERT INTO data VALUES " + strings.Join(tuples, ",") + ";"

	target := &fakeTarget{}
	report, err := New(target, slog.Default()).Import(context.Background(), strings.NewReader(line))
	require.NoError(t, err)

	assert.Equal(t, 1, report.Lines)
	assert.Equal(t, 3000, report.Inserted)
	assert.Len(t, target.batches, 3)
}

func TestTranslator_ImportFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/dumps/chars.sql", []byte(dump(
		`INSERT INTO data VALUES (1,'{"name":"Elsa"}'),(2,'{"name":"Anna"}');`,
	)), 0o644))

	target := &fakeTarget{}
	tr := New(target, slog.Default(), WithFs(fs))

	report, err := tr.ImportFile(context.Background(), "/dumps/chars.sql")
	require.NoError(t, err)
	assert.Equal(t, 2, report.RowCount)
}

func TestTranslator_ImportFile_Missing(t *testing.T) {
	tr := New(&fakeTarget{}, slog.Default(), WithFs(afero.NewMemMapFs()))

	_, err := tr.ImportFile(context.Background(), "/nope.sql")

	var precondition *PreconditionError
	require.ErrorAs(t, err, &precondition)
	assert.Equal(t, "/nope.sql", precondition.Resource)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestTranslator_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(&fakeTarget{}, slog.Default()).Import(ctx, strings.NewReader(dump(
		`INSERT INTO data VALUES (1,'{"name":"Elsa"}');`,
	)))
	assert.ErrorIs(t, err, context.Canceled)
}
