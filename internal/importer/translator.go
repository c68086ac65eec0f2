package importer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/exp/slog"
)

const (
	DefaultBatchSize     = 1000
	DefaultProgressEvery = 1000
)

// Target - хранилище, в которое льется дамп.
type Target interface {
	// Exec выполняет одиночный оператор вне пакета.
	Exec(ctx context.Context, stmt string) error
	// ExecBatch выполняет операторы в одной транзакции. Ошибка отдельного оператора
	// не откатывает остальные: результат возвращается по каждому оператору.
	// Общая ошибка означает, что транзакцию не удалось начать или закоммитить.
	ExecBatch(ctx context.Context, stmts []string) ([]error, error)
	Count(ctx context.Context, table string) (int, error)
}

type Translator struct {
	target        Target
	fs            afero.Fs
	log           *slog.Logger
	batchSize     int
	progressEvery int
	progress      func(lines int)
}

type Option func(*Translator)

func WithFs(fs afero.Fs) Option {
	return func(t *Translator) {
		t.fs = fs
	}
}

func WithBatchSize(n int) Option {
	return func(t *Translator) {
		if n > 0 {
			t.batchSize = n
		}
	}
}

// WithProgress вызывает fn каждые every обработанных строк.
func WithProgress(every int, fn func(lines int)) Option {
	return func(t *Translator) {
		if every > 0 {
			t.progressEvery = every
		}
		t.progress = fn
	}
}

func New(target Target, log *slog.Logger, opts ...Option) *Translator {
	t := &Translator{
		target:        target,
		fs:            afero.NewOsFs(),
		log:           log.With(slog.String("component", "dump_translator")),
		batchSize:     DefaultBatchSize,
		progressEvery: DefaultProgressEvery,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// ImportFile открывает дамп и импортирует его. Отсутствие файла - PreconditionError.
func (t *Translator) ImportFile(ctx context.Context, path string) (*Report, error) {
	f, err := t.fs.Open(path)
	if err != nil {
		return nil, &PreconditionError{Resource: path, Err: err}
	}
	defer f.Close()

	t.log.Info("importing dump", slog.String("path", path))
	return t.Import(ctx, f)
}

type pendingTuple struct {
	line int
	id   string
}

// Import читает дамп построчно. DDL выполняется сразу, кортежи INSERT копятся
// в пакет и сбрасываются транзакцией по достижении batchSize.
func (t *Translator) Import(ctx context.Context, r io.Reader) (*Report, error) {
	report := &Report{RowCount: -1}

	var (
		stmts []string
		meta  []pendingTuple
	)

	flush := func() error {
		if len(stmts) == 0 {
			return nil
		}
		if err := t.flush(ctx, report, stmts, meta); err != nil {
			return err
		}
		stmts = stmts[:0]
		meta = meta[:0]
		return nil
	}

	reader := bufio.NewReader(r)
	for {
		raw, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return report, fmt.Errorf("read dump: %w", readErr)
		}
		if raw == "" && readErr != nil {
			break
		}

		report.Lines++
		line := ParseLine(strings.TrimRight(raw, "\r\n"))

		switch line.Kind {
		case LineSchema:
			if err := t.target.Exec(ctx, line.Schema); err != nil {
				t.log.Warn("schema statement failed",
					slog.Int("line", report.Lines),
					slog.String("error", err.Error()),
				)
				report.SchemaFailures = append(report.SchemaFailures, SchemaFailure{
					Line:      report.Lines,
					Statement: line.Schema,
					Err:       err,
				})
			} else {
				report.SchemaApplied++
			}
		case LineInsert:
			for _, tuple := range line.Tuples {
				stmts = append(stmts, tuple.Statement())
				meta = append(meta, pendingTuple{line: report.Lines, id: tuple.ID})
				report.Tuples++

				if len(stmts) >= t.batchSize {
					if err := flush(); err != nil {
						return report, err
					}
				}
			}
		}

		if t.progress != nil && report.Lines%t.progressEvery == 0 {
			t.progress(report.Lines)
		}

		if readErr != nil {
			break
		}
	}

	if err := flush(); err != nil {
		return report, err
	}

	count, err := t.target.Count(ctx, TargetTable)
	if err != nil {
		t.log.Warn("could not verify row count", slog.String("error", err.Error()))
		report.CountErr = err
	} else {
		report.RowCount = count
	}

	t.log.Info("dump imported",
		slog.Int("lines", report.Lines),
		slog.Int("inserted", report.Inserted),
		slog.Int("skipped", len(report.Skipped)),
		slog.Int("schema_failures", len(report.SchemaFailures)),
		slog.Int("rows", report.RowCount),
	)

	return report, nil
}

func (t *Translator) flush(ctx context.Context, report *Report, stmts []string, meta []pendingTuple) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	results, err := t.target.ExecBatch(ctx, stmts)
	if err != nil {
		return fmt.Errorf("execute batch %d: %w", report.Batches+1, err)
	}
	report.Batches++

	for i, stmtErr := range results {
		if stmtErr == nil {
			report.Inserted++
			continue
		}
		report.Skipped = append(report.Skipped, Skipped{
			Line: meta[i].line,
			ID:   meta[i].id,
			Err:  stmtErr,
		})
	}

	t.log.Debug("batch committed", slog.Int("batch", report.Batches), slog.Int("size", len(stmts)))
	return nil
}
