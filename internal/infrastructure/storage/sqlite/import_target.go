package sqlite

import (
	"context"
	"fmt"
	"strings"
)

// Exec выполняет DDL из дампа вне транзакции.
func (s *Storage) Exec(ctx context.Context, stmt string) error {
	_, err := s.db.ExecContext(ctx, stmt)
	return err
}

// ExecBatch выполняет операторы одной транзакцией. Упавший оператор SQLite
// откатывает только себя, остальные коммитятся.
func (s *Storage) ExecBatch(ctx context.Context, stmts []string) ([]error, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin batch: %w", err)
	}

	results := make([]error, len(stmts))
	for i, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			results[i] = err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit batch: %w", err)
	}
	return results, nil
}

func (s *Storage) Count(ctx context.Context, table string) (int, error) {
	var n int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM "%s"`, strings.ReplaceAll(table, `"`, `""`))
	if err := s.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}
