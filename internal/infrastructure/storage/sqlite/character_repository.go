package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"characterdex/internal/domain/character"

	"golang.org/x/exp/slog"
)

type CharacterRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewCharacterRepository(db *Storage, log *slog.Logger) *CharacterRepository {
	return &CharacterRepository{
		db:  db,
		log: log,
	}
}

// All возвращает строки таблицы data в порядке хранения. id объявлен как
// INTEGER PRIMARY KEY и совпадает с rowid, поэтому ORDER BY id дает тот же
// порядок, что и обход таблицы, и фиксирует его явно.
func (r *CharacterRepository) All(ctx context.Context) ([]character.StoredDocument, error) {
	rows, err := r.db.db.QueryContext(ctx, `SELECT id, data FROM data ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query characters: %w", err)
	}
	defer rows.Close()

	var out []character.StoredDocument
	for rows.Next() {
		var (
			doc  character.StoredDocument
			data sql.NullString
		)
		if err := rows.Scan(&doc.ID, &data); err != nil {
			return nil, fmt.Errorf("scan character: %w", err)
		}
		doc.Data = data.String
		out = append(out, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate characters: %w", err)
	}
	return out, nil
}

func (r *CharacterRepository) Get(ctx context.Context, id int) (character.StoredDocument, error) {
	var data sql.NullString
	err := r.db.db.QueryRowContext(ctx, `SELECT data FROM data WHERE id = ?`, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return character.StoredDocument{}, character.ErrNotFound
	}
	if err != nil {
		return character.StoredDocument{}, fmt.Errorf("get character %d: %w", id, err)
	}
	return character.StoredDocument{ID: id, Data: data.String}, nil
}

func (r *CharacterRepository) Create(ctx context.Context, data string) (int, error) {
	res, err := r.db.db.ExecContext(ctx, `INSERT INTO data (data) VALUES (?)`, data)
	if err != nil {
		return 0, fmt.Errorf("insert character: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert character: %w", err)
	}
	return int(id), nil
}

func (r *CharacterRepository) Update(ctx context.Context, id int, data string) error {
	res, err := r.db.db.ExecContext(ctx, `UPDATE data SET data = ? WHERE id = ?`, data, id)
	if err != nil {
		return fmt.Errorf("update character %d: %w", id, err)
	}
	return expectOneRow(res, character.ErrNotFound)
}

func (r *CharacterRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.db.ExecContext(ctx, `DELETE FROM data WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete character %d: %w", id, err)
	}
	return expectOneRow(res, character.ErrNotFound)
}

func expectOneRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
