package character

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context, q Query) (Page, error)
	Media(ctx context.Context) (Media, error)
	Find(ctx context.Context, id int) (Character, error)
	Create(ctx context.Context, doc Document) (Character, error)
	Update(ctx context.Context, id int, doc Document) (Character, error)
	Delete(ctx context.Context, id int) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With(slog.String("component", "character_service")),
	}
}

// List читает всю таблицу и применяет фильтры в памяти.
func (s *Service) List(ctx context.Context, q Query) (Page, error) {
	all, err := s.loadAll(ctx)
	if err != nil {
		return Page{}, err
	}
	return Paginate(all, q), nil
}

func (s *Service) Media(ctx context.Context) (Media, error) {
	all, err := s.loadAll(ctx)
	if err != nil {
		return Media{}, err
	}
	return DistinctMedia(all), nil
}

func (s *Service) loadAll(ctx context.Context) ([]Character, error) {
	rows, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load characters: %w", err)
	}

	all, err := DecodeAll(rows)
	if err != nil {
		s.log.Error("stored document is malformed", slog.String("error", err.Error()))
		return nil, err
	}
	return all, nil
}

func (s *Service) Find(ctx context.Context, id int) (Character, error) {
	row, err := s.repo.Get(ctx, id)
	if err != nil {
		return Character{}, err
	}
	return Decode(row)
}

func (s *Service) Create(ctx context.Context, doc Document) (Character, error) {
	doc, err := Prepare(doc)
	if err != nil {
		s.log.Debug("create rejected", slog.String("error", err.Error()))
		return Character{}, err
	}

	data, err := doc.Encode()
	if err != nil {
		return Character{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	id, err := s.repo.Create(ctx, data)
	if err != nil {
		return Character{}, fmt.Errorf("create character: %w", err)
	}

	s.log.Info("character created", slog.Int("id", id), slog.String("name", doc.Name()))
	return Character{ID: id, Doc: doc}, nil
}

// Update полностью заменяет документ персонажа.
func (s *Service) Update(ctx context.Context, id int, doc Document) (Character, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return Character{}, err
	}

	doc, err := Prepare(doc)
	if err != nil {
		return Character{}, err
	}

	data, err := doc.Encode()
	if err != nil {
		return Character{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.repo.Update(ctx, id, data); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Character{}, err
		}
		return Character{}, fmt.Errorf("update character %d: %w", id, err)
	}

	s.log.Info("character updated", slog.Int("id", id))
	return Character{ID: id, Doc: doc}, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("character deleted", slog.Int("id", id))
	return nil
}
