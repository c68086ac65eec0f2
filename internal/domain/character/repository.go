package character

import "context"

type Repository interface {
	All(ctx context.Context) ([]StoredDocument, error)
	Get(ctx context.Context, id int) (StoredDocument, error)
	Create(ctx context.Context, data string) (int, error)
	Update(ctx context.Context, id int, data string) error
	Delete(ctx context.Context, id int) error
}
