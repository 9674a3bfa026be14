package adjustment

import "context"

type Repository interface {
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	Update(ctx context.Context, req Request) error
	List(ctx context.Context, filter Filter) ([]Request, int64, error)
}
