package season

import "context"

type Repository interface {
	Create(ctx context.Context, s Season) (Season, error)
	List(ctx context.Context) ([]Season, error)
	GetByID(ctx context.Context, id int64) (Season, bool, error)
}
