package position

import "context"

type PositionRepository interface {
	Create(ctx context.Context, p *Position) error
	GetByID(ctx context.Context, id string) (Position, error)
	List(ctx context.Context, activeOnly bool) ([]Position, error)
	Update(ctx context.Context, p *Position) error
	Delete(ctx context.Context, id string) error
}
