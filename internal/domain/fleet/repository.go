package fleet

import "context"

type Repository interface {
	Upsert(ctx context.Context, v *Vehicle) error
	FindByID(ctx context.Context, vehicleID string) (*Vehicle, error)
	List(ctx context.Context) ([]Vehicle, error)
	Exists(ctx context.Context, vehicleID string) (bool, error)
}
