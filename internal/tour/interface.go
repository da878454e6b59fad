package tour

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Tour CRUD
	List(ctx context.Context, input ListInput) (ListOutput, error)
	TopCheap(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, id string) (DetailOutput, error)
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, id string) error
	UploadImages(ctx context.Context, input UploadImagesInput) (UpdateOutput, error)

	// Aggregations
	Stats(ctx context.Context) (StatsOutput, error)
	MonthlyPlan(ctx context.Context, year int) (MonthlyPlanOutput, error)

	// Geospatial
	Within(ctx context.Context, input WithinInput) (WithinOutput, error)
	Distances(ctx context.Context, input DistancesInput) (DistancesOutput, error)
}
