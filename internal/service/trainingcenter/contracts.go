package trainingcenter

import (
	"context"

	"github.com/google/uuid"

	"workout-api/internal/domain"
)

// trainingCenterRepository defines storage operations required by the business layer.
type trainingCenterRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.TrainingCenter, error)
	List(ctx context.Context, f domain.TrainingCenterFilter, limit, offset int) ([]domain.TrainingCenter, error)
	Count(ctx context.Context, f domain.TrainingCenterFilter) (int64, error)
	Create(ctx context.Context, tc *domain.TrainingCenter) error
	UpdatePartial(ctx context.Context, u domain.PartialTrainingCenterUpdate) (*domain.TrainingCenter, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
