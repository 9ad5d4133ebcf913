package handlers

import (
	"context"

	"github.com/google/uuid"

	"workout-api/internal/domain"
	"workout-api/internal/pagination"
	"workout-api/internal/service/trainingcenter"
)

type trainingCenterUsecase interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.TrainingCenter, error)
	List(ctx context.Context, f domain.TrainingCenterFilter, p pagination.Params) (pagination.Page[domain.TrainingCenter], error)
	Create(ctx context.Context, tc *domain.TrainingCenter) (uuid.UUID, error)
	UpdatePartial(ctx context.Context, u domain.PartialTrainingCenterUpdate) (*domain.TrainingCenter, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewTrainingCenterUsecase wires a training center Service into a trainingCenterUsecase.
func NewTrainingCenterUsecase(svc *trainingcenter.Service) trainingCenterUsecase {
	return svc
}
