package handlers

import (
	"github.com/google/uuid"

	"workout-api/internal/domain"
	"workout-api/internal/pagination"
)

func (req createTrainingCenterRequest) toModel() *domain.TrainingCenter {
	return &domain.TrainingCenter{
		Nome:         req.Nome,
		Endereco:     req.Endereco,
		Proprietario: req.Proprietario,
	}
}

func (req updateTrainingCenterRequest) toModel(id uuid.UUID) domain.PartialTrainingCenterUpdate {
	return domain.PartialTrainingCenterUpdate{
		ID:           id,
		Nome:         req.Nome,
		Endereco:     req.Endereco,
		Proprietario: req.Proprietario,
	}
}

func modelToResponse(tc domain.TrainingCenter) trainingCenterDTO {
	return trainingCenterDTO{
		ID:           tc.ID,
		Nome:         tc.Nome,
		Endereco:     tc.Endereco,
		Proprietario: tc.Proprietario,
	}
}

func pageToResponse(page pagination.Page[domain.TrainingCenter]) trainingCenterPageResponse {
	items := make([]trainingCenterDTO, 0, len(page.Items))
	for _, tc := range page.Items {
		items = append(items, modelToResponse(tc))
	}
	return trainingCenterPageResponse{
		Items:  items,
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}
}
