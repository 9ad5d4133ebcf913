package trainingcenter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"workout-api/internal/apperr"
	"workout-api/internal/domain"
	"workout-api/internal/logx"
	"workout-api/internal/pagination"
)

// Service coordinates training center business logic and orchestrates repository calls.
type Service struct {
	repo             trainingCenterRepository
	operationTimeout time.Duration
	logger           logx.Logger
}

// NewService creates and configures a training center Service.
func NewService(r trainingCenterRepository, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, operationTimeout: timeout, logger: logger}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// validateCreate validates a training center for creation.
func validateCreate(tc *domain.TrainingCenter) error {
	if tc == nil {
		return apperr.ErrInvalid
	}
	if !domain.ValidNome(tc.Nome) {
		return apperr.ErrInvalid
	}
	if !domain.ValidEndereco(tc.Endereco) {
		return apperr.ErrInvalid
	}
	if !domain.ValidProprietario(tc.Proprietario) {
		return apperr.ErrInvalid
	}
	return nil
}

func validateUpdate(u *domain.PartialTrainingCenterUpdate) error {
	if u.ID == uuid.Nil {
		return apperr.ErrInvalid
	}
	if u.Nome == nil && u.Endereco == nil && u.Proprietario == nil {
		return apperr.ErrInvalid
	}
	if u.Nome != nil && !domain.ValidNome(*u.Nome) {
		return apperr.ErrInvalid
	}
	if u.Endereco != nil && !domain.ValidEndereco(*u.Endereco) {
		return apperr.ErrInvalid
	}
	if u.Proprietario != nil && !domain.ValidProprietario(*u.Proprietario) {
		return apperr.ErrInvalid
	}
	return nil
}

// Get retrieves a training center by its ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.TrainingCenter, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	tc, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if tc == nil {
		return nil, apperr.ErrNotFound
	}
	return tc, nil
}

// List returns one page of training centers with an optional exact nome filter.
func (s *Service) List(ctx context.Context, f domain.TrainingCenterFilter, p pagination.Params) (pagination.Page[domain.TrainingCenter], error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	items, err := s.repo.List(ctx, f, p.Limit, p.Offset)
	if err != nil {
		return pagination.Page[domain.TrainingCenter]{}, err
	}
	total, err := s.repo.Count(ctx, f)
	if err != nil {
		return pagination.Page[domain.TrainingCenter]{}, err
	}
	return pagination.NewPage(items, total, p), nil
}

// Create persists a new training center and returns its generated ID.
func (s *Service) Create(ctx context.Context, tc *domain.TrainingCenter) (uuid.UUID, error) {
	if err := validateCreate(tc); err != nil {
		return uuid.Nil, err
	}
	tc.ID = uuid.New()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.repo.Create(ctx, tc); err != nil {
		return uuid.Nil, err
	}

	s.logger.Info("training center created",
		logx.String("event", "training_center_created"),
		logx.String("id", tc.ID.String()),
		logx.String("nome", tc.Nome),
	)

	return tc.ID, nil
}

// UpdatePartial applies a partial update and returns the record as stored after it.
func (s *Service) UpdatePartial(ctx context.Context, u domain.PartialTrainingCenterUpdate) (*domain.TrainingCenter, error) {
	if err := validateUpdate(&u); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	tc, err := s.repo.UpdatePartial(ctx, u)
	if err != nil {
		return nil, err
	}
	if tc == nil {
		return nil, apperr.ErrNotFound
	}
	return tc, nil
}

// Delete removes a training center by its ID.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrNotFound
	}

	s.logger.Info("training center deleted",
		logx.String("event", "training_center_deleted"),
		logx.String("id", id.String()),
	)

	return nil
}
