package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"workout-api/internal/apperr"
	"workout-api/internal/domain"
)

// TrainingCenterRepo represents training center repository.
type TrainingCenterRepo struct{ db *pgxpool.Pool }

// NewTrainingCenterRepo creates a new TrainingCenterRepo.
func NewTrainingCenterRepo(db *pgxpool.Pool) *TrainingCenterRepo {
	return &TrainingCenterRepo{db: db}
}

// Get - returns training center by its ID.
func (r *TrainingCenterRepo) Get(ctx context.Context, id uuid.UUID) (*domain.TrainingCenter, error) {
	var tc domain.TrainingCenter
	err := r.db.QueryRow(ctx,
		`SELECT id, nome, endereco, proprietario FROM centros_treinamento WHERE id=$1`, id,
	).Scan(&tc.ID, &tc.Nome, &tc.Endereco, &tc.Proprietario)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get training center %s: %w", id, err)
	}
	return &tc, nil
}

// List returns one page of training centers in insertion order. A filter with
// a non-nil Nome restricts the page to exact name matches.
func (r *TrainingCenterRepo) List(ctx context.Context, f domain.TrainingCenterFilter, limit, offset int) ([]domain.TrainingCenter, error) {
	q := `SELECT id, nome, endereco, proprietario FROM centros_treinamento`
	args := make([]any, 0, 3)
	if f.Nome != nil {
		args = append(args, *f.Nome)
		q += fmt.Sprintf(" WHERE nome=$%d", len(args))
	}
	q += " ORDER BY pk_id"

	args = append(args, limit)
	q += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, offset)
	q += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list training centers: %w", err)
	}
	defer rows.Close()

	capacity := 0
	if limit > 0 {
		capacity = limit
	}
	out := make([]domain.TrainingCenter, 0, capacity)
	for rows.Next() {
		var tc domain.TrainingCenter
		if err := rows.Scan(&tc.ID, &tc.Nome, &tc.Endereco, &tc.Proprietario); err != nil {
			return nil, err
		}
		out = append(out, tc)
	}
	return out, rows.Err()
}

// Count returns the number of training centers matching the filter.
func (r *TrainingCenterRepo) Count(ctx context.Context, f domain.TrainingCenterFilter) (int64, error) {
	q := `SELECT COUNT(*) FROM centros_treinamento`
	args := make([]any, 0, 1)
	if f.Nome != nil {
		args = append(args, *f.Nome)
		q += fmt.Sprintf(" WHERE nome=$%d", len(args))
	}

	var total int64
	if err := r.db.QueryRow(ctx, q, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count training centers: %w", err)
	}
	return total, nil
}

// Create - persists a new training center.
func (r *TrainingCenterRepo) Create(ctx context.Context, tc *domain.TrainingCenter) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO centros_treinamento(id, nome, endereco, proprietario) VALUES($1,$2,$3,$4)`,
		tc.ID, tc.Nome, tc.Endereco, tc.Proprietario)
	if err != nil {
		if IsDuplicate(err) {
			return apperr.ErrConflict
		}
		return fmt.Errorf("create training center: %w", err)
	}
	return nil
}

// UpdatePartial applies a partial update and returns the stored record as it
// is after the update. Returns nil when no row matches the id.
func (r *TrainingCenterRepo) UpdatePartial(ctx context.Context, u domain.PartialTrainingCenterUpdate) (*domain.TrainingCenter, error) {
	var tc domain.TrainingCenter
	err := r.db.QueryRow(ctx, `
        UPDATE centros_treinamento
        SET
            nome         = COALESCE($2, nome),
            endereco     = COALESCE($3, endereco),
            proprietario = COALESCE($4, proprietario),
            updated_at   = now()
        WHERE id = $1
        RETURNING id, nome, endereco, proprietario
    `, u.ID, u.Nome, u.Endereco, u.Proprietario).
		Scan(&tc.ID, &tc.Nome, &tc.Endereco, &tc.Proprietario)

	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		if IsDuplicate(err) {
			return nil, apperr.ErrConflict
		}
		return nil, fmt.Errorf("update training center %s: %w", u.ID, err)
	}
	return &tc, nil
}

// Delete removes a training center and returns true if a row was deleted.
func (r *TrainingCenterRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	ct, err := r.db.Exec(ctx, `DELETE FROM centros_treinamento WHERE id=$1`, id)
	if err != nil {
		return false, fmt.Errorf("delete training center %s: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}
