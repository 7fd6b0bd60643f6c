package repository

import (
	"context"
	"fmt"

	"uncle-nomad/internal/data/entity"
	"uncle-nomad/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TourRepository interface {
	FindAll(ctx context.Context) ([]*entity.Tour, error)
	FindByID(ctx context.Context, id int64) (*entity.Tour, error)
}

type tourRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTourRepository(db database.PgxIface, log *zap.Logger) TourRepository {
	return &tourRepository{
		db:  db,
		log: log.With(zap.String("repository", "tour")),
	}
}

func (r *tourRepository) FindAll(ctx context.Context) ([]*entity.Tour, error) {
	query := `
		SELECT id, name, description, price, capacity, duration_days, created_at
		FROM tours
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list tours", zap.Error(err))
		return nil, fmt.Errorf("list tours: %w", err)
	}
	defer rows.Close()

	var tours []*entity.Tour
	for rows.Next() {
		var tour entity.Tour
		err := rows.Scan(
			&tour.ID,
			&tour.Name,
			&tour.Description,
			&tour.Price,
			&tour.Capacity,
			&tour.DurationDays,
			&tour.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan tour row", zap.Error(err))
			return nil, fmt.Errorf("scan tour row: %w", err)
		}
		tours = append(tours, &tour)
	}

	return tours, nil
}

func (r *tourRepository) FindByID(ctx context.Context, id int64) (*entity.Tour, error) {
	query := `
		SELECT id, name, description, price, capacity, duration_days, created_at
		FROM tours
		WHERE id = $1
	`

	var tour entity.Tour
	err := r.db.QueryRow(ctx, query, id).Scan(
		&tour.ID,
		&tour.Name,
		&tour.Description,
		&tour.Price,
		&tour.Capacity,
		&tour.DurationDays,
		&tour.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find tour by ID",
			zap.Error(err),
			zap.Int64("tour_id", id),
		)
		return nil, fmt.Errorf("find tour by ID %d: %w", id, err)
	}

	return &tour, nil
}
