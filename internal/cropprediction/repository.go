package cropprediction

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/lib/pq"
)

type Repository interface {
	Create(ctx context.Context, p *CropPrediction) error
	GetAll(ctx context.Context) ([]CropPrediction, error)
	GetByID(ctx context.Context, id uint) (CropPrediction, error)
	Update(ctx context.Context, p *CropPrediction) error
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *CropPrediction) error {
	crops, err := json.Marshal(p.RecommendedCrops)
	if err != nil {
		return err
	}

	return r.db.QueryRowContext(ctx,
		`INSERT INTO crop_predictions
			(soil_ph, water_availability, season, soil_type, growing_period,
			 recommended_crops, description, fertilizers)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		p.SoilPh, p.WaterAvailability, p.Season, p.SoilType, p.GrowingPeriod,
		crops, p.Description, pq.Array(p.Fertilizers),
	).Scan(&p.ID, &p.CreatedAt)
}

const predictionColumns = `id, soil_ph, water_availability, season, soil_type,
	growing_period, recommended_crops, COALESCE(description, ''), fertilizers, created_at`

func scanPrediction(row interface{ Scan(...interface{}) error }) (CropPrediction, error) {
	var p CropPrediction
	var crops []byte
	err := row.Scan(
		&p.ID, &p.SoilPh, &p.WaterAvailability, &p.Season, &p.SoilType,
		&p.GrowingPeriod, &crops, &p.Description,
		pq.Array(&p.Fertilizers), &p.CreatedAt,
	)
	if err != nil {
		return CropPrediction{}, err
	}
	if len(crops) > 0 {
		if err := json.Unmarshal(crops, &p.RecommendedCrops); err != nil {
			return CropPrediction{}, err
		}
	}
	if p.Fertilizers == nil {
		p.Fertilizers = []string{}
	}
	return p, nil
}

func (r *repository) GetAll(ctx context.Context) ([]CropPrediction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+predictionColumns+` FROM crop_predictions ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	predictions := []CropPrediction{}
	for rows.Next() {
		p, err := scanPrediction(rows)
		if err != nil {
			return nil, err
		}
		predictions = append(predictions, p)
	}
	return predictions, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id uint) (CropPrediction, error) {
	p, err := scanPrediction(r.db.QueryRowContext(ctx,
		`SELECT `+predictionColumns+` FROM crop_predictions WHERE id = $1`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return CropPrediction{}, ErrNotFound
	}
	return p, err
}

func (r *repository) Update(ctx context.Context, p *CropPrediction) error {
	crops, err := json.Marshal(p.RecommendedCrops)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE crop_predictions SET
			soil_ph = $1, water_availability = $2, season = $3, soil_type = $4,
			growing_period = $5, recommended_crops = $6, description = $7, fertilizers = $8
		 WHERE id = $9`,
		p.SoilPh, p.WaterAvailability, p.Season, p.SoilType, p.GrowingPeriod,
		crops, p.Description, pq.Array(p.Fertilizers), p.ID,
	)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM crop_predictions WHERE id = $1`, id)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
