package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"forecast-inference-service/internal/core/domain"
	output "forecast-inference-service/internal/core/ports/output"
)

type predictionLogRepo struct {
	pool *pgxpool.Pool
}

// NewPredictionLogRepository creates a new PredictionLogRepository
func NewPredictionLogRepository(pool *pgxpool.Pool) output.PredictionLogRepository {
	return &predictionLogRepo{pool: pool}
}

func (r *predictionLogRepo) Insert(ctx context.Context, record *domain.PredictionRecord) error {
	query := `
		INSERT INTO prediction_log
			(id, request_id, item_id, model_name, model_version, forecast_start, horizon, latency_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		record.ID, record.RequestID, record.ItemID,
		record.ModelName, record.ModelVersion,
		record.ForecastStart, record.Horizon,
		record.LatencyMillis, record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert prediction record: %w", err)
	}
	return nil
}

func (r *predictionLogRepo) ListRecent(ctx context.Context, limit int) ([]*domain.PredictionRecord, error) {
	query := `
		SELECT id, request_id, item_id, model_name, model_version,
		       forecast_start, horizon, latency_ms, created_at
		FROM prediction_log
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list prediction records: %w", err)
	}
	defer rows.Close()

	var records []*domain.PredictionRecord
	for rows.Next() {
		var record domain.PredictionRecord
		if err := rows.Scan(
			&record.ID, &record.RequestID, &record.ItemID,
			&record.ModelName, &record.ModelVersion,
			&record.ForecastStart, &record.Horizon,
			&record.LatencyMillis, &record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan prediction record: %w", err)
		}
		records = append(records, &record)
	}
	return records, rows.Err()
}
