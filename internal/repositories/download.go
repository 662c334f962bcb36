package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/avdeev-dev/portfolio-api/internal/logger"
	"github.com/avdeev-dev/portfolio-api/internal/models"
)

// DownloadWriteRepository appends analytics events. There is no read
// side: events are consumed downstream from the Kafka topic.
type DownloadWriteRepository struct {
	db *sqlx.DB
}

func NewDownloadWriteRepository(db *sqlx.DB) *DownloadWriteRepository {
	return &DownloadWriteRepository{db: db}
}

// Save inserts one download event row.
func (r *DownloadWriteRepository) Save(ctx context.Context, e models.DownloadEventDB) error {
	const query = `
		INSERT INTO download_events (event_id, document, source, referrer,
		                             ip_address, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`
	args := []any{e.EventID, e.Document, e.Source, e.Referrer, e.IPAddress, e.UserAgent}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Debugw("query executed",
		"query", squash(query),
		"args", args,
		"error", err,
	)

	return err
}
