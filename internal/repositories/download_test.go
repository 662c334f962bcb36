package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/avdeev-dev/portfolio-api/internal/models"
)

func TestDownloadWriteRepository_Save(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewDownloadWriteRepository(sqlxDB)

	event := models.DownloadEventDB{
		EventID:   uuid.New(),
		Document:  "resume",
		Source:    "hero-button",
		Referrer:  "https://example.com/",
		IPAddress: "203.0.113.7",
		UserAgent: "curl/8.0",
	}

	mock.ExpectExec(`INSERT INTO download_events`).
		WithArgs(event.EventID, event.Document, event.Source, event.Referrer, event.IPAddress, event.UserAgent).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Save(context.Background(), event))
	assert.NoError(t, mock.ExpectationsWereMet())
}
