package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/avdeev-dev/portfolio-api/internal/models"
)

var resumeColumns = []string{"resume_key", "payload", "created_at", "updated_at"}

func TestResumeRepository_Get(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewResumeRepository(sqlxDB)

	t.Run("found", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery(`SELECT resume_key, payload, .+\s+FROM resumes`).
			WithArgs(models.ResumeKey).
			WillReturnRows(sqlmock.NewRows(resumeColumns).AddRow(
				models.ResumeKey, []byte(`{"basics":{"name":"Alex Avdeev"}}`), now, now,
			))

		resume, err := repo.Get(context.Background())
		assert.NoError(t, err)
		assert.NotNil(t, resume)
		assert.Equal(t, "Alex Avdeev", resume.Payload.Basics.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nothing stored yet is nil, not an error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT resume_key, payload, .+\s+FROM resumes`).
			WithArgs(models.ResumeKey).
			WillReturnRows(sqlmock.NewRows(resumeColumns))

		resume, err := repo.Get(context.Background())
		assert.NoError(t, err)
		assert.Nil(t, resume)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestResumeRepository_Upsert(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewResumeRepository(sqlxDB)

	payload := models.ResumePayload{Basics: models.ResumeBasics{Name: "Alex Avdeev"}}

	mock.ExpectExec(`(?s)INSERT INTO resumes.+ON CONFLICT \(resume_key\) DO UPDATE`).
		WithArgs(models.ResumeKey, payload).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Upsert(context.Background(), payload))
	assert.NoError(t, mock.ExpectationsWereMet())
}
