package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"

	"github.com/avdeev-dev/portfolio-api/internal/models"
	"github.com/avdeev-dev/portfolio-api/internal/services"
)

func newResumeCache() *gocache.Cache {
	return gocache.New(5*time.Minute, 10*time.Minute)
}

func TestResumeService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	payload := models.ResumePayload{Basics: models.ResumeBasics{Name: "Alex Avdeev"}}

	t.Run("second read comes from the cache", func(t *testing.T) {
		mockReader := services.NewMockResumeReader(ctrl)
		svc := services.NewResumeService(mockReader, services.NewMockResumeWriter(ctrl), services.NewMockDownloadWriter(ctrl), nil, newResumeCache())

		mockReader.EXPECT().
			Get(gomock.Any()).
			Return(&models.ResumeDB{ResumeKey: models.ResumeKey, Payload: payload}, nil).
			Times(1)

		first, err := svc.Get(context.Background())
		assert.NoError(t, err)

		second, err := svc.Get(context.Background())
		assert.NoError(t, err)
		assert.Same(t, first, second)
	})

	t.Run("no resume stored yet", func(t *testing.T) {
		mockReader := services.NewMockResumeReader(ctrl)
		svc := services.NewResumeService(mockReader, services.NewMockResumeWriter(ctrl), services.NewMockDownloadWriter(ctrl), nil, newResumeCache())

		mockReader.EXPECT().Get(gomock.Any()).Return(nil, nil)

		resume, err := svc.Get(context.Background())
		assert.ErrorIs(t, err, services.ErrResumeNotFound)
		assert.Nil(t, resume)
	})

	t.Run("works without a cache", func(t *testing.T) {
		mockReader := services.NewMockResumeReader(ctrl)
		svc := services.NewResumeService(mockReader, services.NewMockResumeWriter(ctrl), services.NewMockDownloadWriter(ctrl), nil, nil)

		mockReader.EXPECT().
			Get(gomock.Any()).
			Return(&models.ResumeDB{ResumeKey: models.ResumeKey, Payload: payload}, nil).
			Times(2)

		_, err := svc.Get(context.Background())
		assert.NoError(t, err)
		_, err = svc.Get(context.Background())
		assert.NoError(t, err)
	})
}

func TestResumeService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	payload := models.ResumePayload{Basics: models.ResumeBasics{Name: "Alex Avdeev"}}

	t.Run("upserts and invalidates the cache", func(t *testing.T) {
		mockReader := services.NewMockResumeReader(ctrl)
		mockWriter := services.NewMockResumeWriter(ctrl)
		svc := services.NewResumeService(mockReader, mockWriter, services.NewMockDownloadWriter(ctrl), nil, newResumeCache())

		stale := &models.ResumeDB{ResumeKey: models.ResumeKey}
		fresh := &models.ResumeDB{ResumeKey: models.ResumeKey, Payload: payload}

		gomock.InOrder(
			mockReader.EXPECT().Get(gomock.Any()).Return(stale, nil),
			mockWriter.EXPECT().Upsert(gomock.Any(), payload).Return(nil),
			mockReader.EXPECT().Get(gomock.Any()).Return(fresh, nil).Times(2),
		)

		got, err := svc.Get(context.Background())
		assert.NoError(t, err)
		assert.Same(t, stale, got)

		updated, err := svc.Update(context.Background(), payload)
		assert.NoError(t, err)
		assert.Same(t, fresh, updated)

		// The stale entry is gone; the next read goes back to storage.
		reloaded, err := svc.Get(context.Background())
		assert.NoError(t, err)
		assert.Same(t, fresh, reloaded)
	})

	t.Run("requires a name", func(t *testing.T) {
		svc := services.NewResumeService(services.NewMockResumeReader(ctrl), services.NewMockResumeWriter(ctrl), services.NewMockDownloadWriter(ctrl), nil, nil)

		resume, err := svc.Update(context.Background(), models.ResumePayload{})
		assert.ErrorIs(t, err, services.ErrValidation)
		assert.Nil(t, resume)
	})

	t.Run("upsert failure propagates", func(t *testing.T) {
		mockWriter := services.NewMockResumeWriter(ctrl)
		svc := services.NewResumeService(services.NewMockResumeReader(ctrl), mockWriter, services.NewMockDownloadWriter(ctrl), nil, nil)

		upsertErr := errors.New("db error")
		mockWriter.EXPECT().Upsert(gomock.Any(), payload).Return(upsertErr)

		resume, err := svc.Update(context.Background(), payload)
		assert.ErrorIs(t, err, upsertErr)
		assert.Nil(t, resume)
	})
}

func TestResumeService_TrackDownload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("assigns an id and defaults the document", func(t *testing.T) {
		mockDownloads := services.NewMockDownloadWriter(ctrl)
		svc := services.NewResumeService(services.NewMockResumeReader(ctrl), services.NewMockResumeWriter(ctrl), mockDownloads, nil, nil)

		mockDownloads.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e models.DownloadEventDB) error {
				assert.NotEqual(t, uuid.Nil, e.EventID)
				assert.Equal(t, "resume", e.Document)
				return nil
			})

		err := svc.TrackDownload(context.Background(), models.DownloadEventDB{Source: "homepage"})
		assert.NoError(t, err)
	})

	t.Run("publishes the event", func(t *testing.T) {
		mockDownloads := services.NewMockDownloadWriter(ctrl)
		mockKafka := services.NewMockKafkaWriter(ctrl)
		svc := services.NewResumeService(services.NewMockResumeReader(ctrl), services.NewMockResumeWriter(ctrl), mockDownloads, mockKafka, nil)

		mockDownloads.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.TrackDownload(context.Background(), models.DownloadEventDB{})
		assert.NoError(t, err)
	})

	t.Run("publish failure is swallowed", func(t *testing.T) {
		mockDownloads := services.NewMockDownloadWriter(ctrl)
		mockKafka := services.NewMockKafkaWriter(ctrl)
		svc := services.NewResumeService(services.NewMockResumeReader(ctrl), services.NewMockResumeWriter(ctrl), mockDownloads, mockKafka, nil)

		mockDownloads.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		err := svc.TrackDownload(context.Background(), models.DownloadEventDB{})
		assert.NoError(t, err)
	})

	t.Run("insert failure propagates and skips publishing", func(t *testing.T) {
		mockDownloads := services.NewMockDownloadWriter(ctrl)
		mockKafka := services.NewMockKafkaWriter(ctrl)
		svc := services.NewResumeService(services.NewMockResumeReader(ctrl), services.NewMockResumeWriter(ctrl), mockDownloads, mockKafka, nil)

		saveErr := errors.New("db error")
		mockDownloads.EXPECT().Save(gomock.Any(), gomock.Any()).Return(saveErr)

		err := svc.TrackDownload(context.Background(), models.DownloadEventDB{})
		assert.ErrorIs(t, err, saveErr)
	})
}
