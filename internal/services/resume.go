package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/segmentio/kafka-go"

	"github.com/avdeev-dev/portfolio-api/internal/logger"
	"github.com/avdeev-dev/portfolio-api/internal/models"
)

// resumeCacheKey is the go-cache key for the singleton resume.
const resumeCacheKey = "resume:" + models.ResumeKey

// publishTimeout bounds each Kafka write.
const publishTimeout = 5 * time.Second

// ErrResumeNotFound is returned while no resume has been stored yet.
var ErrResumeNotFound = errors.New("resume not found")

// ResumeReader defines the read side of the resume store.
type ResumeReader interface {
	Get(ctx context.Context) (*models.ResumeDB, error)
}

// ResumeWriter defines the write side of the resume store.
type ResumeWriter interface {
	Upsert(ctx context.Context, payload models.ResumePayload) error
}

// DownloadWriter appends download analytics events.
type DownloadWriter interface {
	Save(ctx context.Context, e models.DownloadEventDB) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ResumeService handles the singleton resume and download tracking.
// Reads go through an in-memory TTL cache; writes invalidate it.
type ResumeService struct {
	reader      ResumeReader
	writer      ResumeWriter
	downloads   DownloadWriter
	kafkaWriter KafkaWriter
	cache       *gocache.Cache
}

// NewResumeService creates a new ResumeService instance.
func NewResumeService(reader ResumeReader, writer ResumeWriter, downloads DownloadWriter, kafkaWriter KafkaWriter, cache *gocache.Cache) *ResumeService {
	return &ResumeService{
		reader:      reader,
		writer:      writer,
		downloads:   downloads,
		kafkaWriter: kafkaWriter,
		cache:       cache,
	}
}

// Get returns the current resume, from cache when warm.
func (svc *ResumeService) Get(ctx context.Context) (*models.ResumeDB, error) {
	if svc.cache != nil {
		if cached, ok := svc.cache.Get(resumeCacheKey); ok {
			if resume, ok := cached.(*models.ResumeDB); ok {
				return resume, nil
			}
		}
	}

	resume, err := svc.reader.Get(ctx)
	if err != nil {
		logger.Log.Errorw("failed to get resume", "err", err)
		return nil, err
	}
	if resume == nil {
		return nil, ErrResumeNotFound
	}

	if svc.cache != nil {
		svc.cache.Set(resumeCacheKey, resume, gocache.DefaultExpiration)
	}

	return resume, nil
}

// Update upserts the singleton resume and invalidates the cache.
func (svc *ResumeService) Update(ctx context.Context, payload models.ResumePayload) (*models.ResumeDB, error) {
	if payload.Basics.Name == "" {
		return nil, fmt.Errorf("%w: basics.name is required", ErrValidation)
	}

	if err := svc.writer.Upsert(ctx, payload); err != nil {
		logger.Log.Errorw("failed to upsert resume", "err", err)
		return nil, err
	}

	if svc.cache != nil {
		svc.cache.Delete(resumeCacheKey)
	}

	resume, err := svc.reader.Get(ctx)
	if err != nil {
		logger.Log.Errorw("failed to reload resume after upsert", "err", err)
		return nil, err
	}
	if resume == nil {
		return nil, ErrResumeNotFound
	}

	return resume, nil
}

// TrackDownload records a download event and publishes it to the
// analytics topic. The row insert is authoritative; a publish failure
// is logged and swallowed.
func (svc *ResumeService) TrackDownload(ctx context.Context, e models.DownloadEventDB) error {
	e.EventID = uuid.New()
	if e.Document == "" {
		e.Document = "resume"
	}

	if err := svc.downloads.Save(ctx, e); err != nil {
		logger.Log.Errorw("failed to save download event", "err", err)
		return err
	}

	svc.publishDownload(ctx, e)
	return nil
}

// publishDownload publishes a download event to Kafka.
func (svc *ResumeService) publishDownload(ctx context.Context, e models.DownloadEventDB) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", e.EventID)
		return
	}

	data, err := json.Marshal(e)
	if err != nil {
		logger.Log.Errorw("failed to marshal download event for Kafka", "event_id", e.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(e.EventID.String()),
		Value: data,
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := svc.kafkaWriter.WriteMessages(publishCtx, msg); err != nil {
		logger.Log.Errorw("failed to publish download event to Kafka", "event_id", e.EventID, "error", err)
		return
	}
	logger.Log.Infow("download event published to Kafka", "event_id", e.EventID, "document", e.Document)
}
