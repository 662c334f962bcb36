package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/google/uuid"

	"github.com/avdeev-dev/portfolio-api/internal/logger"
	"github.com/avdeev-dev/portfolio-api/internal/models"
)

// Error variables
var (
	ErrMessageNotFound      = errors.New("contact message not found")
	ErrInvalidContactStatus = errors.New("invalid contact status")
)

var emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactReader defines read-only operations for contact messages.
type ContactReader interface {
	List(ctx context.Context, filter models.ContactFilter) ([]models.ContactMessageDB, int64, error)
	GetByID(ctx context.Context, messageID uuid.UUID) (*models.ContactMessageDB, error)
}

// ContactWriter defines write operations for contact messages.
type ContactWriter interface {
	Save(ctx context.Context, m models.ContactMessageDB) error
	Update(ctx context.Context, messageID uuid.UUID, status, notes *string) (int64, error)
	Delete(ctx context.Context, messageID uuid.UUID) (int64, error)
}

// ContactInput carries the fields of a public contact form submission.
type ContactInput struct {
	Name      string
	Email     string
	Subject   string
	Message   string
	IPAddress string
	UserAgent string
}

// ContactService handles contact form submissions and their admin
// lifecycle.
type ContactService struct {
	reader     ContactReader
	writer     ContactWriter
	mailer     MailSender
	adminEmail string
}

// NewContactService creates a new ContactService instance.
func NewContactService(reader ContactReader, writer ContactWriter, mailer MailSender, adminEmail string) *ContactService {
	return &ContactService{
		reader:     reader,
		writer:     writer,
		mailer:     mailer,
		adminEmail: adminEmail,
	}
}

// Create validates and persists a submission, then notifies the admin
// address. A notification failure is logged and swallowed: the
// submission has already been accepted and stays accepted.
func (svc *ContactService) Create(ctx context.Context, in ContactInput) (*models.ContactMessageDB, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if in.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}
	if !emailRx.MatchString(in.Email) {
		return nil, fmt.Errorf("%w: email format is invalid", ErrValidation)
	}
	if in.Message == "" {
		return nil, fmt.Errorf("%w: message is required", ErrValidation)
	}

	message := models.ContactMessageDB{
		MessageID: uuid.New(),
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		Status:    models.ContactStatusUnread,
		IPAddress: in.IPAddress,
		UserAgent: in.UserAgent,
	}

	if err := svc.writer.Save(ctx, message); err != nil {
		logger.Log.Errorw("failed to save contact message", "err", err)
		return nil, err
	}

	svc.notifyAdmin(ctx, message)

	return &message, nil
}

// notifyAdmin sends the new-message notification. Failures never
// propagate to the caller.
func (svc *ContactService) notifyAdmin(ctx context.Context, m models.ContactMessageDB) {
	if svc.adminEmail == "" {
		logger.Log.Warnw("admin email not configured, skipping notification", "message_id", m.MessageID)
		return
	}

	subject := fmt.Sprintf("New contact message from %s", m.Name)
	body := fmt.Sprintf("From: %s <%s>\nSubject: %s\n\n%s", m.Name, m.Email, m.Subject, m.Message)

	if err := svc.mailer.Send(ctx, svc.adminEmail, subject, body); err != nil {
		logger.Log.Errorw("failed to send contact notification", "message_id", m.MessageID, "err", err)
	}
}

// List returns one page of messages, optionally filtered by status.
func (svc *ContactService) List(ctx context.Context, filter models.ContactFilter) ([]models.ContactMessageDB, models.Pagination, error) {
	if filter.Status != nil && !models.IsValidContactStatus(*filter.Status) {
		return nil, models.Pagination{}, ErrInvalidContactStatus
	}

	messages, total, err := svc.reader.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list contact messages", "err", err)
		return nil, models.Pagination{}, err
	}

	return messages, models.NewPagination(filter.Page, filter.Limit, total), nil
}

// Get returns one message by id.
func (svc *ContactService) Get(ctx context.Context, messageID uuid.UUID) (*models.ContactMessageDB, error) {
	message, err := svc.reader.GetByID(ctx, messageID)
	if err != nil {
		logger.Log.Errorw("failed to get contact message", "err", err)
		return nil, err
	}
	if message == nil {
		return nil, ErrMessageNotFound
	}
	return message, nil
}

// Update patches status and/or notes. Status transitions are
// unconstrained within the enum.
func (svc *ContactService) Update(ctx context.Context, messageID uuid.UUID, status, notes *string) (*models.ContactMessageDB, error) {
	if status != nil && !models.IsValidContactStatus(*status) {
		return nil, ErrInvalidContactStatus
	}

	rows, err := svc.writer.Update(ctx, messageID, status, notes)
	if err != nil {
		logger.Log.Errorw("failed to update contact message", "err", err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrMessageNotFound
	}

	return svc.Get(ctx, messageID)
}

// Delete removes one message by id.
func (svc *ContactService) Delete(ctx context.Context, messageID uuid.UUID) error {
	rows, err := svc.writer.Delete(ctx, messageID)
	if err != nil {
		logger.Log.Errorw("failed to delete contact message", "err", err)
		return err
	}
	if rows == 0 {
		return ErrMessageNotFound
	}
	return nil
}
