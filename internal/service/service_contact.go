package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-recipe-box/internal/logger"
	"github.com/MKhiriev/go-recipe-box/internal/store"
	"github.com/MKhiriev/go-recipe-box/models"
)

type contactService struct {
	contactRepository store.ContactRepository

	// now is the clock used for the default timestamp
	now func() time.Time

	logger *logger.Logger
}

func NewContactService(contactRepository store.ContactRepository, logger *logger.Logger) ContactService {
	return &contactService{
		contactRepository: contactRepository,
		now:               time.Now,
		logger:            logger,
	}
}

// SendMessage stores a contact form submission. Name, email and message are
// required; a missing timestamp defaults to the current time in Unix
// milliseconds.
func (s *contactService) SendMessage(ctx context.Context, msg models.ContactMessage) (models.ContactMessage, error) {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Message = strings.TrimSpace(msg.Message)
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		return models.ContactMessage{}, ErrContactFieldsRequired
	}

	if msg.Timestamp <= 0 {
		msg.Timestamp = s.now().UnixMilli()
	}

	saved, err := s.contactRepository.CreateMessage(ctx, msg)
	if err != nil {
		return models.ContactMessage{}, fmt.Errorf("error saving contact message: %w", err)
	}

	return saved, nil
}
