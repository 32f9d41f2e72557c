package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"nightsky.wedding/configs/configslog"
	"nightsky.wedding/models"
	"nightsky.wedding/repositories"
)

// MessageServiceError is a typed service error.
type MessageServiceError string

func (e MessageServiceError) Error() string { return string(e) }

const (
	ErrMessageContentRequired MessageServiceError = "message content is required"
	ErrMessageContentTooLong  MessageServiceError = "message content exceeds 1000 characters"
	ErrMessageSenderTooLong   MessageServiceError = "sender name exceeds 120 characters"
	ErrMessageUnknownGuest    MessageServiceError = "message guest id is unknown"
)

const (
	maxMessageContentLength = 1000
	maxMessageSenderLength  = 120
)

// PostMessageInput is one message board submission. Publish defaults to
// true, Anonymous to false.
type PostMessageInput struct {
	Content   string  `json:"content"`
	Sender    *string `json:"sender"`
	GuestID   *string `json:"guestId"`
	Publish   *bool   `json:"publish"`
	Anonymous *bool   `json:"anonymous"`
}

// IMessageService is the message board: append plus admin moderation over
// the publish/anonymous flags. Posting does not re-check RSVP delegation;
// leaving a note is not an act on another guest's behalf.
type IMessageService interface {
	Post(ctx context.Context, input PostMessageInput) (*models.Message, error)
	List(ctx context.Context) ([]models.Message, error)
	Moderate(ctx context.Context, id string, publish, anonymous *bool) error
}

// MessageService implements IMessageService.
type MessageService struct {
	store repositories.Store
}

func NewMessageService(store repositories.Store) IMessageService {
	return &MessageService{store: store}
}

func (s *MessageService) Post(ctx context.Context, input PostMessageInput) (*models.Message, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, ErrMessageContentRequired
	}
	if utf8.RuneCountInString(content) > maxMessageContentLength {
		return nil, ErrMessageContentTooLong
	}

	var sender *string
	if input.Sender != nil {
		if trimmed := strings.TrimSpace(*input.Sender); trimmed != "" {
			if utf8.RuneCountInString(trimmed) > maxMessageSenderLength {
				return nil, ErrMessageSenderTooLong
			}
			sender = &trimmed
		}
	}

	var guestID *string
	if input.GuestID != nil {
		if trimmed := strings.TrimSpace(*input.GuestID); trimmed != "" {
			if _, err := s.store.Guests().FindByID(ctx, trimmed); err != nil {
				if errors.Is(err, repositories.ErrNotFound) {
					return nil, ErrMessageUnknownGuest
				}
				return nil, err
			}
			guestID = &trimmed
		}
	}

	message := &models.Message{
		SubmittedAt: time.Now().UTC(),
		Content:     content,
		Sender:      sender,
		GuestID:     guestID,
		Publish:     input.Publish == nil || *input.Publish,
		Anonymous:   input.Anonymous != nil && *input.Anonymous,
	}
	if err := s.store.Messages().Create(ctx, message); err != nil {
		return nil, err
	}
	configslog.SLog.Infof("message posted: id=%s anonymous=%t", message.ID, message.Anonymous)
	return message, nil
}

func (s *MessageService) List(ctx context.Context) ([]models.Message, error) {
	return s.store.Messages().FindAll(ctx)
}

func (s *MessageService) Moderate(ctx context.Context, id string, publish, anonymous *bool) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return repositories.ErrNotFound
	}
	return s.store.Messages().UpdateFlags(ctx, id, publish, anonymous)
}

var _ IMessageService = (*MessageService)(nil)
