package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/japb1998/outreach-crm/internal/database"
	"github.com/japb1998/outreach-crm/internal/dto"
	"github.com/japb1998/outreach-crm/internal/model"
)

var (
	ErrMissingChannelAddress = errors.New("client LinkedIn URL not available")
	ErrInvalidChannel        = errors.New("invalid channel")
)

// EmailSender is the outbound email capability. Send returns the provider
// message id on success.
type EmailSender interface {
	Send(ctx context.Context, to, subject, content string) (string, error)
	Verify(ctx context.Context) error
}

// LinkedInSender is the outbound LinkedIn capability (currently a stub).
type LinkedInSender interface {
	Send(ctx context.Context, recipientURL, content string) error
}

type MessageRepository interface {
	Create(message model.Message) (model.Message, error)
	GetByID(id int) (*model.Message, error)
	ListByOwner(userID int) ([]model.Message, error)
	ListByClient(clientID int) ([]model.Message, error)
	Update(id int, patch database.PatchMessageItem) (*model.Message, error)
}

// MessengerService coordinates the send-message lifecycle: resolve the
// client, invoke the channel, persist the Message, and advance the linked
// follow-up. Channel failures are captured into the result, never raised.
type MessengerService struct {
	clients   ClientRepository
	followUps FollowUpRepository
	messages  MessageRepository
	email     EmailSender
	linkedin  LinkedInSender
}

func NewMessengerSvc(clients ClientRepository, followUps FollowUpRepository, messages MessageRepository, email EmailSender, linkedin LinkedInSender) *MessengerService {
	return &MessengerService{
		clients:   clients,
		followUps: followUps,
		messages:  messages,
		email:     email,
		linkedin:  linkedin,
	}
}

// SendMessage runs the lifecycle for one outbound message. Validation
// failures (unknown client, missing address) return an error and leave no
// record; once the channel is invoked a Message is recorded whatever the
// outcome.
func (s *MessengerService) SendMessage(ctx context.Context, userID int, input dto.SendMessageInput) (*dto.SendMessageResult, error) {
	client, err := s.clients.GetByID(input.ClientID)
	if err != nil {
		if errors.Is(err, database.ErrClientNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to resolve client id=%d: %w", input.ClientID, err)
	}

	var subject string
	if input.Subject != nil {
		subject = *input.Subject
	}

	var sendErr error
	var providerID string
	switch input.Channel {
	case model.ChannelEmail:
		providerID, sendErr = s.email.Send(ctx, client.Email, subject, input.Content)
	case model.ChannelLinkedIn:
		if client.LinkedinURL == nil || *client.LinkedinURL == "" {
			return nil, ErrMissingChannelAddress
		}
		sendErr = s.linkedin.Send(ctx, *client.LinkedinURL, input.Content)
	default:
		return nil, ErrInvalidChannel
	}

	item := model.Message{
		UserID:     userID,
		ClientID:   input.ClientID,
		FollowUpID: input.FollowUpID,
		Channel:    input.Channel,
		Subject:    input.Subject,
		Content:    input.Content,
	}
	if sendErr != nil {
		item.Status = model.MessageStatusFailed
		messengerLogger.Error("channel send failed",
			slog.String("channel", input.Channel),
			slog.Int("clientId", input.ClientID),
			slog.String("error", sendErr.Error()))
	} else {
		now := time.Now().UTC()
		item.Status = model.MessageStatusSent
		item.SentAt = &now
		if providerID != "" {
			item.ProviderID = &providerID
		}
	}

	message, err := s.messages.Create(item)
	if err != nil {
		return nil, fmt.Errorf("failed to record message: %w", err)
	}

	// Best-effort enrichment: a missing follow-up must not fail a send that
	// already happened.
	if sendErr == nil && input.FollowUpID != nil {
		if _, err := s.followUps.MarkSent(*input.FollowUpID, *item.SentAt); err != nil {
			messengerLogger.Warn("follow-up not updated after send",
				slog.Int("followUpId", *input.FollowUpID),
				slog.String("error", err.Error()))
		}
	}

	result := &dto.SendMessageResult{
		Success: sendErr == nil,
		Message: dto.NewMessageFromModel(message),
	}
	if sendErr != nil {
		result.Error = sendErr.Error()
	}
	return result, nil
}

// GetMessagesByOwner lists the owner's send history in id order.
func (s *MessengerService) GetMessagesByOwner(ctx context.Context, userID int) ([]dto.MessageDto, error) {
	items, err := s.messages.ListByOwner(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	dtos := make([]dto.MessageDto, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, *dto.NewMessageFromModel(item))
	}
	return dtos, nil
}

// EmailStatus reports whether the email capability is configured and
// reachable.
func (s *MessengerService) EmailStatus(ctx context.Context) dto.EmailStatus {
	if err := s.email.Verify(ctx); err != nil {
		return dto.EmailStatus{IsValid: false, Error: err.Error()}
	}
	return dto.EmailStatus{IsValid: true}
}
