package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/japb1998/outreach-crm/internal/database"
	"github.com/japb1998/outreach-crm/internal/dto"
	"github.com/japb1998/outreach-crm/pkg/assistant"
)

var ErrGeneratorUnavailable = errors.New("message generation is not configured")

// MessageGenerator is the AI drafting capability.
type MessageGenerator interface {
	GenerateMessage(ctx context.Context, req assistant.GenerateRequest) (*assistant.GeneratedMessage, error)
	OptimizeMessage(ctx context.Context, content, channel, tone string) (*assistant.OptimizedMessage, error)
}

// AssistantService resolves the client context and passes drafting requests
// through to the generator. Provider failures surface with the provider's
// own message; nothing is retried.
type AssistantService struct {
	clients   ClientRepository
	generator MessageGenerator
}

// NewAssistantSvc accepts a nil generator; requests then fail with
// ErrGeneratorUnavailable instead of at startup.
func NewAssistantSvc(clients ClientRepository, generator MessageGenerator) *AssistantService {
	return &AssistantService{clients: clients, generator: generator}
}

func (s *AssistantService) GenerateMessage(ctx context.Context, input dto.GenerateMessageInput) (*dto.GeneratedMessageDto, error) {
	client, err := s.clients.GetByID(input.ClientID)
	if err != nil {
		if errors.Is(err, database.ErrClientNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to resolve client id=%d: %w", input.ClientID, err)
	}
	if s.generator == nil {
		return nil, ErrGeneratorUnavailable
	}

	req := assistant.GenerateRequest{
		ClientName:      client.Name,
		Channel:         input.Channel,
		MessageType:     input.MessageType,
		Context:         input.Context,
		Tone:            input.Tone,
		LastInteraction: input.LastInteraction,
	}
	if client.Company != nil {
		req.Company = *client.Company
	}

	generated, err := s.generator.GenerateMessage(ctx, req)
	if err != nil {
		assistantLogger.Error("message generation failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to generate message: %w", err)
	}

	result := &dto.GeneratedMessageDto{
		Content:     generated.Content,
		Tone:        generated.Tone,
		Suggestions: generated.Suggestions,
	}
	if generated.Subject != "" {
		result.Subject = &generated.Subject
	}
	return result, nil
}

func (s *AssistantService) OptimizeMessage(ctx context.Context, input dto.OptimizeMessageInput) (*dto.OptimizedMessageDto, error) {
	if s.generator == nil {
		return nil, ErrGeneratorUnavailable
	}

	optimized, err := s.generator.OptimizeMessage(ctx, input.Content, input.Channel, input.Tone)
	if err != nil {
		assistantLogger.Error("message optimization failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to optimize message: %w", err)
	}

	return &dto.OptimizedMessageDto{
		OptimizedContent: optimized.OptimizedContent,
		Improvements:     optimized.Improvements,
	}, nil
}
