package service_test

import (
	"context"
	"testing"

	"github.com/japb1998/outreach-crm/internal/database"
	"github.com/japb1998/outreach-crm/internal/dto"
	"github.com/japb1998/outreach-crm/internal/model"
	"github.com/japb1998/outreach-crm/internal/service"
	"github.com/japb1998/outreach-crm/pkg/assistant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type generatorStub struct {
	lastRequest assistant.GenerateRequest
}

func (g *generatorStub) GenerateMessage(ctx context.Context, req assistant.GenerateRequest) (*assistant.GeneratedMessage, error) {
	g.lastRequest = req
	return &assistant.GeneratedMessage{
		Subject:     "Quick question",
		Content:     "Hi there",
		Tone:        "professional and warm",
		Suggestions: []string{"send in the morning"},
	}, nil
}

func (g *generatorStub) OptimizeMessage(ctx context.Context, content, channel, tone string) (*assistant.OptimizedMessage, error) {
	return &assistant.OptimizedMessage{
		OptimizedContent: "Hi there, improved",
		Improvements:     []string{"tightened opening"},
	}, nil
}

func TestGenerateMessageResolvesClientContext(t *testing.T) {
	store := database.NewStore()
	clients := database.NewClientRepo(store)
	gen := &generatorStub{}
	svc := service.NewAssistantSvc(clients, gen)

	client, _ := clients.Create(model.Client{UserID: 1, Name: "Jane Doe", Email: "j@x.io", Company: strPtr("Acme Corp")})

	result, err := svc.GenerateMessage(context.Background(), dto.GenerateMessageInput{
		ClientID:    client.ID,
		Channel:     model.ChannelEmail,
		MessageType: model.CategoryFollowUp,
		Context:     "met at the expo",
		Tone:        "professional",
	})

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", gen.lastRequest.ClientName)
	assert.Equal(t, "Acme Corp", gen.lastRequest.Company)
	require.NotNil(t, result.Subject)
	assert.Equal(t, "Quick question", *result.Subject)
	assert.Equal(t, "Hi there", result.Content)
}

func TestGenerateMessageUnknownClient(t *testing.T) {
	store := database.NewStore()
	svc := service.NewAssistantSvc(database.NewClientRepo(store), &generatorStub{})

	_, err := svc.GenerateMessage(context.Background(), dto.GenerateMessageInput{
		ClientID:    99,
		Channel:     model.ChannelEmail,
		MessageType: model.CategoryFollowUp,
		Context:     "x",
		Tone:        "professional",
	})

	assert.ErrorIs(t, err, service.ErrClientNotFound)
}

func TestGenerateMessageWithoutGenerator(t *testing.T) {
	store := database.NewStore()
	clients := database.NewClientRepo(store)
	svc := service.NewAssistantSvc(clients, nil)

	client, _ := clients.Create(model.Client{UserID: 1, Name: "Jane", Email: "j@x.io"})

	_, err := svc.GenerateMessage(context.Background(), dto.GenerateMessageInput{
		ClientID:    client.ID,
		Channel:     model.ChannelEmail,
		MessageType: model.CategoryFollowUp,
		Context:     "x",
		Tone:        "professional",
	})
	assert.ErrorIs(t, err, service.ErrGeneratorUnavailable)

	_, err = svc.OptimizeMessage(context.Background(), dto.OptimizeMessageInput{
		Content: "draft",
		Channel: model.ChannelEmail,
	})
	assert.ErrorIs(t, err, service.ErrGeneratorUnavailable)
}

func TestOptimizeMessage(t *testing.T) {
	store := database.NewStore()
	svc := service.NewAssistantSvc(database.NewClientRepo(store), &generatorStub{})

	result, err := svc.OptimizeMessage(context.Background(), dto.OptimizeMessageInput{
		Content: "draft",
		Channel: model.ChannelEmail,
		Tone:    "direct",
	})

	require.NoError(t, err)
	assert.Equal(t, "Hi there, improved", result.OptimizedContent)
	assert.Equal(t, []string{"tightened opening"}, result.Improvements)
}
