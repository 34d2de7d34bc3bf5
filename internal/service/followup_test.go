package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/japb1998/outreach-crm/internal/database"
	"github.com/japb1998/outreach-crm/internal/dto"
	"github.com/japb1998/outreach-crm/internal/model"
	"github.com/japb1998/outreach-crm/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFollowUpFixture() (*service.FollowUpService, *database.ClientRepo, *database.FollowUpRepo) {
	store := database.NewStore()
	clients := database.NewClientRepo(store)
	followUps := database.NewFollowUpRepo(store)
	return service.NewFollowUpSvc(followUps, clients), clients, followUps
}

func TestCreateFollowUpParsesSchedule(t *testing.T) {
	svc, clients, _ := newFollowUpFixture()
	client, _ := clients.Create(model.Client{UserID: 1, Name: "Acme", Email: "a@acme.io"})

	created, err := svc.CreateFollowUp(context.Background(), 1, dto.CreateFollowUpInput{
		ClientID:     client.ID,
		Subject:      "check in",
		Channel:      model.ChannelEmail,
		ScheduledFor: "2026-09-15T10:00:00Z",
	})

	require.NoError(t, err)
	assert.Equal(t, "2026-09-15T10:00:00Z", created.ScheduledFor)
	assert.Equal(t, model.FollowUpStatusPending, created.Status)
	assert.Equal(t, model.PriorityMedium, created.Priority)
}

func TestCreateFollowUpRejectsBadDate(t *testing.T) {
	svc, clients, _ := newFollowUpFixture()
	client, _ := clients.Create(model.Client{UserID: 1, Name: "Acme", Email: "a@acme.io"})

	_, err := svc.CreateFollowUp(context.Background(), 1, dto.CreateFollowUpInput{
		ClientID:     client.ID,
		Subject:      "check in",
		Channel:      model.ChannelEmail,
		ScheduledFor: "next tuesday",
	})

	assert.ErrorIs(t, err, service.ErrInvalidDate)
}

func TestUpcomingEnrichedWithClient(t *testing.T) {
	svc, clients, followUps := newFollowUpFixture()
	client, _ := clients.Create(model.Client{UserID: 1, Name: "Acme", Email: "a@acme.io"})
	followUps.Create(model.FollowUp{UserID: 1, ClientID: client.ID, Subject: "check in", Channel: model.ChannelEmail, ScheduledFor: time.Now().Add(time.Hour)})

	upcoming, err := svc.GetUpcomingFollowUps(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	require.NotNil(t, upcoming[0].Client)
	assert.Equal(t, "Acme", upcoming[0].Client.Name)
}

func TestUpcomingToleratesDeletedClient(t *testing.T) {
	svc, clients, followUps := newFollowUpFixture()
	client, _ := clients.Create(model.Client{UserID: 1, Name: "Acme", Email: "a@acme.io"})
	followUps.Create(model.FollowUp{UserID: 1, ClientID: client.ID, Subject: "check in", Channel: model.ChannelEmail, ScheduledFor: time.Now().Add(time.Hour)})
	clients.Delete(client.ID)

	upcoming, err := svc.GetUpcomingFollowUps(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Nil(t, upcoming[0].Client)
}

func TestUpdateFollowUpNotFound(t *testing.T) {
	svc, _, _ := newFollowUpFixture()

	_, err := svc.UpdateFollowUp(context.Background(), 5, dto.PatchFollowUpInput{Subject: strPtr("x")})
	assert.ErrorIs(t, err, service.ErrFollowUpNotFound)
}

func TestDeleteFollowUp(t *testing.T) {
	svc, clients, followUps := newFollowUpFixture()
	client, _ := clients.Create(model.Client{UserID: 1, Name: "Acme", Email: "a@acme.io"})
	created, _ := followUps.Create(model.FollowUp{UserID: 1, ClientID: client.ID, Subject: "check in", Channel: model.ChannelEmail, ScheduledFor: time.Now()})

	require.NoError(t, svc.DeleteFollowUp(context.Background(), created.ID))
	assert.ErrorIs(t, svc.DeleteFollowUp(context.Background(), created.ID), service.ErrFollowUpNotFound)
}
