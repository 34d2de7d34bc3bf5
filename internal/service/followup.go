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
	ErrFollowUpNotFound = errors.New("follow-up not found")
	ErrInvalidDate      = errors.New("invalid date provided")
)

type FollowUpRepository interface {
	Create(followUp model.FollowUp) (model.FollowUp, error)
	GetByID(id int) (*model.FollowUp, error)
	ListByOwner(userID int) ([]model.FollowUp, error)
	UpcomingByOwner(userID int) ([]model.FollowUp, error)
	OverdueByOwner(userID int) ([]model.FollowUp, error)
	Update(id int, patch database.PatchFollowUpItem) (*model.FollowUp, error)
	MarkSent(id int, sentAt time.Time) (*model.FollowUp, error)
	Delete(id int) bool
}

// FollowUpService owns the scheduled-communication views. Clients are
// consulted only to enrich the upcoming view; a deleted client leaves the
// follow-up with a null client rather than failing the read.
type FollowUpService struct {
	store   FollowUpRepository
	clients ClientRepository
}

func NewFollowUpSvc(store FollowUpRepository, clients ClientRepository) *FollowUpService {
	return &FollowUpService{store: store, clients: clients}
}

func (s *FollowUpService) CreateFollowUp(ctx context.Context, userID int, input dto.CreateFollowUpInput) (*dto.FollowUpDto, error) {
	scheduledFor, err := time.Parse(time.RFC3339, input.ScheduledFor)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDate, input.ScheduledFor)
	}

	item := model.NewFollowUp(userID, input.ClientID, input.Subject, input.Channel, input.Priority, scheduledFor.UTC(), input.Content, input.Context, input.TemplateID)

	created, err := s.store.Create(*item)
	if err != nil {
		followUpLogger.Error("error creating follow-up", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create follow-up: %w", err)
	}
	return dto.NewFollowUpFromModel(created), nil
}

func (s *FollowUpService) GetFollowUpsByOwner(ctx context.Context, userID int) ([]dto.FollowUpDto, error) {
	items, err := s.store.ListByOwner(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list follow-ups: %w", err)
	}

	dtos := make([]dto.FollowUpDto, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, *dto.NewFollowUpFromModel(item))
	}
	return dtos, nil
}

// GetUpcomingFollowUps returns pending follow-ups due now or later, soonest
// first, each enriched with its client record.
func (s *FollowUpService) GetUpcomingFollowUps(ctx context.Context, userID int) ([]dto.FollowUpWithClient, error) {
	items, err := s.store.UpcomingByOwner(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming follow-ups: %w", err)
	}

	enriched := make([]dto.FollowUpWithClient, 0, len(items))
	for _, item := range items {
		entry := dto.FollowUpWithClient{FollowUpDto: *dto.NewFollowUpFromModel(item)}
		if client, err := s.clients.GetByID(item.ClientID); err == nil {
			entry.Client = dto.NewClientFromModel(*client)
		}
		enriched = append(enriched, entry)
	}
	return enriched, nil
}

// GetOverdueFollowUps returns pending follow-ups whose due time has passed.
func (s *FollowUpService) GetOverdueFollowUps(ctx context.Context, userID int) ([]dto.FollowUpDto, error) {
	items, err := s.store.OverdueByOwner(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue follow-ups: %w", err)
	}

	dtos := make([]dto.FollowUpDto, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, *dto.NewFollowUpFromModel(item))
	}
	return dtos, nil
}

func (s *FollowUpService) UpdateFollowUp(ctx context.Context, id int, input dto.PatchFollowUpInput) (*dto.FollowUpDto, error) {
	patch := database.PatchFollowUpItem{
		Subject:    input.Subject,
		Content:    input.Content,
		Context:    input.Context,
		Channel:    input.Channel,
		Priority:   input.Priority,
		TemplateID: input.TemplateID,
	}
	if input.ScheduledFor != nil {
		t, err := time.Parse(time.RFC3339, *input.ScheduledFor)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidDate, *input.ScheduledFor)
		}
		utc := t.UTC()
		patch.ScheduledFor = &utc
	}

	item, err := s.store.Update(id, patch)
	if err != nil {
		if errors.Is(err, database.ErrFollowUpNotFound) {
			return nil, ErrFollowUpNotFound
		}
		followUpLogger.Error("error updating follow-up", slog.Int("id", id), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update follow-up id=%d: %w", id, err)
	}
	return dto.NewFollowUpFromModel(*item), nil
}

func (s *FollowUpService) DeleteFollowUp(ctx context.Context, id int) error {
	if ok := s.store.Delete(id); !ok {
		return ErrFollowUpNotFound
	}
	return nil
}
