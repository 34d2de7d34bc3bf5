package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/japb1998/outreach-crm/internal/dto"
	"github.com/japb1998/outreach-crm/internal/model"
)

// DashboardService computes the aggregate view over the owner's records on
// every read. Data volumes are small and memory-resident, so correctness
// wins over caching.
type DashboardService struct {
	clients   ClientRepository
	followUps FollowUpRepository
	messages  MessageRepository
}

func NewDashboardSvc(clients ClientRepository, followUps FollowUpRepository, messages MessageRepository) *DashboardService {
	return &DashboardService{clients: clients, followUps: followUps, messages: messages}
}

// GetDashboardStats returns client count, pending follow-ups, sends within
// the trailing 7 days and the response rate over sent messages (0 when
// nothing was sent).
func (s *DashboardService) GetDashboardStats(ctx context.Context, userID int) (*dto.DashboardStats, error) {
	clients, err := s.clients.ListByOwner(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count clients: %w", err)
	}
	followUps, err := s.followUps.ListByOwner(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count follow-ups: %w", err)
	}
	messages, err := s.messages.ListByOwner(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count messages: %w", err)
	}

	var pending int
	for _, f := range followUps {
		if f.Status == model.FollowUpStatusPending {
			pending++
		}
	}

	now := time.Now().UTC()
	weekAgo := now.Add(-7 * 24 * time.Hour)

	var sentThisWeek, totalSent, responses int
	for _, m := range messages {
		if m.Status != model.MessageStatusSent {
			continue
		}
		totalSent++
		if m.ResponseReceived {
			responses++
		}
		if m.SentAt != nil && !m.SentAt.Before(weekAgo) && !m.SentAt.After(now) {
			sentThisWeek++
		}
	}

	var responseRate int
	if totalSent > 0 {
		responseRate = int(math.Round(float64(responses) / float64(totalSent) * 100))
	}

	return &dto.DashboardStats{
		TotalClients:     len(clients),
		PendingFollowUps: pending,
		SentThisWeek:     sentThisWeek,
		ResponseRate:     responseRate,
	}, nil
}
