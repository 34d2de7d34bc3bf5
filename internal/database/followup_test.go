package database_test

import (
	"errors"
	"testing"
	"time"

	"github.com/japb1998/outreach-crm/internal/database"
	"github.com/japb1998/outreach-crm/internal/model"
)

func TestFollowUpCreateDefaults(t *testing.T) {
	store := database.NewStore()
	repo := database.NewFollowUpRepo(store)

	sentAt := time.Now()
	created, err := repo.Create(model.FollowUp{
		UserID:       1,
		ClientID:     1,
		Subject:      "check in",
		Channel:      model.ChannelEmail,
		ScheduledFor: time.Now().Add(time.Hour),
		SentAt:       &sentAt,
	})
	if err != nil {
		t.Fatalf("create failed: %s", err)
	}

	if created.Status != model.FollowUpStatusPending {
		t.Fatalf("expected pending status, got %q", created.Status)
	}
	if created.Priority != model.PriorityMedium {
		t.Fatalf("expected medium priority, got %q", created.Priority)
	}
	if created.SentAt != nil {
		t.Fatal("SentAt must not be settable at creation")
	}
}

func TestUpcomingAndOverdueAreDisjoint(t *testing.T) {
	store := database.NewStore()
	repo := database.NewFollowUpRepo(store)

	now := time.Now().UTC()
	past, _ := repo.Create(model.FollowUp{UserID: 1, ClientID: 1, Subject: "late", Channel: model.ChannelEmail, ScheduledFor: now.Add(-2 * time.Hour)})
	future, _ := repo.Create(model.FollowUp{UserID: 1, ClientID: 1, Subject: "soon", Channel: model.ChannelEmail, ScheduledFor: now.Add(2 * time.Hour)})

	upcoming, err := repo.UpcomingByOwner(1)
	if err != nil {
		t.Fatalf("upcoming failed: %s", err)
	}
	overdue, err := repo.OverdueByOwner(1)
	if err != nil {
		t.Fatalf("overdue failed: %s", err)
	}

	if len(upcoming) != 1 || upcoming[0].ID != future.ID {
		t.Fatalf("upcoming should contain only the future follow-up, got %d entries", len(upcoming))
	}
	if len(overdue) != 1 || overdue[0].ID != past.ID {
		t.Fatalf("overdue should contain only the past follow-up, got %d entries", len(overdue))
	}
}

func TestUpcomingSortsByScheduledTime(t *testing.T) {
	store := database.NewStore()
	repo := database.NewFollowUpRepo(store)

	now := time.Now().UTC()
	later, _ := repo.Create(model.FollowUp{UserID: 1, ClientID: 1, Subject: "later", Channel: model.ChannelEmail, ScheduledFor: now.Add(48 * time.Hour)})
	sooner, _ := repo.Create(model.FollowUp{UserID: 1, ClientID: 1, Subject: "sooner", Channel: model.ChannelEmail, ScheduledFor: now.Add(time.Hour)})

	upcoming, _ := repo.UpcomingByOwner(1)
	if len(upcoming) != 2 {
		t.Fatalf("expected 2 upcoming, got %d", len(upcoming))
	}
	if upcoming[0].ID != sooner.ID || upcoming[1].ID != later.ID {
		t.Fatal("upcoming not sorted soonest first")
	}
}

func TestSentFollowUpsExcludedFromBothViews(t *testing.T) {
	store := database.NewStore()
	repo := database.NewFollowUpRepo(store)

	now := time.Now().UTC()
	created, _ := repo.Create(model.FollowUp{UserID: 1, ClientID: 1, Subject: "done", Channel: model.ChannelEmail, ScheduledFor: now.Add(-time.Hour)})
	if _, err := repo.MarkSent(created.ID, now); err != nil {
		t.Fatalf("mark sent failed: %s", err)
	}

	upcoming, _ := repo.UpcomingByOwner(1)
	overdue, _ := repo.OverdueByOwner(1)
	if len(upcoming) != 0 || len(overdue) != 0 {
		t.Fatalf("sent follow-up leaked into views: upcoming=%d overdue=%d", len(upcoming), len(overdue))
	}
}

func TestMarkSentIsOneWay(t *testing.T) {
	store := database.NewStore()
	repo := database.NewFollowUpRepo(store)

	created, _ := repo.Create(model.FollowUp{UserID: 1, ClientID: 1, Subject: "once", Channel: model.ChannelEmail, ScheduledFor: time.Now()})

	first := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	sent, err := repo.MarkSent(created.ID, first)
	if err != nil {
		t.Fatalf("mark sent failed: %s", err)
	}
	if sent.Status != model.FollowUpStatusSent || sent.SentAt == nil || !sent.SentAt.Equal(first) {
		t.Fatal("first transition did not stamp status and SentAt")
	}

	again, err := repo.MarkSent(created.ID, second)
	if err != nil {
		t.Fatalf("second mark sent failed: %s", err)
	}
	if !again.SentAt.Equal(first) {
		t.Fatal("SentAt must not change once sent")
	}
}

func TestMarkSentNotFound(t *testing.T) {
	store := database.NewStore()
	repo := database.NewFollowUpRepo(store)

	if _, err := repo.MarkSent(7, time.Now()); !errors.Is(err, database.ErrFollowUpNotFound) {
		t.Fatalf("expected ErrFollowUpNotFound, got %v", err)
	}
}

func TestFollowUpUpdateKeepsStatus(t *testing.T) {
	store := database.NewStore()
	repo := database.NewFollowUpRepo(store)

	created, _ := repo.Create(model.FollowUp{UserID: 1, ClientID: 1, Subject: "subject", Channel: model.ChannelEmail, ScheduledFor: time.Now().Add(time.Hour)})

	newTime := time.Now().Add(72 * time.Hour).UTC()
	updated, err := repo.Update(created.ID, database.PatchFollowUpItem{
		Subject:      strPtr("new subject"),
		ScheduledFor: &newTime,
	})
	if err != nil {
		t.Fatalf("update failed: %s", err)
	}

	if updated.Subject != "new subject" || !updated.ScheduledFor.Equal(newTime) {
		t.Fatal("patch fields not applied")
	}
	if updated.Status != model.FollowUpStatusPending || updated.SentAt != nil {
		t.Fatal("update must not touch status or SentAt")
	}
}
