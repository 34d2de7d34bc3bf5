package database_test

import (
	"testing"

	"github.com/japb1998/outreach-crm/internal/database"
	"github.com/japb1998/outreach-crm/internal/model"
)

func TestSeedDemoData(t *testing.T) {
	store := database.NewStore()

	user, err := database.SeedDemoUser(store)
	if err != nil {
		t.Fatalf("seed user failed: %s", err)
	}
	if user.ID == 0 {
		t.Fatal("demo user should have an id")
	}

	if err := database.SeedDemoData(store, user.ID); err != nil {
		t.Fatalf("seed data failed: %s", err)
	}

	clients, _ := database.NewClientRepo(store).ListByOwner(user.ID)
	if len(clients) == 0 {
		t.Fatal("expected seeded clients")
	}
	templates, _ := database.NewTemplateRepo(store).ListByOwner(user.ID)
	if len(templates) == 0 {
		t.Fatal("expected seeded templates")
	}

	followUps := database.NewFollowUpRepo(store)
	overdue, _ := followUps.OverdueByOwner(user.ID)
	if len(overdue) == 0 {
		t.Fatal("seed should include at least one overdue follow-up")
	}

	messages, _ := database.NewMessageRepo(store).ListByOwner(user.ID)
	for _, m := range messages {
		if m.Status == model.MessageStatusSent && m.SentAt == nil {
			t.Fatalf("sent message %d missing SentAt", m.ID)
		}
	}
}
