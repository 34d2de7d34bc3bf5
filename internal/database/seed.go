package database

import (
	"time"

	"github.com/japb1998/outreach-crm/internal/model"
)

func ptr[T any](v T) *T { return &v }

// SeedDemoUser creates the fallback account every unauthenticated request
// resolves to. Safe to call once on an empty store only.
func SeedDemoUser(store *Store) (model.User, error) {
	users := NewUserRepo(store)
	return users.Create(model.User{
		Username: "sarah",
		Password: "password",
		Email:    "sarah@startup.com",
		Name:     "Sarah Chen",
	})
}

// SeedDemoData loads a small showcase dataset for the given owner: three
// clients, three templates, three follow-ups (one already overdue) and two
// sent messages so the dashboard has something to aggregate.
func SeedDemoData(store *Store, userID int) error {
	clients := NewClientRepo(store)
	templates := NewTemplateRepo(store)
	followUps := NewFollowUpRepo(store)
	messages := NewMessageRepo(store)

	c1, err := clients.Create(model.Client{
		UserID:           userID,
		Name:             "Alex Rodriguez",
		Email:            "alex.rodriguez@techcorp.com",
		Company:          ptr("TechCorp Solutions"),
		LinkedinURL:      ptr("https://linkedin.com/in/alexrodriguez"),
		Phone:            ptr("+1 (555) 123-4567"),
		Notes:            ptr("Interested in our enterprise package. Previously worked at Google."),
		PreferredChannel: model.ChannelEmail,
	})
	if err != nil {
		return err
	}

	c2, err := clients.Create(model.Client{
		UserID:           userID,
		Name:             "Jennifer Kim",
		Email:            "j.kim@innovatestartup.io",
		Company:          ptr("Innovate Startup"),
		LinkedinURL:      ptr("https://linkedin.com/in/jenniferkim"),
		Phone:            ptr("+1 (555) 987-6543"),
		Notes:            ptr("CEO of fast-growing startup. Very interested in our AI features."),
		PreferredChannel: model.ChannelLinkedIn,
	})
	if err != nil {
		return err
	}

	c3, err := clients.Create(model.Client{
		UserID:           userID,
		Name:             "Michael Thompson",
		Email:            "mthompson@globalenterprises.com",
		Company:          ptr("Global Enterprises"),
		LinkedinURL:      ptr("https://linkedin.com/in/michaelthompson"),
		Phone:            ptr("+1 (555) 456-7890"),
		Notes:            ptr("Director of Operations. Looking for scalable solutions."),
		PreferredChannel: model.ChannelEmail,
	})
	if err != nil {
		return err
	}

	seedTemplates := []model.Template{
		{
			UserID:    userID,
			Name:      "Product Demo Follow-up",
			Category:  model.CategoryFollowUp,
			Channel:   model.ChannelEmail,
			Subject:   ptr("Thanks for your interest in {{product_name}}"),
			Content:   "Hi {{client_name}},\n\nThank you for taking the time to learn about {{product_name}} during our demo. As discussed, I'm attaching the proposal and I'm available this week for any questions.\n\nBest regards,\n{{sender_name}}",
			Variables: []string{"client_name", "product_name", "sender_name"},
		},
		{
			UserID:    userID,
			Name:      "LinkedIn Introduction",
			Category:  model.CategoryIntroduction,
			Channel:   model.ChannelLinkedIn,
			Content:   "Hi {{client_name}}, I noticed you're working on innovative solutions at {{company}}. I'd love to connect and share how we're helping similar companies streamline their workflows. Would you be open to a brief conversation?",
			Variables: []string{"client_name", "company"},
		},
		{
			UserID:    userID,
			Name:      "Check-in Message",
			Category:  model.CategoryCheckIn,
			Channel:   model.ChannelBoth,
			Subject:   ptr("How are things going at {{company}}?"),
			Content:   "Hi {{client_name}},\n\nI wanted to check in and see how things are progressing with your current projects at {{company}}. I'm here to answer any questions.\n\nBest,\n{{sender_name}}",
			Variables: []string{"client_name", "company", "sender_name"},
		},
	}
	for _, t := range seedTemplates {
		if _, err := templates.Create(t); err != nil {
			return err
		}
	}

	now := time.Now().UTC()
	seedFollowUps := []model.FollowUp{
		{
			UserID:       userID,
			ClientID:     c1.ID,
			Subject:      "Follow up on enterprise package discussion",
			Content:      ptr("Hi Alex, I wanted to follow up on our conversation about the enterprise package. Have you had a chance to review the proposal?"),
			Context:      ptr("Discussed enterprise package pricing and features during last call"),
			Channel:      model.ChannelEmail,
			Priority:     model.PriorityHigh,
			ScheduledFor: now.Add(24 * time.Hour),
		},
		{
			UserID:       userID,
			ClientID:     c2.ID,
			Subject:      "AI features demo follow-up",
			Content:      ptr("Hi Jennifer, thanks for the great questions about our AI capabilities. I'd love to schedule a technical deep-dive for your team."),
			Context:      ptr("Very interested in AI features for startup automation"),
			Channel:      model.ChannelLinkedIn,
			Priority:     model.PriorityMedium,
			ScheduledFor: now.Add(7 * 24 * time.Hour),
		},
		{
			UserID:       userID,
			ClientID:     c3.ID,
			Subject:      "Checking in on Global Enterprises integration",
			Content:      ptr("Hi Michael, I wanted to check in on the status of your evaluation process for our platform."),
			Context:      ptr("Evaluating platform for operations team"),
			Channel:      model.ChannelEmail,
			Priority:     model.PriorityMedium,
			ScheduledFor: now.Add(-24 * time.Hour), // already overdue
		},
	}
	for _, f := range seedFollowUps {
		if _, err := followUps.Create(f); err != nil {
			return err
		}
	}

	sentAt := now.Add(-48 * time.Hour)
	seedMessages := []model.Message{
		{
			UserID:           userID,
			ClientID:         c1.ID,
			Channel:          model.ChannelEmail,
			Subject:          ptr("Welcome to our platform!"),
			Content:          "Hi Alex, welcome to our platform! Here's everything you need to get started.",
			Status:           model.MessageStatusSent,
			SentAt:           &sentAt,
			ResponseReceived: true,
		},
		{
			UserID:   userID,
			ClientID: c2.ID,
			Channel:  model.ChannelLinkedIn,
			Content:  "Thanks for connecting! Looking forward to our partnership.",
			Status:   model.MessageStatusSent,
			SentAt:   &sentAt,
		},
	}
	for _, m := range seedMessages {
		if _, err := messages.Create(m); err != nil {
			return err
		}
	}

	return nil
}
