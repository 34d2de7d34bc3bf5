package email_test

import (
	"context"
	"errors"
	"testing"

	"github.com/japb1998/outreach-crm/pkg/email"
)

func TestUnconfiguredService(t *testing.T) {
	svc := email.NewEmailService(&email.EmailSvcOpts{})

	if svc.Configured() {
		t.Fatal("service without credentials should not report configured")
	}

	_, err := svc.Send(context.Background(), "a@x.io", "subject", "<p>hi</p>")
	if !errors.Is(err, email.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}

	if err := svc.Verify(context.Background()); !errors.Is(err, email.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured from verify, got %v", err)
	}
}

func TestConfiguredServiceValidatesInput(t *testing.T) {
	svc := email.NewEmailService(&email.EmailSvcOpts{
		Domain: "mg.example.com",
		APIKey: "key-test",
	})

	if !svc.Configured() {
		t.Fatal("service with credentials should report configured")
	}

	if _, err := svc.Send(context.Background(), "", "subject", "content"); !errors.Is(err, email.ErrEmptyEmail) {
		t.Fatalf("expected ErrEmptyEmail, got %v", err)
	}
}
