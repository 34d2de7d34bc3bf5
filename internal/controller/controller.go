package controller

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/japb1998/outreach-crm/internal/database"
	"github.com/japb1998/outreach-crm/internal/service"
	"github.com/japb1998/outreach-crm/pkg/assistant"
	"github.com/japb1998/outreach-crm/pkg/email"
	"github.com/japb1998/outreach-crm/pkg/linkedin"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer trace.Tracer

	clientService    *service.ClientService
	templateService  *service.TemplateService
	followUpService  *service.FollowUpService
	messengerService *service.MessengerService
	dashboardService *service.DashboardService
	assistantService *service.AssistantService
	userService      *service.UserService

	demoUserID int
)

func init() {
	if os.Getenv("STAGE") == "local" {
		fmt.Println("init local")
		if err := godotenv.Load(".env"); err != nil {
			log.Printf("no .env file loaded: %s", err)
		}
	}

	store := database.NewStore()

	// every unauthenticated request resolves to the demo account
	demoUser, err := database.SeedDemoUser(store)
	if err != nil {
		log.Fatalf("failed to seed demo user: %s", err)
	}
	demoUserID = demoUser.ID

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := database.SeedDemoData(store, demoUser.ID); err != nil {
			log.Fatalf("failed to seed demo data: %s", err)
		}
	}

	clientStore := database.NewClientRepo(store)
	templateStore := database.NewTemplateRepo(store)
	followUpStore := database.NewFollowUpRepo(store)
	messageStore := database.NewMessageRepo(store)
	userStore := database.NewUserRepo(store)

	emailSvc := email.NewEmailService(&email.EmailSvcOpts{
		Domain: os.Getenv("MAILGUN_DOMAIN"),
		APIKey: os.Getenv("MAILGUN_API_KEY"),
		Sender: os.Getenv("MAILGUN_SENDER"),
	})
	linkedinSvc := linkedin.NewMsgSvc()

	var generator service.MessageGenerator
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		client, err := assistant.NewClient(slog.Default(), apiKey, os.Getenv("OPENAI_BASE_URL"), os.Getenv("OPENAI_MODEL"), 30*time.Second)
		if err != nil {
			log.Fatalf("failed to init assistant client: %s", err)
		}
		generator = client
	}

	clientService = service.NewClientSvc(clientStore)
	templateService = service.NewTemplateSvc(templateStore)
	followUpService = service.NewFollowUpSvc(followUpStore, clientStore)
	messengerService = service.NewMessengerSvc(clientStore, followUpStore, messageStore, emailSvc, linkedinSvc)
	dashboardService = service.NewDashboardSvc(clientStore, followUpStore, messageStore)
	assistantService = service.NewAssistantSvc(clientStore, generator)
	userService = service.NewUserSvc(userStore)

	tracer = otel.Tracer("github.com/japb1998/outreach-crm/internal/controller")
}

// DemoUserID is the fallback owner for requests without credentials.
func DemoUserID() int {
	return demoUserID
}

// ResolveOwnerID maps a token email claim to an account id, falling back to
// the demo account for unknown emails.
func ResolveOwnerID(email string) int {
	if id, err := userService.GetUserIDByEmail(email); err == nil {
		return id
	}
	return demoUserID
}
