package controller

import (
	"log/slog"
	"os"
)

// handlers
var (
	clientHandler    = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "clientController")})
	templateHandler  = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "templateController")})
	followUpHandler  = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "followUpController")})
	messageHandler   = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "messageController")})
	aiHandler        = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "aiController")})
	dashboardHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "dashboardController")})
)

// loggers
var (
	clientLogger    = slog.New(clientHandler)
	templateLogger  = slog.New(templateHandler)
	followUpLogger  = slog.New(followUpHandler)
	messageLogger   = slog.New(messageHandler)
	aiLogger        = slog.New(aiHandler)
	dashboardLogger = slog.New(dashboardHandler)
)
