package service

import (
	"log/slog"
	"os"
)

// handlers
var (
	clientHandler    = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "clientService")})
	templateHandler  = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "templateService")})
	followUpHandler  = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "followUpService")})
	messengerHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "messengerService")})
	assistantHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "assistantService")})
)

// loggers
var (
	clientLogger    = slog.New(clientHandler)
	templateLogger  = slog.New(templateHandler)
	followUpLogger  = slog.New(followUpHandler)
	messengerLogger = slog.New(messengerHandler)
	assistantLogger = slog.New(assistantHandler)
)
