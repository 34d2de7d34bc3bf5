package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/japb1998/outreach-crm/internal/database"
	"github.com/japb1998/outreach-crm/internal/dto"
	"github.com/japb1998/outreach-crm/internal/model"
)

var ErrClientNotFound = errors.New("client not found")

type ClientRepository interface {
	Create(client model.Client) (model.Client, error)
	GetByID(id int) (*model.Client, error)
	ListByOwner(userID int) ([]model.Client, error)
	Update(id int, patch database.PatchClientItem) (*model.Client, error)
	Delete(id int) bool
}

type ClientService struct {
	store ClientRepository
}

func NewClientSvc(s ClientRepository) *ClientService {
	return &ClientService{store: s}
}

func (c *ClientService) CreateClient(ctx context.Context, userID int, input dto.CreateClientInput) (*dto.ClientDto, error) {
	item := model.NewClient(userID, input.Name, input.Email, input.PreferredChannel, input.Company, input.LinkedinURL, input.Phone, input.Notes)

	created, err := c.store.Create(*item)
	if err != nil {
		clientLogger.Error("error creating client", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return dto.NewClientFromModel(created), nil
}

func (c *ClientService) GetClientByID(ctx context.Context, id int) (*dto.ClientDto, error) {
	item, err := c.store.GetByID(id)
	if err != nil {
		if errors.Is(err, database.ErrClientNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client id=%d: %w", id, err)
	}
	return dto.NewClientFromModel(*item), nil
}

func (c *ClientService) GetClientsByOwner(ctx context.Context, userID int) ([]dto.ClientDto, error) {
	items, err := c.store.ListByOwner(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	dtos := make([]dto.ClientDto, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, *dto.NewClientFromModel(item))
	}
	return dtos, nil
}

func (c *ClientService) UpdateClient(ctx context.Context, id int, input dto.PatchClientInput) (*dto.ClientDto, error) {
	patch := database.PatchClientItem{
		Name:             input.Name,
		Email:            input.Email,
		Company:          input.Company,
		LinkedinURL:      input.LinkedinURL,
		Phone:            input.Phone,
		Notes:            input.Notes,
		PreferredChannel: input.PreferredChannel,
	}

	item, err := c.store.Update(id, patch)
	if err != nil {
		if errors.Is(err, database.ErrClientNotFound) {
			return nil, ErrClientNotFound
		}
		clientLogger.Error("error updating client", slog.Int("id", id), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update client id=%d: %w", id, err)
	}
	return dto.NewClientFromModel(*item), nil
}

func (c *ClientService) DeleteClient(ctx context.Context, id int) error {
	if ok := c.store.Delete(id); !ok {
		return ErrClientNotFound
	}
	return nil
}
