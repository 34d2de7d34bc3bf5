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

var ErrTemplateNotFound = errors.New("template not found")

type TemplateRepository interface {
	Create(template model.Template) (model.Template, error)
	GetByID(id int) (*model.Template, error)
	ListByOwner(userID int) ([]model.Template, error)
	Delete(id int) bool
}

// TemplateService manages reusable message bodies. Templates have no update
// path; replacing one means delete and recreate.
type TemplateService struct {
	store TemplateRepository
}

func NewTemplateSvc(s TemplateRepository) *TemplateService {
	return &TemplateService{store: s}
}

func (t *TemplateService) CreateTemplate(ctx context.Context, userID int, input dto.CreateTemplateInput) (*dto.TemplateDto, error) {
	item := model.Template{
		UserID:    userID,
		Name:      input.Name,
		Category:  input.Category,
		Channel:   input.Channel,
		Subject:   input.Subject,
		Content:   input.Content,
		Variables: input.Variables,
	}

	created, err := t.store.Create(item)
	if err != nil {
		templateLogger.Error("error creating template", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create template: %w", err)
	}
	return dto.NewTemplateFromModel(created), nil
}

func (t *TemplateService) GetTemplateByID(ctx context.Context, id int) (*dto.TemplateDto, error) {
	item, err := t.store.GetByID(id)
	if err != nil {
		if errors.Is(err, database.ErrTemplateNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get template id=%d: %w", id, err)
	}
	return dto.NewTemplateFromModel(*item), nil
}

func (t *TemplateService) GetTemplatesByOwner(ctx context.Context, userID int) ([]dto.TemplateDto, error) {
	items, err := t.store.ListByOwner(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	dtos := make([]dto.TemplateDto, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, *dto.NewTemplateFromModel(item))
	}
	return dtos, nil
}

func (t *TemplateService) DeleteTemplate(ctx context.Context, id int) error {
	if ok := t.store.Delete(id); !ok {
		return ErrTemplateNotFound
	}
	return nil
}
