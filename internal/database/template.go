package database

import (
	"sort"

	"github.com/japb1998/outreach-crm/internal/model"
)

// TemplateRepo has no update path: templates are immutable once created.
type TemplateRepo struct {
	store *Store
}

func NewTemplateRepo(store *Store) *TemplateRepo {
	return &TemplateRepo{store: store}
}

func (r *TemplateRepo) Create(template model.Template) (model.Template, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.templateSeq++
	template.ID = r.store.templateSeq
	template.CreatedAt = r.store.now()
	if template.Variables == nil {
		template.Variables = []string{}
	}
	r.store.templates[template.ID] = template
	return template, nil
}

func (r *TemplateRepo) GetByID(id int) (*model.Template, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	t, ok := r.store.templates[id]
	if !ok {
		return nil, ErrTemplateNotFound
	}
	return &t, nil
}

func (r *TemplateRepo) ListByOwner(userID int) ([]model.Template, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	list := make([]model.Template, 0)
	for _, t := range r.store.templates {
		if t.UserID == userID {
			list = append(list, t)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *TemplateRepo) Delete(id int) bool {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.templates[id]; !ok {
		return false
	}
	delete(r.store.templates, id)
	return true
}
