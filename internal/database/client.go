package database

import (
	"sort"

	"github.com/japb1998/outreach-crm/internal/model"
)

// PatchClientItem carries the fields a client update may touch. Nil pointers
// are left untouched; the merge never validates cross-field consistency.
type PatchClientItem struct {
	Name             *string
	Email            *string
	Company          *string
	LinkedinURL      *string
	Phone            *string
	Notes            *string
	PreferredChannel *string
}

type ClientRepo struct {
	store *Store
}

func NewClientRepo(store *Store) *ClientRepo {
	return &ClientRepo{store: store}
}

func (r *ClientRepo) Create(client model.Client) (model.Client, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.clientSeq++
	client.ID = r.store.clientSeq
	client.CreatedAt = r.store.now()
	r.store.clients[client.ID] = client
	return client, nil
}

func (r *ClientRepo) GetByID(id int) (*model.Client, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.clients[id]
	if !ok {
		return nil, ErrClientNotFound
	}
	return &c, nil
}

func (r *ClientRepo) ListByOwner(userID int) ([]model.Client, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	list := make([]model.Client, 0)
	for _, c := range r.store.clients {
		if c.UserID == userID {
			list = append(list, c)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *ClientRepo) Update(id int, patch PatchClientItem) (*model.Client, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c, ok := r.store.clients[id]
	if !ok {
		return nil, ErrClientNotFound
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Email != nil {
		c.Email = *patch.Email
	}
	if patch.Company != nil {
		c.Company = patch.Company
	}
	if patch.LinkedinURL != nil {
		c.LinkedinURL = patch.LinkedinURL
	}
	if patch.Phone != nil {
		c.Phone = patch.Phone
	}
	if patch.Notes != nil {
		c.Notes = patch.Notes
	}
	if patch.PreferredChannel != nil {
		c.PreferredChannel = *patch.PreferredChannel
	}
	r.store.clients[id] = c
	return &c, nil
}

// Delete removes the client only. Follow-ups and messages referencing it are
// left orphaned on purpose.
func (r *ClientRepo) Delete(id int) bool {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.clients[id]; !ok {
		return false
	}
	delete(r.store.clients, id)
	return true
}
