package database

import (
	"sort"
	"time"

	"github.com/japb1998/outreach-crm/internal/model"
)

// PatchMessageItem carries updatable message fields. The store merges
// blindly; keeping SentAt consistent with Status is the caller's job.
type PatchMessageItem struct {
	Status           *string
	SentAt           *time.Time
	ResponseReceived *bool
	ResponseAt       *time.Time
}

type MessageRepo struct {
	store *Store
}

func NewMessageRepo(store *Store) *MessageRepo {
	return &MessageRepo{store: store}
}

// Create assigns id and CreatedAt. Status defaults to draft; a provided
// SentAt is honored so the send coordinator can record the send time in one
// write.
func (r *MessageRepo) Create(message model.Message) (model.Message, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.messageSeq++
	message.ID = r.store.messageSeq
	message.CreatedAt = r.store.now()
	if message.Status == "" {
		message.Status = model.MessageStatusDraft
	}
	r.store.messages[message.ID] = message
	return message, nil
}

func (r *MessageRepo) GetByID(id int) (*model.Message, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	m, ok := r.store.messages[id]
	if !ok {
		return nil, ErrMessageNotFound
	}
	return &m, nil
}

func (r *MessageRepo) ListByOwner(userID int) ([]model.Message, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	list := make([]model.Message, 0)
	for _, m := range r.store.messages {
		if m.UserID == userID {
			list = append(list, m)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *MessageRepo) ListByClient(clientID int) ([]model.Message, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	list := make([]model.Message, 0)
	for _, m := range r.store.messages {
		if m.ClientID == clientID {
			list = append(list, m)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *MessageRepo) Update(id int, patch PatchMessageItem) (*model.Message, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	m, ok := r.store.messages[id]
	if !ok {
		return nil, ErrMessageNotFound
	}
	if patch.Status != nil {
		m.Status = *patch.Status
	}
	if patch.SentAt != nil {
		m.SentAt = patch.SentAt
	}
	if patch.ResponseReceived != nil {
		m.ResponseReceived = *patch.ResponseReceived
	}
	if patch.ResponseAt != nil {
		m.ResponseAt = patch.ResponseAt
	}
	r.store.messages[id] = m
	return &m, nil
}
