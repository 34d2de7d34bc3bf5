package database

import (
	"sort"
	"time"

	"github.com/japb1998/outreach-crm/internal/model"
)

// PatchFollowUpItem carries updatable follow-up fields. Status and SentAt
// are deliberately absent: the pending -> sent transition goes through
// MarkSent only.
type PatchFollowUpItem struct {
	Subject      *string
	Content      *string
	Context      *string
	Channel      *string
	Priority     *string
	ScheduledFor *time.Time
	TemplateID   *int
}

type FollowUpRepo struct {
	store *Store
}

func NewFollowUpRepo(store *Store) *FollowUpRepo {
	return &FollowUpRepo{store: store}
}

func (r *FollowUpRepo) Create(followUp model.FollowUp) (model.FollowUp, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.followUpSeq++
	followUp.ID = r.store.followUpSeq
	followUp.CreatedAt = r.store.now()
	if followUp.Status == "" {
		followUp.Status = model.FollowUpStatusPending
	}
	if followUp.Priority == "" {
		followUp.Priority = model.PriorityMedium
	}
	followUp.SentAt = nil
	r.store.followUps[followUp.ID] = followUp
	return followUp, nil
}

func (r *FollowUpRepo) GetByID(id int) (*model.FollowUp, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	f, ok := r.store.followUps[id]
	if !ok {
		return nil, ErrFollowUpNotFound
	}
	return &f, nil
}

func (r *FollowUpRepo) ListByOwner(userID int) ([]model.FollowUp, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	list := make([]model.FollowUp, 0)
	for _, f := range r.store.followUps {
		if f.UserID == userID {
			list = append(list, f)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// UpcomingByOwner returns pending follow-ups scheduled now or later,
// ascending by due time. Equal due times keep id order.
func (r *FollowUpRepo) UpcomingByOwner(userID int) ([]model.FollowUp, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	now := r.store.now()
	list := make([]model.FollowUp, 0)
	for _, f := range r.store.followUps {
		if f.UserID == userID && f.Status == model.FollowUpStatusPending && !f.ScheduledFor.Before(now) {
			list = append(list, f)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].ScheduledFor.Equal(list[j].ScheduledFor) {
			return list[i].ID < list[j].ID
		}
		return list[i].ScheduledFor.Before(list[j].ScheduledFor)
	})
	return list, nil
}

// OverdueByOwner returns pending follow-ups whose due time has passed.
// Overdue is derived here on every read, never written back.
func (r *FollowUpRepo) OverdueByOwner(userID int) ([]model.FollowUp, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	now := r.store.now()
	list := make([]model.FollowUp, 0)
	for _, f := range r.store.followUps {
		if f.UserID == userID && f.Status == model.FollowUpStatusPending && f.ScheduledFor.Before(now) {
			list = append(list, f)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *FollowUpRepo) Update(id int, patch PatchFollowUpItem) (*model.FollowUp, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	f, ok := r.store.followUps[id]
	if !ok {
		return nil, ErrFollowUpNotFound
	}
	if patch.Subject != nil {
		f.Subject = *patch.Subject
	}
	if patch.Content != nil {
		f.Content = patch.Content
	}
	if patch.Context != nil {
		f.Context = patch.Context
	}
	if patch.Channel != nil {
		f.Channel = *patch.Channel
	}
	if patch.Priority != nil {
		f.Priority = *patch.Priority
	}
	if patch.ScheduledFor != nil {
		f.ScheduledFor = *patch.ScheduledFor
	}
	if patch.TemplateID != nil {
		f.TemplateID = patch.TemplateID
	}
	r.store.followUps[id] = f
	return &f, nil
}

// MarkSent performs the one-way pending -> sent transition and stamps
// SentAt. Already-sent follow-ups are returned unchanged.
func (r *FollowUpRepo) MarkSent(id int, sentAt time.Time) (*model.FollowUp, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	f, ok := r.store.followUps[id]
	if !ok {
		return nil, ErrFollowUpNotFound
	}
	if f.Status != model.FollowUpStatusSent {
		f.Status = model.FollowUpStatusSent
		f.SentAt = &sentAt
		r.store.followUps[id] = f
	}
	return &f, nil
}

func (r *FollowUpRepo) Delete(id int) bool {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.followUps[id]; !ok {
		return false
	}
	delete(r.store.followUps, id)
	return true
}
