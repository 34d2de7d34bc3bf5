package database

import "github.com/japb1998/outreach-crm/internal/model"

type UserRepo struct {
	store *Store
}

func NewUserRepo(store *Store) *UserRepo {
	return &UserRepo{store: store}
}

func (r *UserRepo) Create(user model.User) (model.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.userSeq++
	user.ID = r.store.userSeq
	r.store.users[user.ID] = user
	return user, nil
}

func (r *UserRepo) GetByID(id int) (*model.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	u, ok := r.store.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}

func (r *UserRepo) GetByEmail(email string) (*model.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *UserRepo) GetByUsername(username string) (*model.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}
