// Package database holds the in-memory record store and the per-entity
// repositories built on top of it. All collections live in one process;
// nothing is durable across restarts.
package database

import (
	"errors"
	"sync"
	"time"

	"github.com/japb1998/outreach-crm/internal/model"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrClientNotFound   = errors.New("client not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrFollowUpNotFound = errors.New("follow-up not found")
	ErrMessageNotFound  = errors.New("message not found")
)

// Store owns every collection plus its id counter. Ids are assigned
// monotonically per collection starting at 1 and are never reused, even
// after deletes. A single RWMutex serializes access since gin runs handlers
// on multiple goroutines.
type Store struct {
	mu sync.RWMutex

	users     map[int]model.User
	clients   map[int]model.Client
	templates map[int]model.Template
	followUps map[int]model.FollowUp
	messages  map[int]model.Message

	userSeq     int
	clientSeq   int
	templateSeq int
	followUpSeq int
	messageSeq  int
}

func NewStore() *Store {
	return &Store{
		users:     make(map[int]model.User),
		clients:   make(map[int]model.Client),
		templates: make(map[int]model.Template),
		followUps: make(map[int]model.FollowUp),
		messages:  make(map[int]model.Message),
	}
}

func (s *Store) now() time.Time {
	return time.Now().UTC()
}
