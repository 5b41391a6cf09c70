package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/skillsenselab/userd/auth"
	"github.com/skillsenselab/userd/observability"
)

// MemoryStore is a mutex-guarded in-memory UserStore.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]*User // by id
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]*User)}
}

func (s *MemoryStore) FindByEmail(_ context.Context, email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) FindByID(_ context.Context, id string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *MemoryStore) Insert(_ context.Context, u *User) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == u.Email {
			return "", ErrDuplicateEmail
		}
	}

	cp := *u
	if cp.ID == "" {
		cp.ID = uuid.New().String()
	}
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now()
	}
	if cp.Role == "" {
		cp.Role = auth.RoleUser
	}
	s.users[cp.ID] = &cp
	return cp.ID, nil
}

func (s *MemoryStore) UpdateFields(_ context.Context, id string, fields map[string]string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "firstName":
			u.FirstName = v
		case "lastName":
			u.LastName = v
		case "address":
			u.Address = v
		case "phone":
			u.Phone = v
		}
	}
	cp := *u
	return &cp, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	delete(s.users, id)
	return u, nil
}

func (s *MemoryStore) ToggleStatus(_ context.Context, id string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	u.Active = !u.Active
	cp := *u
	return &cp, nil
}

// CheckHealth reports the store as up with the current user count.
func (s *MemoryStore) CheckHealth(_ context.Context) observability.Health {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return observability.Health{
		Name:    "store",
		Status:  observability.HealthStatusUp,
		Details: map[string]string{"users": fmt.Sprintf("%d", len(s.users))},
	}
}

func (s *MemoryStore) List(_ context.Context, limit, offset int) ([]User, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]User, 0, len(s.users))
	for _, u := range s.users {
		all = append(all, *u)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID < all[j].ID
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	total := len(all)
	if offset >= total {
		return []User{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}
