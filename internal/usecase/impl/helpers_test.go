package impl

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"sync"

	"learnhub/config"
	"learnhub/internal/domain/entity"
	"learnhub/internal/domain/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	return cfg
}

// fakeUserStore is an in-memory repository.UserRepository with the same matching
// rules as the real stores, used for multi-step identity scenarios.
type fakeUserStore struct {
	mu     sync.Mutex
	users  []*entity.User
	nextID int
}

var _ repository.UserRepository = (*fakeUserStore)(nil)

func (s *fakeUserStore) find(match func(*entity.User) bool) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if match(u) {
			clone := *u

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

// seedLegacy stores a record without an id number, as created before it was required.
func (s *fakeUserStore) seedLegacy(name, phone string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := strconv.Itoa(s.nextID)
	s.users = append(s.users, &entity.User{ID: id, Name: name, Phone: phone})

	return id
}

func (s *fakeUserStore) Create(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Phone == user.Phone {
			return repository.ErrDuplicatePhone
		}
		if user.IDNumber != "" && u.IDNumber == user.IDNumber {
			return repository.ErrDuplicateIDNumber
		}
	}

	s.nextID++
	user.ID = strconv.Itoa(s.nextID)
	clone := *user
	s.users = append(s.users, &clone)

	return nil
}

func (s *fakeUserStore) FindByID(_ context.Context, id string) (*entity.User, error) {
	if _, err := strconv.Atoi(id); err != nil {
		return nil, repository.ErrInvalidID
	}

	return s.find(func(u *entity.User) bool { return u.ID == id })
}

func (s *fakeUserStore) FindByPhone(_ context.Context, phone string) (*entity.User, error) {
	return s.find(func(u *entity.User) bool { return u.Phone == phone })
}

func (s *fakeUserStore) FindByIDNumber(_ context.Context, idNumber string) (*entity.User, error) {
	return s.find(func(u *entity.User) bool { return u.IDNumber != "" && u.IDNumber == idNumber })
}

func (s *fakeUserStore) FindByCredentials(_ context.Context, name, phone, idNumber string) (*entity.User, error) {
	return s.find(func(u *entity.User) bool {
		return u.Name == name && u.Phone == phone && u.IDNumber == idNumber
	})
}

func (s *fakeUserStore) FindLegacy(_ context.Context, name string, phones []string) (*entity.User, error) {
	return s.find(func(u *entity.User) bool {
		return u.Name == name && slices.Contains(phones, u.Phone) && u.IsLegacy()
	})
}

func (s *fakeUserStore) MigrateLegacy(_ context.Context, id, phone, idNumber string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.IDNumber == idNumber {
			return repository.ErrDuplicateIDNumber
		}
		if u.ID != id && u.Phone == phone {
			return repository.ErrDuplicatePhone
		}
	}

	for _, u := range s.users {
		if u.ID == id && u.IsLegacy() {
			u.Phone = phone
			u.IDNumber = idNumber

			return nil
		}
	}

	return repository.ErrUserNotFound
}

func (s *fakeUserStore) List(_ context.Context, page entity.PageRequest) (*entity.Page[*entity.User], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := slices.Clone(s.users)
	start := min(page.Offset(), len(items))
	end := min(start+page.Limit, len(items))

	return &entity.Page[*entity.User]{
		Items: items[start:end],
		Total: int64(len(items)),
		Page:  page.Page,
		Limit: page.Limit,
	}, nil
}
