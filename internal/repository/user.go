package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spotifaux/spotifaux-go/internal/model"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserRepository holds user records in memory and writes the full set back
// to its JSON file on every change.
type UserRepository struct {
	mu      sync.RWMutex
	path    string
	users   []model.User
	byEmail map[string]int
}

// LoadUserRepository reads users from path. A missing or malformed file is an error.
func LoadUserRepository(path string) (*UserRepository, error) {
	var users []model.User
	if err := readJSONFile(path, &users); err != nil {
		return nil, fmt.Errorf("loading users: %w", err)
	}

	r := &UserRepository{path: path}
	r.setUsers(users)
	return r, nil
}

// NewUserRepository creates an empty repository that persists to path.
func NewUserRepository(path string) *UserRepository {
	r := &UserRepository{path: path}
	r.setUsers(nil)
	return r
}

// Create assigns the next ID to user, appends it and persists the full user set.
// The email is normalized before the uniqueness check.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.Email = normalizeEmail(user.Email)
	if _, exists := r.byEmail[user.Email]; exists {
		return ErrDuplicateEmail
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	created := *user
	created.ID = r.nextID()

	users := make([]model.User, len(r.users), len(r.users)+1)
	copy(users, r.users)
	users = append(users, created)

	if err := writeJSONFile(r.path, users); err != nil {
		return err
	}

	r.setUsers(users)
	user.ID = created.ID
	return nil
}

// GetByEmail retrieves a user by email address, ignoring case and surrounding space.
func (r *UserRepository) GetByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, ErrUserNotFound
	}
	u := r.users[i]
	return &u, nil
}

// GetByID retrieves a user by their ID.
func (r *UserRepository) GetByID(_ context.Context, id int64) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

// Count returns the number of stored users.
func (r *UserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

// setUsers must be called with the write lock held (or before the repository is shared).
func (r *UserRepository) setUsers(users []model.User) {
	if users == nil {
		users = []model.User{}
	}
	r.users = users
	r.byEmail = make(map[string]int, len(users))
	for i, u := range users {
		r.byEmail[normalizeEmail(u.Email)] = i
	}
}

func (r *UserRepository) nextID() int64 {
	var maxID int64
	for _, u := range r.users {
		if u.ID > maxID {
			maxID = u.ID
		}
	}
	return maxID + 1
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
