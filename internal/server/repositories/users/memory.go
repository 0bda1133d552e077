package users

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/recipeshare/internal/common"
	"github.com/dmitrijs2005/recipeshare/internal/server/models"
)

// MemoryRepository keeps users in a map for the lifetime of the process.
// Uniqueness checks and the id counter share one lock, so two concurrent
// registrations of the same username cannot both succeed.
type MemoryRepository struct {
	mu     sync.RWMutex
	byID   map[int64]*models.User
	order  []int64
	nextID int64
	now    func() time.Time
}

// NewMemoryRepository returns an empty repository; the first user gets id 1.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:   make(map[int64]*models.User),
		nextID: 1,
		now:    time.Now,
	}
}

func (r *MemoryRepository) Create(ctx context.Context, in models.NewUser) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkUnique(0, in); err != nil {
		return nil, err
	}

	user := &models.User{
		ID:          r.nextID,
		Username:    in.Username,
		Email:       in.Email,
		Password:    in.Password,
		IsCorporate: in.IsCorporate,
		CreatedAt:   r.now(),
	}
	r.nextID++

	r.byID[user.ID] = user
	r.order = append(r.order, user.ID)

	c := *user
	return &c, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *u
	return &c, nil
}

func (r *MemoryRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findOne(func(u *models.User) bool { return u.Username == username })
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(func(u *models.User) bool { return u.Email == email })
}

func (r *MemoryRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	return r.filter(func(*models.User) bool { return true }), nil
}

func (r *MemoryRepository) GetCorporate(ctx context.Context) ([]*models.User, error) {
	return r.filter(func(u *models.User) bool { return u.IsCorporate }), nil
}

func (r *MemoryRepository) Update(ctx context.Context, id int64, in models.NewUser) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if err := r.checkUnique(id, in); err != nil {
		return nil, err
	}
	user.Username = in.Username
	user.Email = in.Email
	user.Password = in.Password
	user.IsCorporate = in.IsCorporate

	c := *user
	return &c, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.byID, id)
	r.order = slices.DeleteFunc(r.order, func(v int64) bool { return v == id })
	return nil
}

// checkUnique reports a username or email held by a user other than self.
// The caller holds the write lock.
func (r *MemoryRepository) checkUnique(self int64, in models.NewUser) error {
	for _, id := range r.order {
		if id == self {
			continue
		}
		u := r.byID[id]
		if u.Username == in.Username {
			return ErrUsernameTaken
		}
		if u.Email == in.Email {
			return ErrEmailTaken
		}
	}
	return nil
}

func (r *MemoryRepository) findOne(match func(*models.User) bool) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if u := r.byID[id]; match(u) {
			c := *u
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) filter(match func(*models.User) bool) []*models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.User, 0, len(r.order))
	for _, id := range r.order {
		if u := r.byID[id]; match(u) {
			c := *u
			result = append(result, &c)
		}
	}
	return result
}
