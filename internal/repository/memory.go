package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Anuj3937/DisasterResponse/internal/models"
)

// table holds the records of one entity kind. The id counter only moves
// on an actual insert, so ids are gapless and strictly increasing for
// the lifetime of the process. The mutex keeps id assignment and the
// insert itself atomic under gin's concurrent handlers.
type table[R any] struct {
	mu     sync.Mutex
	nextID int
	rows   map[int]R
	order  []int
}

func newTable[R any]() *table[R] {
	return &table[R]{nextID: 1, rows: make(map[int]R)}
}

func (t *table[R]) insert(build func(id int) R) R {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.insertLocked(build)
}

func (t *table[R]) insertLocked(build func(id int) R) R {
	id := t.nextID
	t.nextID++
	r := build(id)
	t.rows[id] = r
	t.order = append(t.order, id)
	return r
}

// insertWhen inserts only if no existing row matches conflict, all under
// one lock so two racing inserts cannot both pass the check.
func (t *table[R]) insertWhen(conflict func(R) bool, build func(id int) R) (R, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, id := range t.order {
		if conflict(t.rows[id]) {
			var zero R
			return zero, false
		}
	}
	return t.insertLocked(build), true
}

func (t *table[R]) get(id int) (R, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	r, ok := t.rows[id]
	return r, ok
}

func (t *table[R]) find(match func(R) bool) (R, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, id := range t.order {
		if match(t.rows[id]) {
			return t.rows[id], true
		}
	}
	var zero R
	return zero, false
}

func (t *table[R]) list() []R {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]R, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id])
	}
	return out
}

func (t *table[R]) update(id int, apply func(R) R) (R, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	r, ok := t.rows[id]
	if !ok {
		var zero R
		return zero, false
	}
	r = apply(r)
	t.rows[id] = r
	return r, true
}

// MemStore is the default Store backend: process-local, non-durable,
// one table per entity kind.
type MemStore struct {
	users        *table[models.User]
	disasters    *table[models.Disaster]
	news         *table[models.News]
	volunteers   *table[models.Volunteer]
	helpRequests *table[models.HelpRequest]
}

func NewMemStore() *MemStore {
	return &MemStore{
		users:        newTable[models.User](),
		disasters:    newTable[models.Disaster](),
		news:         newTable[models.News](),
		volunteers:   newTable[models.Volunteer](),
		helpRequests: newTable[models.HelpRequest](),
	}
}

func (s *MemStore) CreateUser(ctx context.Context, in models.InsertUser) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hashing password: %w", err)
	}
	u, ok := s.users.insertWhen(
		func(existing models.User) bool { return existing.Username == in.Username },
		func(id int) models.User {
			return models.User{ID: id, Username: in.Username, Password: string(hash)}
		},
	)
	if !ok {
		return models.User{}, ErrDuplicateUsername
	}
	return u, nil
}

func (s *MemStore) GetUser(ctx context.Context, id int) (models.User, error) {
	u, ok := s.users.get(id)
	if !ok {
		return models.User{}, ErrNotFound
	}
	return u, nil
}

func (s *MemStore) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	u, ok := s.users.find(func(u models.User) bool { return u.Username == username })
	if !ok {
		return models.User{}, ErrNotFound
	}
	return u, nil
}

func (s *MemStore) CreateDisaster(ctx context.Context, in models.InsertDisaster) (models.Disaster, error) {
	d := s.disasters.insert(func(id int) models.Disaster {
		return models.Disaster{
			ID:       id,
			Lat:      *in.Lat,
			Lng:      *in.Lng,
			Type:     in.Type,
			Severity: in.Severity,
			Details:  in.Details,
		}
	})
	return d, nil
}

func (s *MemStore) GetDisaster(ctx context.Context, id int) (models.Disaster, error) {
	d, ok := s.disasters.get(id)
	if !ok {
		return models.Disaster{}, ErrNotFound
	}
	return d, nil
}

func (s *MemStore) ListDisasters(ctx context.Context) ([]models.Disaster, error) {
	return s.disasters.list(), nil
}

func (s *MemStore) CreateNewsItem(ctx context.Context, in models.InsertNews) (models.News, error) {
	n := s.news.insert(func(id int) models.News {
		return models.News{
			ID:        id,
			Title:     in.Title,
			Content:   in.Content,
			Category:  in.Category,
			Timestamp: time.Now().UTC(),
		}
	})
	return n, nil
}

func (s *MemStore) GetNewsItem(ctx context.Context, id int) (models.News, error) {
	n, ok := s.news.get(id)
	if !ok {
		return models.News{}, ErrNotFound
	}
	return n, nil
}

func (s *MemStore) ListNews(ctx context.Context) ([]models.News, error) {
	return s.news.list(), nil
}

func (s *MemStore) CreateVolunteer(ctx context.Context, in models.InsertVolunteer) (models.Volunteer, error) {
	v := s.volunteers.insert(func(id int) models.Volunteer {
		return models.Volunteer{
			ID:           id,
			Name:         in.Name,
			Email:        in.Email,
			Phone:        in.Phone,
			Skills:       in.Skills,
			Availability: in.Availability,
		}
	})
	return v, nil
}

func (s *MemStore) GetVolunteer(ctx context.Context, id int) (models.Volunteer, error) {
	v, ok := s.volunteers.get(id)
	if !ok {
		return models.Volunteer{}, ErrNotFound
	}
	return v, nil
}

func (s *MemStore) ListVolunteers(ctx context.Context) ([]models.Volunteer, error) {
	return s.volunteers.list(), nil
}

func (s *MemStore) CreateHelpRequest(ctx context.Context, in models.InsertHelpRequest) (models.HelpRequest, error) {
	hr := s.helpRequests.insert(func(id int) models.HelpRequest {
		return models.HelpRequest{
			ID:            id,
			Name:          in.Name,
			Location:      in.Location,
			Phone:         in.Phone,
			EmergencyType: in.EmergencyType,
			Details:       in.Details,
			People:        *in.People,
			Status:        models.HelpStatusPending,
			Timestamp:     time.Now().UTC(),
		}
	})
	return hr, nil
}

func (s *MemStore) GetHelpRequest(ctx context.Context, id int) (models.HelpRequest, error) {
	hr, ok := s.helpRequests.get(id)
	if !ok {
		return models.HelpRequest{}, ErrNotFound
	}
	return hr, nil
}

func (s *MemStore) ListHelpRequests(ctx context.Context) ([]models.HelpRequest, error) {
	return s.helpRequests.list(), nil
}

func (s *MemStore) UpdateHelpRequestStatus(ctx context.Context, id int, status models.HelpStatus) (models.HelpRequest, error) {
	hr, ok := s.helpRequests.update(id, func(hr models.HelpRequest) models.HelpRequest {
		hr.Status = status
		return hr
	})
	if !ok {
		return models.HelpRequest{}, ErrNotFound
	}
	return hr, nil
}

func (s *MemStore) Close() error {
	return nil
}
