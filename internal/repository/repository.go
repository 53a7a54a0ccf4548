package repository

import (
	"context"
	"errors"

	"github.com/Anuj3937/DisasterResponse/internal/models"
)

var (
	// ErrNotFound is returned by lookups and updates that reference an
	// id no record carries.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateUsername is returned by CreateUser when the username
	// is already taken.
	ErrDuplicateUsername = errors.New("username already taken")
)

// Store is the persistence contract shared by the memory and sqlite
// backends. Ids are assigned by the store starting at 1 per entity kind
// and are never reused. List results come back in insertion order, and
// every returned record is a copy the caller may hold freely.
type Store interface {
	CreateUser(ctx context.Context, in models.InsertUser) (models.User, error)
	GetUser(ctx context.Context, id int) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)

	CreateDisaster(ctx context.Context, in models.InsertDisaster) (models.Disaster, error)
	GetDisaster(ctx context.Context, id int) (models.Disaster, error)
	ListDisasters(ctx context.Context) ([]models.Disaster, error)

	CreateNewsItem(ctx context.Context, in models.InsertNews) (models.News, error)
	GetNewsItem(ctx context.Context, id int) (models.News, error)
	ListNews(ctx context.Context) ([]models.News, error)

	CreateVolunteer(ctx context.Context, in models.InsertVolunteer) (models.Volunteer, error)
	GetVolunteer(ctx context.Context, id int) (models.Volunteer, error)
	ListVolunteers(ctx context.Context) ([]models.Volunteer, error)

	CreateHelpRequest(ctx context.Context, in models.InsertHelpRequest) (models.HelpRequest, error)
	GetHelpRequest(ctx context.Context, id int) (models.HelpRequest, error)
	ListHelpRequests(ctx context.Context) ([]models.HelpRequest, error)
	// UpdateHelpRequestStatus trusts the caller to have validated status
	// against the three allowed values.
	UpdateHelpRequestStatus(ctx context.Context, id int, status models.HelpStatus) (models.HelpRequest, error)

	Close() error
}
