package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/Anuj3937/DisasterResponse/internal/models"
)

func setupTestDB(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_CreateAndGetDisaster(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	created, err := store.CreateDisaster(ctx, insertDisaster(34.05, -118.24, "Wildfire", models.SeverityHigh, "Wildfire in LA County"))
	if err != nil {
		t.Fatalf("CreateDisaster failed: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected first id 1, got %d", created.ID)
	}

	got, err := store.GetDisaster(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetDisaster failed: %v", err)
	}
	if got != created {
		t.Errorf("expected %+v, got %+v", created, got)
	}
}

func TestSQLiteStore_GetDisaster_NotFound(t *testing.T) {
	store := setupTestDB(t)

	_, err := store.GetDisaster(context.Background(), 999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLiteStore_IDsStrictlyIncrease(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	prev := 0
	for i := 0; i < 4; i++ {
		d, err := store.CreateDisaster(ctx, insertDisaster(0, 0, "Storm", models.SeverityLow, "test"))
		if err != nil {
			t.Fatalf("CreateDisaster failed: %v", err)
		}
		if d.ID <= prev {
			t.Errorf("expected id > %d, got %d", prev, d.ID)
		}
		prev = d.ID
	}
}

func TestSQLiteStore_NewsTimestampRoundTrip(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	created, err := store.CreateNewsItem(ctx, models.InsertNews{
		Title:    "Flood Recovery",
		Content:  "Water levels receding",
		Category: "Flood",
	})
	if err != nil {
		t.Fatalf("CreateNewsItem failed: %v", err)
	}
	if created.Timestamp.IsZero() {
		t.Fatal("expected server-assigned timestamp")
	}

	got, err := store.GetNewsItem(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetNewsItem failed: %v", err)
	}
	if !got.Timestamp.Equal(created.Timestamp) {
		t.Errorf("timestamp changed across round trip: %v vs %v", created.Timestamp, got.Timestamp)
	}
}

func TestSQLiteStore_VolunteerRoundTrip(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	created, err := store.CreateVolunteer(ctx, models.InsertVolunteer{
		Name:         "Jordan Lee",
		Email:        "jordan@example.org",
		Phone:        "555-0100-221",
		Skills:       "first aid, logistics",
		Availability: "weekends",
	})
	if err != nil {
		t.Fatalf("CreateVolunteer failed: %v", err)
	}

	got, err := store.GetVolunteer(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetVolunteer failed: %v", err)
	}
	if got != created {
		t.Errorf("expected %+v, got %+v", created, got)
	}

	volunteers, err := store.ListVolunteers(ctx)
	if err != nil {
		t.Fatalf("ListVolunteers failed: %v", err)
	}
	if len(volunteers) != 1 {
		t.Errorf("expected 1 volunteer, got %d", len(volunteers))
	}
}

func TestSQLiteStore_UpdateHelpRequestStatus(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	hr, err := store.CreateHelpRequest(ctx, insertHelpRequest("Alex Rivera"))
	if err != nil {
		t.Fatalf("CreateHelpRequest failed: %v", err)
	}
	if hr.Status != models.HelpStatusPending {
		t.Fatalf("expected initial status pending, got %s", hr.Status)
	}

	updated, err := store.UpdateHelpRequestStatus(ctx, hr.ID, models.HelpStatusAssigned)
	if err != nil {
		t.Fatalf("UpdateHelpRequestStatus failed: %v", err)
	}
	if updated.Status != models.HelpStatusAssigned {
		t.Errorf("expected status assigned, got %s", updated.Status)
	}

	_, err = store.UpdateHelpRequestStatus(ctx, 999, models.HelpStatusResolved)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown id, got %v", err)
	}

	requests, err := store.ListHelpRequests(ctx)
	if err != nil {
		t.Fatalf("ListHelpRequests failed: %v", err)
	}
	if len(requests) != 1 || requests[0].Status != models.HelpStatusAssigned {
		t.Errorf("unexpected help request list: %+v", requests)
	}
}

func TestSQLiteStore_CreateUser_DuplicateUsername(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	if _, err := store.CreateUser(ctx, models.InsertUser{Username: "dispatch", Password: "password-one"}); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	_, err := store.CreateUser(ctx, models.InsertUser{Username: "dispatch", Password: "password-two"})
	if !errors.Is(err, ErrDuplicateUsername) {
		t.Errorf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestSQLiteStore_Seed(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	if err := Seed(ctx, store); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	disasters, err := store.ListDisasters(ctx)
	if err != nil {
		t.Fatalf("ListDisasters failed: %v", err)
	}
	if len(disasters) != 8 {
		t.Errorf("expected 8 seeded disasters, got %d", len(disasters))
	}

	news, err := store.ListNews(ctx)
	if err != nil {
		t.Fatalf("ListNews failed: %v", err)
	}
	if len(news) != 4 {
		t.Errorf("expected 4 seeded news items, got %d", len(news))
	}
}
