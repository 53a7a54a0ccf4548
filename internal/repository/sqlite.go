package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"

	"github.com/Anuj3937/DisasterResponse/internal/models"
)

// SQLiteStore implements Store on a SQLite database. With the default
// ":memory:" path it behaves like MemStore (state dies with the
// process); pointing DB_PATH at a file gives an on-disk database
// without touching the rest of the stack.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// A ":memory:" database exists per connection, so the pool must stay
	// on a single one. SQLite serializes writers anyway.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error while pinging database: %w", err)
	}

	s := &SQLiteStore{
		db: db,
	}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("error while migrating database: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS disasters (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			lat REAL NOT NULL,
			lng REAL NOT NULL,
			type TEXT NOT NULL,
			severity TEXT NOT NULL,
			details TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS news (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			category TEXT NOT NULL,
			timestamp DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS volunteers (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL,
			skills TEXT NOT NULL,
			availability TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS help_requests (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			location TEXT NOT NULL,
			phone TEXT NOT NULL,
			emergency_type TEXT NOT NULL,
			details TEXT NOT NULL,
			people INTEGER NOT NULL,
			status TEXT NOT NULL,
			timestamp DATETIME NOT NULL
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) CreateUser(ctx context.Context, in models.InsertUser) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hashing password: %w", err)
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (username, password) VALUES (?, ?)`,
		in.Username, string(hash))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return models.User{}, ErrDuplicateUsername
		}
		return models.User{}, fmt.Errorf("inserting user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, fmt.Errorf("reading user id: %w", err)
	}
	return models.User{ID: int(id), Username: in.Username, Password: string(hash)}, nil
}

func (s *SQLiteStore) GetUser(ctx context.Context, id int) (models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, password FROM users WHERE id = ?`, id).
		Scan(&u.ID, &u.Username, &u.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("querying user: %w", err)
	}
	return u, nil
}

func (s *SQLiteStore) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, password FROM users WHERE username = ?`, username).
		Scan(&u.ID, &u.Username, &u.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("querying user: %w", err)
	}
	return u, nil
}

func (s *SQLiteStore) CreateDisaster(ctx context.Context, in models.InsertDisaster) (models.Disaster, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO disasters (lat, lng, type, severity, details) VALUES (?, ?, ?, ?, ?)`,
		*in.Lat, *in.Lng, in.Type, string(in.Severity), in.Details)
	if err != nil {
		return models.Disaster{}, fmt.Errorf("inserting disaster: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Disaster{}, fmt.Errorf("reading disaster id: %w", err)
	}
	return models.Disaster{
		ID:       int(id),
		Lat:      *in.Lat,
		Lng:      *in.Lng,
		Type:     in.Type,
		Severity: in.Severity,
		Details:  in.Details,
	}, nil
}

func (s *SQLiteStore) GetDisaster(ctx context.Context, id int) (models.Disaster, error) {
	var d models.Disaster
	err := s.db.QueryRowContext(ctx,
		`SELECT id, lat, lng, type, severity, details FROM disasters WHERE id = ?`, id).
		Scan(&d.ID, &d.Lat, &d.Lng, &d.Type, &d.Severity, &d.Details)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Disaster{}, ErrNotFound
	}
	if err != nil {
		return models.Disaster{}, fmt.Errorf("querying disaster: %w", err)
	}
	return d, nil
}

func (s *SQLiteStore) ListDisasters(ctx context.Context) ([]models.Disaster, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, lat, lng, type, severity, details FROM disasters ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing disasters: %w", err)
	}
	defer rows.Close()

	out := []models.Disaster{}
	for rows.Next() {
		var d models.Disaster
		if err := rows.Scan(&d.ID, &d.Lat, &d.Lng, &d.Type, &d.Severity, &d.Details); err != nil {
			return nil, fmt.Errorf("scanning disaster: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) CreateNewsItem(ctx context.Context, in models.InsertNews) (models.News, error) {
	ts := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO news (title, content, category, timestamp) VALUES (?, ?, ?, ?)`,
		in.Title, in.Content, in.Category, ts)
	if err != nil {
		return models.News{}, fmt.Errorf("inserting news item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.News{}, fmt.Errorf("reading news id: %w", err)
	}
	return models.News{
		ID:        int(id),
		Title:     in.Title,
		Content:   in.Content,
		Category:  in.Category,
		Timestamp: ts,
	}, nil
}

func (s *SQLiteStore) GetNewsItem(ctx context.Context, id int) (models.News, error) {
	var n models.News
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, content, category, timestamp FROM news WHERE id = ?`, id).
		Scan(&n.ID, &n.Title, &n.Content, &n.Category, &n.Timestamp)
	if errors.Is(err, sql.ErrNoRows) {
		return models.News{}, ErrNotFound
	}
	if err != nil {
		return models.News{}, fmt.Errorf("querying news item: %w", err)
	}
	return n, nil
}

func (s *SQLiteStore) ListNews(ctx context.Context) ([]models.News, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, content, category, timestamp FROM news ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing news: %w", err)
	}
	defer rows.Close()

	out := []models.News{}
	for rows.Next() {
		var n models.News
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.Category, &n.Timestamp); err != nil {
			return nil, fmt.Errorf("scanning news item: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) CreateVolunteer(ctx context.Context, in models.InsertVolunteer) (models.Volunteer, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO volunteers (name, email, phone, skills, availability) VALUES (?, ?, ?, ?, ?)`,
		in.Name, in.Email, in.Phone, in.Skills, in.Availability)
	if err != nil {
		return models.Volunteer{}, fmt.Errorf("inserting volunteer: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Volunteer{}, fmt.Errorf("reading volunteer id: %w", err)
	}
	return models.Volunteer{
		ID:           int(id),
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		Skills:       in.Skills,
		Availability: in.Availability,
	}, nil
}

func (s *SQLiteStore) GetVolunteer(ctx context.Context, id int) (models.Volunteer, error) {
	var v models.Volunteer
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, email, phone, skills, availability FROM volunteers WHERE id = ?`, id).
		Scan(&v.ID, &v.Name, &v.Email, &v.Phone, &v.Skills, &v.Availability)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Volunteer{}, ErrNotFound
	}
	if err != nil {
		return models.Volunteer{}, fmt.Errorf("querying volunteer: %w", err)
	}
	return v, nil
}

func (s *SQLiteStore) ListVolunteers(ctx context.Context) ([]models.Volunteer, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, email, phone, skills, availability FROM volunteers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing volunteers: %w", err)
	}
	defer rows.Close()

	out := []models.Volunteer{}
	for rows.Next() {
		var v models.Volunteer
		if err := rows.Scan(&v.ID, &v.Name, &v.Email, &v.Phone, &v.Skills, &v.Availability); err != nil {
			return nil, fmt.Errorf("scanning volunteer: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) CreateHelpRequest(ctx context.Context, in models.InsertHelpRequest) (models.HelpRequest, error) {
	ts := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO help_requests (name, location, phone, emergency_type, details, people, status, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		in.Name, in.Location, in.Phone, in.EmergencyType, in.Details, *in.People,
		string(models.HelpStatusPending), ts)
	if err != nil {
		return models.HelpRequest{}, fmt.Errorf("inserting help request: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.HelpRequest{}, fmt.Errorf("reading help request id: %w", err)
	}
	return models.HelpRequest{
		ID:            int(id),
		Name:          in.Name,
		Location:      in.Location,
		Phone:         in.Phone,
		EmergencyType: in.EmergencyType,
		Details:       in.Details,
		People:        *in.People,
		Status:        models.HelpStatusPending,
		Timestamp:     ts,
	}, nil
}

func (s *SQLiteStore) GetHelpRequest(ctx context.Context, id int) (models.HelpRequest, error) {
	var hr models.HelpRequest
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, location, phone, emergency_type, details, people, status, timestamp
		 FROM help_requests WHERE id = ?`, id).
		Scan(&hr.ID, &hr.Name, &hr.Location, &hr.Phone, &hr.EmergencyType,
			&hr.Details, &hr.People, &hr.Status, &hr.Timestamp)
	if errors.Is(err, sql.ErrNoRows) {
		return models.HelpRequest{}, ErrNotFound
	}
	if err != nil {
		return models.HelpRequest{}, fmt.Errorf("querying help request: %w", err)
	}
	return hr, nil
}

func (s *SQLiteStore) ListHelpRequests(ctx context.Context) ([]models.HelpRequest, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, location, phone, emergency_type, details, people, status, timestamp
		 FROM help_requests ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing help requests: %w", err)
	}
	defer rows.Close()

	out := []models.HelpRequest{}
	for rows.Next() {
		var hr models.HelpRequest
		if err := rows.Scan(&hr.ID, &hr.Name, &hr.Location, &hr.Phone, &hr.EmergencyType,
			&hr.Details, &hr.People, &hr.Status, &hr.Timestamp); err != nil {
			return nil, fmt.Errorf("scanning help request: %w", err)
		}
		out = append(out, hr)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) UpdateHelpRequestStatus(ctx context.Context, id int, status models.HelpStatus) (models.HelpRequest, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE help_requests SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return models.HelpRequest{}, fmt.Errorf("updating help request status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.HelpRequest{}, fmt.Errorf("reading rows affected: %w", err)
	}
	if affected == 0 {
		return models.HelpRequest{}, ErrNotFound
	}
	return s.GetHelpRequest(ctx, id)
}
