/*
Package sqlite provides SQLite-backed persistence for the dashboard.

PURPOSE:
  Stores the rows the scheduling engine reads: clinics, projects, posts,
  plus the plain bookkeeping records (leads, payments). The engine itself
  never touches this package - handlers fetch rows here and hand plain
  values to the schedule package.

KEY TABLES:
  clinics:   Client clinics
  projects:  Website/content projects, one clinic to many projects
  posts:     Produced content items, one project to many posts
  leads:     Inbound sales leads
  payments:  Payment records (amounts stored as decimal strings)

ORDERING CONTRACT:
  posts.seq is an AUTOINCREMENT sequence. Every post listing orders by seq
  ascending. The allocation engine assigns weekdays in exactly the order
  this store returns, so seq order IS the schedule order.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. In production with PostgreSQL,
  database-level concurrency control handles this instead.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

USAGE:
  store, err := sqlite.New("./data/opsboard.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper
  migration tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - schedule/types.go: The value types these rows hydrate into
  - api/handlers.go: The only caller
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/studiopulse/opsboard/schedule"
)

// Store wraps the SQLite handle.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS clinics (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT,
		phone TEXT,
		city TEXT,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS projects (
		id TEXT PRIMARY KEY,
		clinic_id TEXT NOT NULL REFERENCES clinics(id),
		name TEXT NOT NULL,
		status TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_projects_clinic
		ON projects(clinic_id);

	-- seq is the explicit schedule order: listings ORDER BY seq and the
	-- allocation engine maps weekdays in that order.
	CREATE TABLE IF NOT EXISTS posts (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		project_id TEXT NOT NULL REFERENCES projects(id),
		target_month TEXT NOT NULL,
		image_ref TEXT,
		caption TEXT,
		status TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_posts_project_month
		ON posts(project_id, target_month);

	CREATE TABLE IF NOT EXISTS leads (
		id TEXT PRIMARY KEY,
		clinic_name TEXT NOT NULL,
		contact TEXT,
		email TEXT,
		phone TEXT,
		source TEXT,
		status TEXT NOT NULL,
		notes TEXT,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS payments (
		id TEXT PRIMARY KEY,
		clinic_id TEXT NOT NULL REFERENCES clinics(id),
		amount TEXT NOT NULL,
		currency TEXT NOT NULL,
		method TEXT,
		reference TEXT,
		paid_at TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_payments_clinic
		ON payments(clinic_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// CLINICS
// =============================================================================

// Clinic is a client record.
type Clinic struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	City      string
	CreatedAt time.Time
}

// SaveClinic inserts or updates a clinic.
func (s *Store) SaveClinic(ctx context.Context, c Clinic) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO clinics (id, name, email, phone, city, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			email = excluded.email,
			phone = excluded.phone,
			city = excluded.city
	`

	createdAt := c.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, query,
		c.ID, c.Name, c.Email, c.Phone, c.City,
		createdAt.Format(time.RFC3339),
	)
	return err
}

// GetClinic retrieves a clinic by ID. Returns (nil, nil) when absent.
func (s *Store) GetClinic(ctx context.Context, id string) (*Clinic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var c Clinic
	var createdAt string

	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, email, phone, city, created_at FROM clinics WHERE id = ?",
		id,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.City, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &c, nil
}

// ListClinics returns all clinics ordered by name.
func (s *Store) ListClinics(ctx context.Context) ([]Clinic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, email, phone, city, created_at FROM clinics ORDER BY name",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clinics []Clinic
	for rows.Next() {
		var c Clinic
		var createdAt string
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.City, &createdAt); err != nil {
			return nil, err
		}
		c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		clinics = append(clinics, c)
	}
	return clinics, rows.Err()
}

// DeleteClinic removes a clinic.
func (s *Store) DeleteClinic(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM clinics WHERE id = ?", id)
	return err
}

// =============================================================================
// PROJECTS
// =============================================================================

// SaveProject inserts or updates a project. CreatedAt is written once on
// insert and never touched on update - it anchors the launch date.
func (s *Store) SaveProject(ctx context.Context, p schedule.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO projects (id, clinic_id, name, status, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			clinic_id = excluded.clinic_id,
			name = excluded.name,
			status = excluded.status
	`

	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, query,
		p.ID, p.ClinicID, p.Name, string(p.Status),
		createdAt.Format(time.RFC3339),
	)
	return err
}

// GetProject retrieves a project by ID. Returns (nil, nil) when absent.
func (s *Store) GetProject(ctx context.Context, id string) (*schedule.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var p schedule.Project
	var status, createdAt string

	err := s.db.QueryRowContext(ctx,
		"SELECT id, clinic_id, name, status, created_at FROM projects WHERE id = ?",
		id,
	).Scan(&p.ID, &p.ClinicID, &p.Name, &status, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	p.Status = schedule.ProjectStatus(status)
	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &p, nil
}

// ListProjectsByClinic returns a clinic's projects ordered by creation
// time ascending. The folder indexer applies its own final sort.
func (s *Store) ListProjectsByClinic(ctx context.Context, clinicID string) ([]schedule.Project, error) {
	return s.queryProjects(ctx,
		"SELECT id, clinic_id, name, status, created_at FROM projects WHERE clinic_id = ? ORDER BY created_at",
		clinicID,
	)
}

// ListProjects returns all projects ordered by creation time ascending.
func (s *Store) ListProjects(ctx context.Context) ([]schedule.Project, error) {
	return s.queryProjects(ctx,
		"SELECT id, clinic_id, name, status, created_at FROM projects ORDER BY created_at",
	)
}

func (s *Store) queryProjects(ctx context.Context, query string, args ...any) ([]schedule.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []schedule.Project
	for rows.Next() {
		var p schedule.Project
		var status, createdAt string
		if err := rows.Scan(&p.ID, &p.ClinicID, &p.Name, &status, &createdAt); err != nil {
			return nil, err
		}
		p.Status = schedule.ProjectStatus(status)
		p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// DeleteProject removes a project and its posts.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, "DELETE FROM posts WHERE project_id = ?", id); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	return err
}

// =============================================================================
// POSTS
// =============================================================================

// CreatePost inserts a post and returns it with the assigned seq.
func (s *Store) CreatePost(ctx context.Context, item schedule.ContentItem) (schedule.ContentItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	createdAt := item.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	item.CreatedAt = createdAt

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO posts (id, project_id, target_month, image_ref, caption, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.ProjectID, item.TargetMonth, item.ImageRef, item.Caption,
		string(item.Status), createdAt.Format(time.RFC3339),
	)
	if err != nil {
		return schedule.ContentItem{}, err
	}

	item.Seq, err = res.LastInsertId()
	return item, err
}

// UpdatePost rewrites a post's editable fields. Seq and created_at are
// immutable so the schedule order never shifts on edit.
func (s *Store) UpdatePost(ctx context.Context, item schedule.ContentItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		UPDATE posts SET target_month = ?, image_ref = ?, caption = ?, status = ?
		WHERE id = ?`,
		item.TargetMonth, item.ImageRef, item.Caption, string(item.Status), item.ID,
	)
	return err
}

// GetPost retrieves a post by ID. Returns (nil, nil) when absent.
func (s *Store) GetPost(ctx context.Context, id string) (*schedule.ContentItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var item schedule.ContentItem
	var status, createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT seq, id, project_id, target_month, image_ref, caption, status, created_at
		FROM posts WHERE id = ?`,
		id,
	).Scan(&item.Seq, &item.ID, &item.ProjectID, &item.TargetMonth,
		&item.ImageRef, &item.Caption, &status, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	item.Status = schedule.ItemStatus(status)
	item.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &item, nil
}

// ListPostsByProject returns every post of a project in seq order.
func (s *Store) ListPostsByProject(ctx context.Context, projectID string) ([]schedule.ContentItem, error) {
	return s.queryPosts(ctx, `
		SELECT seq, id, project_id, target_month, image_ref, caption, status, created_at
		FROM posts WHERE project_id = ? ORDER BY seq`,
		projectID,
	)
}

// ListPostsForMonth returns a project's posts for one target month, in seq
// order. This is the sequence the allocation engine zips onto weekdays.
func (s *Store) ListPostsForMonth(ctx context.Context, projectID, targetMonth string) ([]schedule.ContentItem, error) {
	return s.queryPosts(ctx, `
		SELECT seq, id, project_id, target_month, image_ref, caption, status, created_at
		FROM posts WHERE project_id = ? AND target_month = ? ORDER BY seq`,
		projectID, targetMonth,
	)
}

// CountPostsForMonth counts a project's posts for one target month.
func (s *Store) CountPostsForMonth(ctx context.Context, projectID, targetMonth string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM posts WHERE project_id = ? AND target_month = ?",
		projectID, targetMonth,
	).Scan(&n)
	return n, err
}

func (s *Store) queryPosts(ctx context.Context, query string, args ...any) ([]schedule.ContentItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []schedule.ContentItem
	for rows.Next() {
		var item schedule.ContentItem
		var status, createdAt string
		if err := rows.Scan(&item.Seq, &item.ID, &item.ProjectID, &item.TargetMonth,
			&item.ImageRef, &item.Caption, &status, &createdAt); err != nil {
			return nil, err
		}
		item.Status = schedule.ItemStatus(status)
		item.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		posts = append(posts, item)
	}
	return posts, rows.Err()
}

// DeletePost removes a post.
func (s *Store) DeletePost(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM posts WHERE id = ?", id)
	return err
}

// =============================================================================
// LEADS
// =============================================================================

// Lead is an inbound sales lead.
type Lead struct {
	ID         string
	ClinicName string
	Contact    string
	Email      string
	Phone      string
	Source     string
	Status     string
	Notes      string
	CreatedAt  time.Time
}

// SaveLead inserts or updates a lead.
func (s *Store) SaveLead(ctx context.Context, l Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO leads (id, clinic_name, contact, email, phone, source, status, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			clinic_name = excluded.clinic_name,
			contact = excluded.contact,
			email = excluded.email,
			phone = excluded.phone,
			source = excluded.source,
			status = excluded.status,
			notes = excluded.notes
	`

	createdAt := l.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, query,
		l.ID, l.ClinicName, l.Contact, l.Email, l.Phone, l.Source, l.Status, l.Notes,
		createdAt.Format(time.RFC3339),
	)
	return err
}

// ListLeads returns all leads, newest first.
func (s *Store) ListLeads(ctx context.Context) ([]Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, clinic_name, contact, email, phone, source, status, notes, created_at
		FROM leads ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []Lead
	for rows.Next() {
		var l Lead
		var createdAt string
		if err := rows.Scan(&l.ID, &l.ClinicName, &l.Contact, &l.Email, &l.Phone,
			&l.Source, &l.Status, &l.Notes, &createdAt); err != nil {
			return nil, err
		}
		l.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		leads = append(leads, l)
	}
	return leads, rows.Err()
}

// DeleteLead removes a lead.
func (s *Store) DeleteLead(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM leads WHERE id = ?", id)
	return err
}

// =============================================================================
// PAYMENTS
// =============================================================================

// Payment is a received payment. Amount round-trips through decimal so
// cents never pick up float error.
type Payment struct {
	ID        string
	ClinicID  string
	Amount    decimal.Decimal
	Currency  string
	Method    string
	Reference string
	PaidAt    time.Time
	CreatedAt time.Time
}

// SavePayment inserts or updates a payment record.
func (s *Store) SavePayment(ctx context.Context, p Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO payments (id, clinic_id, amount, currency, method, reference, paid_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			clinic_id = excluded.clinic_id,
			amount = excluded.amount,
			currency = excluded.currency,
			method = excluded.method,
			reference = excluded.reference,
			paid_at = excluded.paid_at
	`

	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, query,
		p.ID, p.ClinicID, p.Amount.String(), p.Currency, p.Method, p.Reference,
		p.PaidAt.Format(time.RFC3339),
		createdAt.Format(time.RFC3339),
	)
	return err
}

// ListPaymentsByClinic returns a clinic's payments, newest first.
func (s *Store) ListPaymentsByClinic(ctx context.Context, clinicID string) ([]Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, clinic_id, amount, currency, method, reference, paid_at, created_at
		FROM payments WHERE clinic_id = ? ORDER BY paid_at DESC`,
		clinicID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []Payment
	for rows.Next() {
		var p Payment
		var amount, paidAt, createdAt string
		if err := rows.Scan(&p.ID, &p.ClinicID, &amount, &p.Currency, &p.Method,
			&p.Reference, &paidAt, &createdAt); err != nil {
			return nil, err
		}
		p.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("bad amount for payment %s: %w", p.ID, err)
		}
		p.PaidAt, _ = time.Parse(time.RFC3339, paidAt)
		p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// DeletePayment removes a payment record.
func (s *Store) DeletePayment(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, "DELETE FROM payments WHERE id = ?", id)
	return err
}

// =============================================================================
// UTILITIES
// =============================================================================

// Reset clears all data (for testing/demo).
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tables := []string{"posts", "payments", "projects", "leads", "clinics"}
	for _, table := range tables {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}
	return nil
}
