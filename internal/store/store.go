package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/matjar-app/matjar/internal/db"
)

// Service provides CRUD operations for stores and generation jobs.
type Service struct {
	db *db.DB
}

// NewService creates a store service over an open database.
func NewService(d *db.DB) *Service {
	return &Service{db: d}
}

// Create inserts a new store in pending status.
func (s *Service) Create(ctx context.Context, rec *Record) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.StoreType == "" {
		rec.StoreType = "general"
	}
	if rec.TemplateID == "" {
		rec.TemplateID = "simple-shop"
	}
	if rec.Status == "" {
		rec.Status = StatusPending
	}
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO stores (id, name, store_type, template_id, status, html_content, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Name, rec.StoreType, rec.TemplateID, rec.Status, rec.HTMLContent,
		rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating store: %w", err)
	}
	return nil
}

const storeColumns = `id, name, store_type, template_id, status, html_content, created_at, updated_at`

func scanStore(row interface{ Scan(...any) error }) (*Record, error) {
	rec := &Record{}
	err := row.Scan(&rec.ID, &rec.Name, &rec.StoreType, &rec.TemplateID,
		&rec.Status, &rec.HTMLContent, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Get retrieves a store by ID.
func (s *Service) Get(ctx context.Context, id string) (*Record, error) {
	rec, err := scanStore(s.db.QueryRowContext(ctx,
		`SELECT `+storeColumns+` FROM stores WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStoreNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting store: %w", err)
	}
	return rec, nil
}

// List returns stores newest first. A non-empty status filters; limit
// and offset page through the result.
func (s *Service) List(ctx context.Context, status string, limit, offset int) ([]Record, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT ` + storeColumns + ` FROM stores`
	args := []any{}
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing stores: %w", err)
	}
	defer rows.Close()

	var result []Record
	for rows.Next() {
		rec, err := scanStore(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning store: %w", err)
		}
		result = append(result, *rec)
	}
	return result, rows.Err()
}

// SearchByName returns stores whose name matches, optionally limited to
// a set of statuses. Used by the publish flow when the job endpoint is
// unreachable.
func (s *Service) SearchByName(ctx context.Context, name string, statuses ...string) ([]Record, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE name = ?`
	args := []any{name}
	if len(statuses) > 0 {
		query += ` AND status IN (?` + repeat(",?", len(statuses)-1) + `)`
		for _, st := range statuses {
			args = append(args, st)
		}
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("searching stores: %w", err)
	}
	defer rows.Close()

	var result []Record
	for rows.Next() {
		rec, err := scanStore(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning store: %w", err)
		}
		result = append(result, *rec)
	}
	return result, rows.Err()
}

func repeat(s string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += s
	}
	return out
}

// UpdateContent replaces a store's page and optionally its status. An
// empty status leaves it unchanged.
func (s *Service) UpdateContent(ctx context.Context, id, htmlContent, status string) error {
	query := `UPDATE stores SET html_content = ?, updated_at = ?`
	args := []any{htmlContent, time.Now().UTC()}
	if status != "" {
		query += `, status = ?`
		args = append(args, status)
	}
	query += ` WHERE id = ?`
	args = append(args, id)

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating store: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrStoreNotFound
	}
	return nil
}

// SetStatus moves a store to a new status.
func (s *Service) SetStatus(ctx context.Context, id, status string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE stores SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("updating store status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrStoreNotFound
	}
	return nil
}

// Delete removes a store by ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM stores WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting store: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrStoreNotFound
	}
	return nil
}

// CreateJob inserts a queued generation job.
func (s *Service) CreateJob(ctx context.Context, j *Job) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	if j.StoreType == "" {
		j.StoreType = "general"
	}
	if j.Status == "" {
		j.Status = JobQueued
	}
	now := time.Now().UTC()
	j.CreatedAt = now
	j.UpdatedAt = now

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO generation_jobs (id, store_id, store_name, store_type, status, error, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		j.ID, j.StoreID, j.StoreName, j.StoreType, j.Status, j.Error, j.CreatedAt, j.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating job: %w", err)
	}
	return nil
}

// GetJob retrieves a generation job by ID.
func (s *Service) GetJob(ctx context.Context, id string) (*Job, error) {
	j := &Job{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, store_id, store_name, store_type, status, error, created_at, updated_at
		 FROM generation_jobs WHERE id = ?`, id,
	).Scan(&j.ID, &j.StoreID, &j.StoreName, &j.StoreType, &j.Status, &j.Error, &j.CreatedAt, &j.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting job: %w", err)
	}
	return j, nil
}

// UpdateJob writes a job's status, error, and store binding.
func (s *Service) UpdateJob(ctx context.Context, j *Job) error {
	j.UpdatedAt = time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`UPDATE generation_jobs SET store_id = ?, status = ?, error = ?, updated_at = ? WHERE id = ?`,
		j.StoreID, j.Status, j.Error, j.UpdatedAt, j.ID)
	if err != nil {
		return fmt.Errorf("updating job: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrJobNotFound
	}
	return nil
}
