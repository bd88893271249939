// Package store persists generated storefronts and the jobs that
// produce them, and drives the publish flow.
package store

import (
	"errors"
	"time"
)

var (
	ErrStoreNotFound = errors.New("store not found")
	ErrJobNotFound   = errors.New("job not found")
)

// Store statuses. A store is created pending and becomes active once
// its page has been generated and accepted.
const (
	StatusPending  = "pending"
	StatusActive   = "active"
	StatusArchived = "archived"
)

// Job statuses.
const (
	JobQueued    = "queued"
	JobRunning   = "running"
	JobCompleted = "completed"
	JobFailed    = "failed"
)

// Record is one persisted storefront.
type Record struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	StoreType   string    `json:"store_type"`
	TemplateID  string    `json:"template_id"`
	Status      string    `json:"status"`
	HTMLContent string    `json:"html_content,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Job tracks one asynchronous page generation.
type Job struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"store_id,omitempty"`
	StoreName string    `json:"store_name"`
	StoreType string    `json:"store_type"`
	Status    string    `json:"status"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
