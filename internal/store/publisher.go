package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

// Publish flow states.
type PublishState string

const (
	StateSubmitted PublishState = "submitted"
	StatePolling   PublishState = "polling"
	StateFound     PublishState = "found"
	StateFailed    PublishState = "failed"
	StateTimedOut  PublishState = "timed_out"
)

const (
	// PollInterval separates consecutive job status checks.
	PollInterval = 2 * time.Second
	// MaxPollAttempts bounds the whole polling loop.
	MaxPollAttempts = 15
	// listingFallbackAfter is how many consecutive poll errors trigger
	// the listing search.
	listingFallbackAfter = 3
)

var ErrPublishTimeout = errors.New("publish timed out")

// JobPoller reads job status during the publish flow.
type JobPoller interface {
	GetJob(ctx context.Context, id string) (*Job, error)
}

// Lister searches the store listing when the job endpoint degrades.
type Lister interface {
	SearchByName(ctx context.Context, name string, statuses ...string) ([]Record, error)
}

// PublishOutcome is the terminal result of one publish run.
type PublishOutcome struct {
	State   PublishState
	StoreID string
	Err     error
}

// Publisher polls a generation job until it resolves. The job endpoint
// is the source of truth; when it errors repeatedly the publisher
// degrades to searching the store listing by name. The outcome is a
// deterministic function of the poll results.
type Publisher struct {
	jobs     JobPoller
	stores   Lister
	interval time.Duration
	attempts int
	sleep    func(ctx context.Context, d time.Duration) error
}

// NewPublisher creates a publisher with the default 2s/15-attempt
// policy. svc serves both roles in production.
func NewPublisher(jobs JobPoller, stores Lister) *Publisher {
	return &Publisher{
		jobs:     jobs,
		stores:   stores,
		interval: PollInterval,
		attempts: MaxPollAttempts,
		sleep:    sleepContext,
	}
}

// WithPolicy overrides the interval and attempt budget, mainly for
// tests that inject a no-op sleep.
func (p *Publisher) WithPolicy(interval time.Duration, attempts int, sleep func(ctx context.Context, d time.Duration) error) *Publisher {
	p.interval = interval
	p.attempts = attempts
	if sleep != nil {
		p.sleep = sleep
	}
	return p
}

// Publish runs the polling state machine for a submitted job and
// returns its terminal state.
func (p *Publisher) Publish(ctx context.Context, jobID, storeName string) PublishOutcome {
	consecutiveErrs := 0

	for attempt := 0; attempt < p.attempts; attempt++ {
		if err := p.sleep(ctx, p.interval); err != nil {
			return PublishOutcome{State: StateFailed, Err: err}
		}

		job, err := p.jobs.GetJob(ctx, jobID)
		if err != nil {
			consecutiveErrs++
			log.Printf("polling job %s (attempt %d): %v", jobID, attempt+1, err)
			if consecutiveErrs >= listingFallbackAfter {
				if out, ok := p.searchListing(ctx, storeName); ok {
					return out
				}
			}
			continue
		}
		consecutiveErrs = 0

		switch job.Status {
		case JobCompleted:
			return PublishOutcome{State: StateFound, StoreID: job.StoreID}
		case JobFailed:
			return PublishOutcome{State: StateFailed, Err: fmt.Errorf("generation failed: %s", job.Error)}
		}
		// queued or running, keep polling
	}

	return PublishOutcome{State: StateTimedOut, Err: ErrPublishTimeout}
}

// searchListing is the degrade path: find the store by name among the
// pending and active listings.
func (p *Publisher) searchListing(ctx context.Context, storeName string) (PublishOutcome, bool) {
	recs, err := p.stores.SearchByName(ctx, storeName, StatusPending, StatusActive)
	if err != nil || len(recs) == 0 {
		return PublishOutcome{}, false
	}
	return PublishOutcome{State: StateFound, StoreID: recs[0].ID}, true
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
