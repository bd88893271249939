package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

type scriptedPoller struct {
	results []func() (*Job, error)
	calls   int
}

func (p *scriptedPoller) GetJob(context.Context, string) (*Job, error) {
	i := p.calls
	p.calls++
	if i >= len(p.results) {
		i = len(p.results) - 1
	}
	return p.results[i]()
}

type scriptedLister struct {
	records []Record
	err     error
	calls   int
}

func (l *scriptedLister) SearchByName(context.Context, string, ...string) ([]Record, error) {
	l.calls++
	return l.records, l.err
}

func noSleep(context.Context, time.Duration) error { return nil }

func testPublisher(jobs JobPoller, stores Lister) *Publisher {
	return NewPublisher(jobs, stores).WithPolicy(0, MaxPollAttempts, noSleep)
}

func jobResult(status, storeID, errMsg string) func() (*Job, error) {
	return func() (*Job, error) {
		return &Job{ID: "j1", StoreID: storeID, Status: status, Error: errMsg}, nil
	}
}

func pollError() func() (*Job, error) {
	return func() (*Job, error) { return nil, errors.New("job endpoint down") }
}

func TestPublishFindsCompletedJob(t *testing.T) {
	poller := &scriptedPoller{results: []func() (*Job, error){
		jobResult(JobQueued, "", ""),
		jobResult(JobRunning, "", ""),
		jobResult(JobCompleted, "store-9", ""),
	}}

	out := testPublisher(poller, &scriptedLister{}).Publish(context.Background(), "j1", "متجري")
	if out.State != StateFound {
		t.Fatalf("state = %s, want found (%v)", out.State, out.Err)
	}
	if out.StoreID != "store-9" {
		t.Errorf("store id = %q, want store-9", out.StoreID)
	}
	if poller.calls != 3 {
		t.Errorf("poll calls = %d, want 3", poller.calls)
	}
}

func TestPublishReportsFailedJob(t *testing.T) {
	poller := &scriptedPoller{results: []func() (*Job, error){
		jobResult(JobRunning, "", ""),
		jobResult(JobFailed, "", "template exploded"),
	}}

	out := testPublisher(poller, &scriptedLister{}).Publish(context.Background(), "j1", "متجري")
	if out.State != StateFailed {
		t.Fatalf("state = %s, want failed", out.State)
	}
	if out.Err == nil || out.Err.Error() != "generation failed: template exploded" {
		t.Errorf("unexpected error: %v", out.Err)
	}
}

func TestPublishTimesOutAfterAttemptBudget(t *testing.T) {
	poller := &scriptedPoller{results: []func() (*Job, error){
		jobResult(JobRunning, "", ""),
	}}

	out := testPublisher(poller, &scriptedLister{}).Publish(context.Background(), "j1", "متجري")
	if out.State != StateTimedOut {
		t.Fatalf("state = %s, want timed_out", out.State)
	}
	if !errors.Is(out.Err, ErrPublishTimeout) {
		t.Errorf("error = %v, want ErrPublishTimeout", out.Err)
	}
	if poller.calls != MaxPollAttempts {
		t.Errorf("poll calls = %d, want %d", poller.calls, MaxPollAttempts)
	}
}

func TestPublishFallsBackToListingAfterRepeatedErrors(t *testing.T) {
	poller := &scriptedPoller{results: []func() (*Job, error){pollError()}}
	lister := &scriptedLister{records: []Record{{ID: "store-3", Name: "متجري", Status: StatusPending}}}

	out := testPublisher(poller, lister).Publish(context.Background(), "j1", "متجري")
	if out.State != StateFound {
		t.Fatalf("state = %s, want found via listing", out.State)
	}
	if out.StoreID != "store-3" {
		t.Errorf("store id = %q, want store-3", out.StoreID)
	}
	if poller.calls != 3 {
		t.Errorf("listing fallback should kick in on the third consecutive error, polls = %d", poller.calls)
	}
	if lister.calls != 1 {
		t.Errorf("listing searched %d times, want 1", lister.calls)
	}
}

func TestPublishErrorCounterResetsOnSuccess(t *testing.T) {
	poller := &scriptedPoller{results: []func() (*Job, error){
		pollError(),
		pollError(),
		jobResult(JobRunning, "", ""), // resets the consecutive error count
		pollError(),
		pollError(),
		jobResult(JobCompleted, "store-7", ""),
	}}
	lister := &scriptedLister{records: []Record{{ID: "wrong"}}}

	out := testPublisher(poller, lister).Publish(context.Background(), "j1", "متجري")
	if out.State != StateFound || out.StoreID != "store-7" {
		t.Fatalf("outcome = %+v, want found store-7", out)
	}
	if lister.calls != 0 {
		t.Errorf("listing should not be consulted, searched %d times", lister.calls)
	}
}

func TestPublishResolvesSubmittedJob(t *testing.T) {
	// The service serves both publisher roles, as the publish command
	// wires it.
	svc := newTestService(t)
	gen := NewGenerator(svc)

	job, err := gen.Submit(context.Background(), "متجر نور", "fashion", "fashion-luxury")
	if err != nil {
		t.Fatal(err)
	}
	gen.Wait()

	out := NewPublisher(svc, svc).WithPolicy(0, MaxPollAttempts, noSleep).
		Publish(context.Background(), job.ID, "متجر نور")
	if out.State != StateFound {
		t.Fatalf("state = %s, want found (%v)", out.State, out.Err)
	}

	rec, err := svc.Get(context.Background(), out.StoreID)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Status != StatusActive {
		t.Errorf("published store status = %s, want active", rec.Status)
	}
}

func TestPublishCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	poller := &scriptedPoller{results: []func() (*Job, error){jobResult(JobRunning, "", "")}}
	out := NewPublisher(poller, &scriptedLister{}).Publish(ctx, "j1", "متجري")
	if out.State != StateFailed {
		t.Fatalf("state = %s, want failed on cancelled context", out.State)
	}
	if !errors.Is(out.Err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", out.Err)
	}
}
