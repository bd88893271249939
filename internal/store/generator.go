package store

import (
	"context"
	"log"
	"sync"

	"github.com/matjar-app/matjar/internal/catalog"
)

// Generator runs page generation jobs in the background. A job renders
// the chosen template into a pending store record, then activates it.
type Generator struct {
	svc *Service
	wg  sync.WaitGroup
}

// NewGenerator creates a generator over the store service.
func NewGenerator(svc *Service) *Generator {
	return &Generator{svc: svc}
}

// Submit queues a generation job and starts working on it. It returns
// the job immediately; callers poll GetJob for completion.
func (g *Generator) Submit(ctx context.Context, storeName, storeType, templateID string) (*Job, error) {
	job := &Job{StoreName: storeName, StoreType: storeType}
	if err := g.svc.CreateJob(ctx, job); err != nil {
		return nil, err
	}

	g.wg.Add(1)
	go g.run(job.ID, storeName, storeType, templateID)
	return job, nil
}

// Wait blocks until all in-flight jobs have finished. Used on shutdown
// and in tests.
func (g *Generator) Wait() {
	g.wg.Wait()
}

func (g *Generator) run(jobID, storeName, storeType, templateID string) {
	defer g.wg.Done()
	ctx := context.Background()

	job, err := g.svc.GetJob(ctx, jobID)
	if err != nil {
		log.Printf("generation job %s disappeared: %v", jobID, err)
		return
	}

	job.Status = JobRunning
	if err := g.svc.UpdateJob(ctx, job); err != nil {
		log.Printf("marking job %s running: %v", jobID, err)
		return
	}

	rec := &Record{
		Name:        storeName,
		StoreType:   storeType,
		TemplateID:  templateID,
		HTMLContent: catalog.TemplateHTML(templateID, storeName),
	}
	if err := g.svc.Create(ctx, rec); err != nil {
		g.fail(ctx, job, err)
		return
	}
	if err := g.svc.SetStatus(ctx, rec.ID, StatusActive); err != nil {
		g.fail(ctx, job, err)
		return
	}

	job.StoreID = rec.ID
	job.Status = JobCompleted
	if err := g.svc.UpdateJob(ctx, job); err != nil {
		log.Printf("completing job %s: %v", jobID, err)
	}
}

func (g *Generator) fail(ctx context.Context, job *Job, cause error) {
	log.Printf("generation job %s failed: %v", job.ID, cause)
	job.Status = JobFailed
	job.Error = cause.Error()
	if err := g.svc.UpdateJob(ctx, job); err != nil {
		log.Printf("marking job %s failed: %v", job.ID, err)
	}
}
