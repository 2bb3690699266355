package run

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Tanjim-Islam/legal-tabular-review/constants"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/entity"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/extract"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/review"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/segment"
	"github.com/Tanjim-Islam/legal-tabular-review/internal/template"
)

const defaultWorkers = 4

// Orchestrator drives extraction jobs end to end: segment, extract, score,
// cite, materialize, persist. Submit is asynchronous; callers either poll
// Status or block on the returned handle.
type Orchestrator struct {
	source        DocumentSource
	store         Store
	segmenter     *segment.Segmenter
	logger        *slog.Logger
	workers       int
	snippetRadius int
	templatePath  string
}

type Option func(*Orchestrator)

func WithWorkers(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithTemplatePath sets the template used when Submit is called without one.
func WithTemplatePath(path string) Option {
	return func(o *Orchestrator) {
		o.templatePath = path
	}
}

func WithSnippetRadius(r int) Option {
	return func(o *Orchestrator) {
		if r > 0 {
			o.snippetRadius = r
		}
	}
}

func NewOrchestrator(source DocumentSource, store Store, segmenter *segment.Segmenter, logger *slog.Logger, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		source:        source,
		store:         store,
		segmenter:     segmenter,
		logger:        logger,
		workers:       defaultWorkers,
		snippetRadius: extract.DefaultSnippetRadius,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Submit creates a PENDING job and starts it on a background worker. The
// returned handle resolves when the job reaches a terminal state. The job
// keeps running if the caller's context is cancelled; cancellation belongs
// to the submission boundary, not the pipeline.
func (o *Orchestrator) Submit(ctx context.Context, mode constants.JobMode, templatePath string) (*Handle, error) {
	if templatePath == "" {
		templatePath = o.templatePath
	}
	job := &entity.Job{
		ID:           uuid.New(),
		Mode:         mode,
		Status:       constants.JobStatusPending,
		TemplatePath: templatePath,
		CreatedAt:    time.Now().UTC(),
	}
	if err := o.store.CreateJob(ctx, job); err != nil {
		return nil, err
	}

	handle := newHandle(job.ID)
	go o.execute(context.WithoutCancel(ctx), job, handle)
	return handle, nil
}

// Status reports the current lifecycle state of a job.
func (o *Orchestrator) Status(ctx context.Context, jobID uuid.UUID) (*entity.Job, error) {
	return o.store.GetJob(ctx, jobID)
}

// Result assembles the canonical table for a terminal job.
func (o *Orchestrator) Result(ctx context.Context, jobID uuid.UUID) (*entity.TablePayload, error) {
	job, err := o.store.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	cells, err := o.store.ListCells(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return BuildTable(job, cells), nil
}

func (o *Orchestrator) execute(ctx context.Context, job *entity.Job, handle *Handle) {
	started := time.Now().UTC()
	job.Status = constants.JobStatusRunning
	job.StartedAt = &started
	if err := o.store.UpdateJob(ctx, job); err != nil {
		o.finish(ctx, job, handle, fmt.Errorf("mark running: %w", err))
		return
	}

	o.logger.Info("job started",
		slog.String("job_id", job.ID.String()),
		slog.String("mode", string(job.Mode)))

	// Template failures are fatal: an invalid template makes every
	// extraction meaningless.
	tmpl, err := template.Load(job.TemplatePath)
	if err != nil {
		o.finish(ctx, job, handle, err)
		return
	}

	docs, err := o.source.List(ctx)
	if err != nil {
		o.finish(ctx, job, handle, fmt.Errorf("list documents: %w", err))
		return
	}
	if job.Mode == constants.ModeQuick && len(docs) > 1 {
		docs = docs[:1]
	}
	if len(docs) == 0 {
		o.finish(ctx, job, handle, errors.New("no documents to process"))
		return
	}

	extractor := extract.New(tmpl, o.logger, o.snippetRadius)
	fields := extractor.Fields(job.Mode)

	outcomes := make([]docOutcome, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, doc := range docs {
		g.Go(func() error {
			outcomes[i] = o.processDocument(gctx, job, extractor, fields, doc)
			return nil
		})
	}
	g.Wait()

	// Canonical order: field declaration order, then document ingestion
	// order. Independent of the parallel schedule above.
	var cells []*entity.Cell
	for fi := range fields {
		for di := range docs {
			cells = append(cells, outcomes[di].cells[fi])
		}
	}
	for di := range docs {
		if e := outcomes[di].err; e != nil {
			job.DocumentErrors = append(job.DocumentErrors, *e)
		}
	}

	if err := o.store.SaveCells(ctx, cells); err != nil {
		o.finish(ctx, job, handle, fmt.Errorf("persist cells: %w", err))
		return
	}
	o.finish(ctx, job, handle, nil)
}

// docOutcome is one document's contribution to a job: one cell per in-scope
// field, plus the per-document error when segmentation failed.
type docOutcome struct {
	cells []*entity.Cell
	err   *entity.DocumentError
}

// processDocument produces exactly one cell per in-scope field for one
// document. A ParseError degrades every field to MISSING_DATA with a
// PARSE_ERROR reason instead of aborting the job.
func (o *Orchestrator) processDocument(ctx context.Context, job *entity.Job, extractor *extract.Extractor, fields []template.FieldDefinition, doc entity.Document) (out docOutcome) {
	now := time.Now().UTC()

	parseFailed := func(cause error) {
		o.logger.Warn("document failed, recording against job",
			slog.String("job_id", job.ID.String()),
			slog.String("document_id", doc.ID),
			slog.String("error", cause.Error()))
		out.err = &entity.DocumentError{
			DocumentID: doc.ID,
			Identifier: doc.Identifier,
			Message:    cause.Error(),
		}
		for i := range fields {
			f := &fields[i]
			out.cells = append(out.cells, review.NewParseErrorCell(job.ID, doc, f.Key, f.Label, f.Type, now))
		}
	}

	raw, err := o.source.Read(ctx, doc)
	if err != nil {
		parseFailed(err)
		return out
	}
	sd, err := o.segmenter.Segment(doc, raw)
	if err != nil {
		parseFailed(err)
		return out
	}

	for _, result := range extractor.ExtractDocument(sd, job.Mode) {
		out.cells = append(out.cells, review.NewCell(job.ID, doc, result, now))
	}
	return out
}

func (o *Orchestrator) finish(ctx context.Context, job *entity.Job, handle *Handle, cause error) {
	finished := time.Now().UTC()
	job.FinishedAt = &finished
	if cause != nil {
		job.Status = constants.JobStatusFailed
		msg := cause.Error()
		job.ErrorMessage = &msg
		o.logger.Error("job failed",
			slog.String("job_id", job.ID.String()),
			slog.String("error", msg))
	} else {
		job.Status = constants.JobStatusSucceeded
		o.logger.Info("job succeeded",
			slog.String("job_id", job.ID.String()),
			slog.Int("document_errors", len(job.DocumentErrors)))
	}

	if err := o.store.UpdateJob(ctx, job); err != nil {
		o.logger.Error("persist terminal job state",
			slog.String("job_id", job.ID.String()),
			slog.String("error", err.Error()))
	}
	handle.resolve(job)
}
