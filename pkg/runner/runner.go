package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// Processor handles a single file.
type Processor interface {
	ProcessFile(ctx context.Context, path string) (*Report, error)
}

// ProcessorFunc adapts a function to Processor.
type ProcessorFunc func(ctx context.Context, path string) (*Report, error)

// ProcessFile calls f.
func (f ProcessorFunc) ProcessFile(ctx context.Context, path string) (*Report, error) {
	return f(ctx, path)
}

// Runner runs a Processor over discovered files.
type Runner struct {
	Processor Processor
}

// New creates a Runner.
func New(p Processor) *Runner {
	return &Runner{Processor: p}
}

// Run discovers files and processes them concurrently. Outcomes are
// reported in discovery order regardless of completion order.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)
	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	workCh := make(chan int)
	outcomes := make([]*FileOutcome, len(files))

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range workCh {
				outcome := r.process(ctx, files[idx])
				outcomes[idx] = &outcome
			}
		}()
	}

feed:
	for idx := range files {
		select {
		case <-ctx.Done():
			break feed
		case workCh <- idx:
		}
	}
	close(workCh)
	wg.Wait()

	for _, outcome := range outcomes {
		if outcome != nil {
			result.accumulate(*outcome)
		}
	}

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}
	return result, nil
}

func (r *Runner) process(ctx context.Context, path string) FileOutcome {
	outcome := FileOutcome{Path: path}
	if err := ctx.Err(); err != nil {
		outcome.Error = err
		return outcome
	}

	report, err := r.Processor.ProcessFile(ctx, path)
	if err != nil {
		outcome.Error = err
	} else {
		outcome.Report = report
	}
	return outcome
}
