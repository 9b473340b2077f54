package renderer

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/output"
)

// RowTask represents one image row to render
type RowTask struct {
	Row  int   // Image row, 0 is the top of the picture
	Seed int64 // Seed for the row's private sampler
}

// RowResult contains the result from rendering a row
type RowResult struct {
	Row       int
	WorkerID  int
	Samples   int
	NonFinite int
	Duration  time.Duration
	Error     error
}

// WorkerPool renders rows in parallel. Every row is written by exactly one
// worker into its own slice of the frame, so the frame needs no lock.
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual row rendering tasks
type Worker struct {
	ID          int
	raytracer   *Raytracer
	frame       *output.Frame
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(raytracer *Raytracer, frame *output.Frame, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, frame.Height),   // Buffer for every row
		resultQueue: make(chan RowResult, frame.Height), // Buffer for every result
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			raytracer:   raytracer,
			frame:       frame,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start(ctx context.Context) {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(ctx, &wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed row result
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		// Drain remaining tasks without rendering once cancelled
		if err := ctx.Err(); err != nil {
			w.resultQueue <- RowResult{Row: task.Row, WorkerID: w.ID, Error: err}
			continue
		}

		start := time.Now()
		sampler := core.NewSeededSampler(task.Seed)
		samples, nonFinite := w.raytracer.RenderRow(task.Row, w.frame.Row(task.Row), sampler)

		w.resultQueue <- RowResult{
			Row:       task.Row,
			WorkerID:  w.ID,
			Samples:   samples,
			NonFinite: nonFinite,
			Duration:  time.Since(start),
		}
	}
}
