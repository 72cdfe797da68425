package kafka

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/shipping-labels/internal/storage"
)

var errShuttingDown = errors.New("publisher shutdown during batch processing")

const requeueTimeout = 5 * time.Second

type PublisherConfig struct {
	PollInterval time.Duration
	BatchSize    int
	MaxAttempts  int
}

// Publisher moves outbox tasks to the broker. A task is marked PROCESSING in
// the transaction that selected it, then DONE or FAILED after the send.
type Publisher struct {
	db             db.DB
	repo           storage.OutboxTaskRepository
	producer       Producer
	config         PublisherConfig
	logger         *zap.Logger
	timeNow        func() time.Time
	wg             sync.WaitGroup
	shutdownSignal chan struct{}
	stopOnce       sync.Once
}

func NewPublisher(database db.DB, repo storage.OutboxTaskRepository, producer Producer, config PublisherConfig, logger *zap.Logger) *Publisher {
	return &Publisher{
		db:             database,
		repo:           repo,
		producer:       producer,
		config:         config,
		logger:         logger,
		timeNow:        time.Now,
		shutdownSignal: make(chan struct{}),
	}
}

// Start runs the polling loop in a background goroutine until ctx is done or
// Shutdown is called.
func (p *Publisher) Start(ctx context.Context) {
	p.logger.Info("Starting outbox publisher", zap.Duration("poll_interval", p.config.PollInterval))
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.run(ctx)
	}()
}

func (p *Publisher) run(ctx context.Context) {
	ticker := time.NewTicker(p.config.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := p.ProcessBatch(ctx); err != nil && !errors.Is(err, errShuttingDown) && ctx.Err() == nil {
				p.logger.Error("Outbox publisher failed to process batch", zap.Error(err))
			}
		case <-p.shutdownSignal:
			p.logger.Info("Outbox publisher received shutdown signal, stopping")
			return
		case <-ctx.Done():
			p.logger.Info("Outbox publisher context cancelled, stopping")
			return
		}
	}
}

func (p *Publisher) Shutdown(ctx context.Context) {
	p.stopOnce.Do(func() {
		p.logger.Info("Initiating outbox publisher shutdown")
		close(p.shutdownSignal)

		done := make(chan struct{})
		go func() {
			p.wg.Wait()
			close(done)
		}()
		select {
		case <-done:
			p.logger.Info("Outbox publisher shutdown complete")
		case <-ctx.Done():
			p.logger.Warn("Outbox publisher shutdown timed out")
		}

		if err := p.producer.Close(); err != nil {
			p.logger.Error("Failed to close producer", zap.Error(err))
		}
	})
}

func (p *Publisher) ProcessBatch(ctx context.Context) error {
	var tasks []*repository.OutboxTask

	err := db.InTx(ctx, p.db, func(tx db.Tx) error {
		var err error
		tasks, err = p.repo.GetProcessableTasksTx(ctx, tx, p.config.MaxAttempts, p.config.BatchSize)
		if err != nil {
			return fmt.Errorf("failed to get processable tasks: %w", err)
		}

		for _, task := range tasks {
			err := p.repo.UpdateTaskStatusTx(ctx, tx, task.ID, repository.TaskStatusProcessing, task.Attempts, nil, nil)
			if err != nil {
				return fmt.Errorf("failed to mark task %s as PROCESSING: %w", task.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		return nil
	}
	p.logger.Debug("Fetched outbox tasks", zap.Int("count", len(tasks)))

	for i, task := range tasks {
		select {
		case <-p.shutdownSignal:
			p.logger.Warn("Shutdown during batch processing", zap.Stringer("task_id", task.ID))
			p.requeue(tasks[i:])
			return errShuttingDown
		case <-ctx.Done():
			p.requeue(tasks[i:])
			return ctx.Err()
		default:
		}

		if err := p.processSingleTask(ctx, task); err != nil {
			p.logger.Error("Failed to process outbox task", zap.Stringer("task_id", task.ID), zap.Error(err))
		}
	}

	return nil
}

// requeue returns tasks that were claimed but never sent to CREATED so the
// next poll picks them up again. It runs detached from the batch context,
// which may already be cancelled.
func (p *Publisher) requeue(tasks []*repository.OutboxTask) {
	ctx, cancel := context.WithTimeout(context.Background(), requeueTimeout)
	defer cancel()

	for _, task := range tasks {
		err := p.repo.UpdateTaskStatus(ctx, p.db, task.ID, repository.TaskStatusCreated, task.Attempts, task.LastError, nil)
		if err != nil {
			p.logger.Error("Failed to requeue outbox task", zap.Stringer("task_id", task.ID), zap.Error(err))
			continue
		}
		p.logger.Debug("Outbox task requeued", zap.Stringer("task_id", task.ID))
	}
}

func (p *Publisher) processSingleTask(ctx context.Context, task *repository.OutboxTask) error {
	l := p.logger.With(zap.Stringer("task_id", task.ID), zap.String("topic", task.Topic), zap.Int("attempt", task.Attempts+1))

	err := p.producer.SendMessage(ctx, task.Topic, []byte(task.ID.String()), task.Payload)
	if err != nil {
		metrics.OutboxTasksFailedTotal.Inc()
		attempts := task.Attempts + 1
		errMsg := err.Error()

		if attempts >= p.config.MaxAttempts {
			l.Warn("Outbox task reached max attempts, giving up", zap.Error(err))
		}

		if updateErr := p.repo.UpdateTaskStatus(ctx, p.db, task.ID, repository.TaskStatusFailed, attempts, &errMsg, nil); updateErr != nil {
			return fmt.Errorf("failed to update task status after send failure (%v): %w", err, updateErr)
		}
		return err
	}

	metrics.OutboxTasksPublishedTotal.Inc()
	completedAt := p.timeNow().UTC()
	if err := p.repo.UpdateTaskStatus(ctx, p.db, task.ID, repository.TaskStatusDone, task.Attempts, nil, &completedAt); err != nil {
		return fmt.Errorf("failed to update task status after successful send: %w", err)
	}

	l.Debug("Outbox task published")
	return nil
}
