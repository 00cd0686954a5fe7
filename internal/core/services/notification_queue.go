package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/asset_compass/internal/core/domain"
	"github.com/SscSPs/asset_compass/internal/core/ports/providers"
	"github.com/SscSPs/asset_compass/internal/middleware"
	"github.com/SscSPs/asset_compass/internal/platform/metrics"
)

// ErrQueueFull is returned when a notification is dropped because the queue has no room.
var ErrQueueFull = errors.New("notification queue full")

// ErrQueueClosed is returned for notifications submitted after Close.
var ErrQueueClosed = errors.New("notification queue closed")

const notificationSendTimeout = 15 * time.Second

type notificationJob struct {
	ctx          context.Context
	notification domain.TradeNotification
}

// NotificationQueue hands trade notifications to a notifier on background workers.
// It implements providers.TradeNotifier, so a trade never waits on delivery.
type NotificationQueue struct {
	notifier providers.TradeNotifier
	jobs     chan notificationJob
	workers  int

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewNotificationQueue creates a queue with room for size pending notifications.
func NewNotificationQueue(notifier providers.TradeNotifier, size, workers int) *NotificationQueue {
	if size <= 0 {
		size = 1
	}
	if workers <= 0 {
		workers = 1
	}
	return &NotificationQueue{
		notifier: notifier,
		jobs:     make(chan notificationJob, size),
		workers:  workers,
	}
}

// Start launches the workers.
func (q *NotificationQueue) Start() {
	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.work()
	}
}

// NotifyTrade enqueues n without blocking.
func (q *NotificationQueue) NotifyTrade(ctx context.Context, n domain.TradeNotification) error {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		metrics.Notifications.WithLabelValues("dropped").Inc()
		return ErrQueueClosed
	}

	// Keep the request logger but not the request deadline.
	job := notificationJob{ctx: context.WithoutCancel(ctx), notification: n}
	select {
	case q.jobs <- job:
		return nil
	default:
		metrics.Notifications.WithLabelValues("dropped").Inc()
		middleware.GetLoggerFromCtx(ctx).Warn("Notification queue full, dropping trade notification",
			slog.String("ticker", n.Ticker))
		return ErrQueueFull
	}
}

// Close stops accepting notifications and waits until the pending ones are delivered.
func (q *NotificationQueue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.jobs)
	q.mu.Unlock()
	q.wg.Wait()
}

func (q *NotificationQueue) work() {
	defer q.wg.Done()
	for job := range q.jobs {
		q.deliver(job)
	}
}

func (q *NotificationQueue) deliver(job notificationJob) {
	ctx, cancel := context.WithTimeout(job.ctx, notificationSendTimeout)
	defer cancel()

	logger := middleware.GetLoggerFromCtx(ctx)
	if err := q.notifier.NotifyTrade(ctx, job.notification); err != nil {
		metrics.Notifications.WithLabelValues("failed").Inc()
		logger.Error("Failed to deliver trade notification",
			slog.String("error", err.Error()), slog.String("ticker", job.notification.Ticker))
		return
	}
	metrics.Notifications.WithLabelValues("sent").Inc()
	logger.Debug("Trade notification delivered", slog.String("ticker", job.notification.Ticker))
}
