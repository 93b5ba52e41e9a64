package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/examdesk-api/internal/models"
	"github.com/noah-isme/examdesk-api/pkg/jobs"
)

// Notifier receives user-facing notifications. Delivery is fire and forget.
type Notifier interface {
	Notify(ctx context.Context, n models.Notification)
}

// NopNotifier drops every notification.
type NopNotifier struct{}

// Notify implements Notifier.
func (NopNotifier) Notify(context.Context, models.Notification) {}

func loadFailedNotification() models.Notification {
	return models.Notification{Title: "Error", Description: "Failed to load dashboard data", Severity: models.SeverityDestructive}
}

// NotificationRecorder collects the notifications raised while serving one
// request and forwards each to the user's push channel.
type NotificationRecorder struct {
	userID  int64
	forward *NotificationDispatcher

	mu    sync.Mutex
	items []models.Notification
}

// NewNotificationRecorder creates a recorder for userID. forward may be nil.
func NewNotificationRecorder(userID int64, forward *NotificationDispatcher) *NotificationRecorder {
	return &NotificationRecorder{userID: userID, forward: forward}
}

// Notify implements Notifier.
func (r *NotificationRecorder) Notify(ctx context.Context, n models.Notification) {
	if n.Severity == "" {
		n.Severity = models.SeverityDefault
	}
	r.mu.Lock()
	r.items = append(r.items, n)
	r.mu.Unlock()
	r.forward.Dispatch(ctx, r.userID, n)
}

// Notifications returns a copy of what has been recorded so far.
func (r *NotificationRecorder) Notifications() []models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Notification, len(r.items))
	copy(out, r.items)
	return out
}

type notificationPublisher interface {
	Publish(ctx context.Context, channel string, payload interface{}) error
}

// PushedNotification is the message published on a user channel.
type PushedNotification struct {
	UserID int64               `json:"user_id"`
	Item   models.Notification `json:"notification"`
	SentAt time.Time           `json:"sent_at"`
}

// NotificationDispatcherConfig tunes the push fan-out.
type NotificationDispatcherConfig struct {
	ChannelPrefix string
	Workers       int
	Retries       int
}

// NotificationDispatcher pushes notifications to per-user channels on a worker queue.
type NotificationDispatcher struct {
	publisher notificationPublisher
	metrics   *MetricsService
	logger    *zap.Logger
	prefix    string
	queue     *jobs.Queue[PushedNotification]
}

// NewNotificationDispatcher builds a dispatcher; call Start before use.
func NewNotificationDispatcher(publisher notificationPublisher, metrics *MetricsService, cfg NotificationDispatcherConfig, logger *zap.Logger) *NotificationDispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ChannelPrefix == "" {
		cfg.ChannelPrefix = "notifications"
	}
	d := &NotificationDispatcher{publisher: publisher, metrics: metrics, logger: logger, prefix: cfg.ChannelPrefix}
	d.queue = jobs.NewQueue[PushedNotification]("notifications", d.publish, jobs.QueueConfig{
		Workers:    cfg.Workers,
		MaxRetries: cfg.Retries,
		RetryDelay: 250 * time.Millisecond,
		Logger:     logger,
	})
	return d
}

// Channel returns the pub/sub channel of a user.
func (d *NotificationDispatcher) Channel(userID int64) string {
	prefix := "notifications"
	if d != nil {
		prefix = d.prefix
	}
	return fmt.Sprintf("%s:%d", prefix, userID)
}

// Start launches the publishing workers.
func (d *NotificationDispatcher) Start(ctx context.Context) {
	if d == nil {
		return
	}
	d.queue.Start(ctx)
}

// Stop halts the workers.
func (d *NotificationDispatcher) Stop() {
	if d == nil {
		return
	}
	d.queue.Stop()
}

// Dispatch queues n for userID. Errors are logged, never returned.
func (d *NotificationDispatcher) Dispatch(_ context.Context, userID int64, n models.Notification) {
	if d == nil {
		return
	}
	msg := PushedNotification{UserID: userID, Item: n, SentAt: time.Now().UTC()}
	if err := d.queue.Enqueue(msg); err != nil {
		d.metrics.RecordNotificationPublish(false)
		d.logger.Warn("notification dropped", zap.Int64("user_id", userID), zap.Error(err))
	}
}

func (d *NotificationDispatcher) publish(ctx context.Context, job jobs.Job[PushedNotification]) error {
	err := d.publisher.Publish(ctx, d.Channel(job.Payload.UserID), job.Payload)
	d.metrics.RecordNotificationPublish(err == nil)
	return err
}
