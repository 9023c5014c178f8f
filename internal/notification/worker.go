package notification

import (
	"context"
	"log/slog"
	"time"

	"petitionpay/internal/platform/metrics"
)

const (
	defaultQueueSize   = 64
	defaultSendTimeout = 30 * time.Second
)

// Worker consumes receipts from a channel and delivers them through the
// Mailer. It keeps notification latency and failure structurally decoupled
// from the request path: Dispatch never blocks, and a failed send is logged
// and counted, never surfaced.
type Worker struct {
	mailer      Mailer
	logger      *slog.Logger
	metrics     *metrics.Metrics
	inbox       chan Receipt
	sendTimeout time.Duration
}

// WorkerOption configures a Worker.
type WorkerOption func(*Worker)

// WithQueueSize overrides the inbox buffer size.
func WithQueueSize(n int) WorkerOption {
	return func(w *Worker) {
		w.inbox = make(chan Receipt, n)
	}
}

// WithSendTimeout bounds each delivery attempt.
func WithSendTimeout(d time.Duration) WorkerOption {
	return func(w *Worker) {
		w.sendTimeout = d
	}
}

func NewWorker(mailer Mailer, logger *slog.Logger, m *metrics.Metrics, opts ...WorkerOption) *Worker {
	w := &Worker{
		mailer:      mailer,
		logger:      logger,
		metrics:     m,
		inbox:       make(chan Receipt, defaultQueueSize),
		sendTimeout: defaultSendTimeout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}
	return w
}

// Dispatch hands a receipt to the worker without blocking the caller. When
// the queue is full the receipt is dropped and logged; the confirmation it
// belongs to has already committed and must not wait.
func (w *Worker) Dispatch(ctx context.Context, receipt Receipt) {
	select {
	case w.inbox <- receipt:
	default:
		w.metrics.IncrementReceiptsDropped()
		w.logger.WarnContext(ctx, "notification queue full, receipt dropped",
			"petitioner_id", receipt.Petitioner.ID,
			"email", receipt.Petitioner.Email,
		)
	}
}

// Run delivers queued receipts until ctx is cancelled, then drains whatever
// is still buffered before returning.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.drain()
			return ctx.Err()
		case receipt := <-w.inbox:
			w.send(context.WithoutCancel(ctx), receipt)
		}
	}
}

func (w *Worker) drain() {
	for {
		select {
		case receipt := <-w.inbox:
			w.send(context.Background(), receipt)
		default:
			return
		}
	}
}

func (w *Worker) send(ctx context.Context, receipt Receipt) {
	sendCtx, cancel := context.WithTimeout(ctx, w.sendTimeout)
	defer cancel()

	if err := w.mailer.Send(sendCtx, receipt); err != nil {
		w.metrics.IncrementReceiptsFailed()
		w.logger.Error("receipt delivery failed",
			"error", err,
			"petitioner_id", receipt.Petitioner.ID,
			"email", receipt.Petitioner.Email,
		)
		return
	}

	w.metrics.IncrementReceiptsSent()
	w.logger.Info("receipt delivered",
		"petitioner_id", receipt.Petitioner.ID,
		"email", receipt.Petitioner.Email,
	)
}
