package confirmation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"petitionpay/internal/notification"
	"petitionpay/internal/petitioner"
	"petitionpay/internal/platform/metrics"
	"petitionpay/internal/token"
	dErrors "petitionpay/pkg/domain-errors"
	"petitionpay/pkg/platform/sentinel"
)

// ReceiptDispatcher hands a receipt off for asynchronous delivery. The hand-off
// must not block and its outcome must not influence the confirmation result.
type ReceiptDispatcher interface {
	Dispatch(ctx context.Context, receipt notification.Receipt)
}

// Result is the successful confirmation outcome returned to the dashboard.
type Result struct {
	Message    string
	Petitioner petitioner.Petitioner
}

// Service applies one-shot payment confirmations. All concurrency control
// lives in the store's conditional update; the service adds validation,
// display derivation, and the fire-and-forget receipt hand-off.
type Service struct {
	store      petitioner.Store
	dispatcher ReceiptDispatcher
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

func NewService(store petitioner.Store, dispatcher ReceiptDispatcher, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		store:      store,
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    m,
	}
}

// Confirm marks the petitioner's payment as received exactly once, attributed
// to the acting admin. A missing record and an already-confirmed record both
// come back as the same conflict; callers cannot tell them apart and the
// dashboard treats both as "already processed, refresh your list".
func (s *Service) Confirm(ctx context.Context, petitionerID string, actor token.Actor) (*Result, error) {
	if petitionerID == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "petitioner id is required")
	}

	paymentID, err := NewPaymentID()
	if err != nil {
		s.logger.ErrorContext(ctx, "payment id generation failed", "error", err)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "confirmation failed")
	}

	p, err := s.store.ConfirmPayment(ctx, petitionerID, paymentID, actor.Name, time.Now().UTC())
	if err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			s.metrics.IncrementConfirmationConflicts()
			return nil, dErrors.Wrap(err, dErrors.CodeConflict, "Payment already confirmed or petitioner not found.")
		}
		s.logger.ErrorContext(ctx, "confirmation update failed",
			"error", err,
			"petitioner_id", petitionerID,
		)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "confirmation failed")
	}

	details, known := DetailsForGroup(p.PetitionerGroup)
	if !known {
		s.metrics.IncrementUnknownGroup()
		s.logger.WarnContext(ctx, "unrecognized petitioner group",
			"petitioner_id", p.ID,
			"group", p.PetitionerGroup,
		)
	}

	s.metrics.IncrementConfirmations()
	s.logger.InfoContext(ctx, "payment confirmed",
		"petitioner_id", p.ID,
		"payment_id", paymentID,
		"admin", actor.Name,
	)

	s.dispatcher.Dispatch(ctx, notification.Receipt{
		Petitioner:    *p,
		ConfirmedBy:   actor.Name,
		AmountDisplay: details.AmountDisplay,
		Description:   details.Description,
		CaseNumber:    details.CaseNumber,
	})

	return &Result{
		Message:    fmt.Sprintf("Payment confirmed and email sent successfully. Amount: %s.", details.AmountDisplay),
		Petitioner: *p,
	}, nil
}
