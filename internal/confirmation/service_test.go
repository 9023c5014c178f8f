package confirmation

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petitionpay/internal/notification"
	"petitionpay/internal/petitioner"
	"petitionpay/internal/token"
	dErrors "petitionpay/pkg/domain-errors"
	"petitionpay/pkg/testutil"
)

type recordingDispatcher struct {
	mu       sync.Mutex
	receipts []notification.Receipt
}

func (d *recordingDispatcher) Dispatch(_ context.Context, receipt notification.Receipt) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.receipts = append(d.receipts, receipt)
}

func (d *recordingDispatcher) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.receipts)
}

func (d *recordingDispatcher) last() notification.Receipt {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.receipts[len(d.receipts)-1]
}

type failingStore struct{}

func (failingStore) Search(context.Context, string) ([]petitioner.Petitioner, error) {
	return nil, errors.New("connection refused")
}

func (failingStore) ConfirmPayment(context.Context, string, string, string, time.Time) (*petitioner.Petitioner, error) {
	return nil, errors.New("connection refused")
}

func (failingStore) Insert(context.Context, petitioner.Petitioner) error {
	return errors.New("connection refused")
}

var testActor = token.Actor{Name: "Asha Rao", Code: "ADM-1"}

func seedPetitioner(t *testing.T, store *petitioner.MemoryStore, id string, group int) {
	t.Helper()
	err := store.Insert(context.Background(), petitioner.Petitioner{
		ID:               id,
		Name:             "Debasish Mondal",
		Email:            "debasish@example.com",
		Department:       "Revenue",
		PetitionerNumber: 101,
		PetitionerGroup:  group,
	})
	require.NoError(t, err)
}

func newTestService(store petitioner.Store, d ReceiptDispatcher) *Service {
	return NewService(store, d, slog.Default(), nil)
}

func TestConfirm_Success(t *testing.T) {
	store := petitioner.NewMemory()
	seedPetitioner(t, store, "p-1", 1)
	dispatcher := &recordingDispatcher{}
	svc := newTestService(store, dispatcher)

	res, err := svc.Confirm(context.Background(), "p-1", testActor)
	require.NoError(t, err)
	assert.Equal(t, "Payment confirmed and email sent successfully. Amount: ₹1950.", res.Message)
	assert.True(t, res.Petitioner.PaymentConfirmed)
	require.NotNil(t, res.Petitioner.PaymentID)
	assert.Regexp(t, paymentIDPattern, *res.Petitioner.PaymentID)
	require.NotNil(t, res.Petitioner.ConfirmedBy)
	assert.Equal(t, "Asha Rao", *res.Petitioner.ConfirmedBy)
	require.NotNil(t, res.Petitioner.ConfirmedAt)

	require.Equal(t, 1, dispatcher.count())
	receipt := dispatcher.last()
	assert.Equal(t, "p-1", receipt.Petitioner.ID)
	assert.Equal(t, "Asha Rao", receipt.ConfirmedBy)
	assert.Equal(t, "₹1950", receipt.AmountDisplay)
	assert.Equal(t, "for fourth phase collection", receipt.Description)
	assert.Equal(t, "WPA3028/2024", receipt.CaseNumber)
}

func TestConfirm_EmptyID(t *testing.T) {
	store := petitioner.NewMemory()
	seedPetitioner(t, store, "p-1", 1)
	dispatcher := &recordingDispatcher{}
	svc := newTestService(store, dispatcher)

	_, err := svc.Confirm(context.Background(), "", testActor)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))

	p, ok := store.Get("p-1")
	require.True(t, ok)
	assert.False(t, p.PaymentConfirmed)
	assert.Zero(t, dispatcher.count())
}

func TestConfirm_UnknownPetitionerIsConflict(t *testing.T) {
	svc := newTestService(petitioner.NewMemory(), &recordingDispatcher{})

	_, err := svc.Confirm(context.Background(), "missing", testActor)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))
	assert.Equal(t, "Payment already confirmed or petitioner not found.", err.Error())
}

func TestConfirm_AlreadyConfirmedIsConflict(t *testing.T) {
	store := petitioner.NewMemory()
	seedPetitioner(t, store, "p-1", 1)
	dispatcher := &recordingDispatcher{}
	svc := newTestService(store, dispatcher)

	first, err := svc.Confirm(context.Background(), "p-1", testActor)
	require.NoError(t, err)

	_, err = svc.Confirm(context.Background(), "p-1", token.Actor{Name: "Other Admin", Code: "ADM-2"})
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))

	// The losing attempt must not remutate the record or send a second receipt.
	p, ok := store.Get("p-1")
	require.True(t, ok)
	assert.Equal(t, *first.Petitioner.PaymentID, *p.PaymentID)
	assert.Equal(t, "Asha Rao", *p.ConfirmedBy)
	assert.Equal(t, 1, dispatcher.count())
}

func TestConfirm_StoreFailure(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	svc := newTestService(failingStore{}, dispatcher)

	_, err := svc.Confirm(context.Background(), "p-1", testActor)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
	assert.Zero(t, dispatcher.count())
}

func TestConfirm_UnknownGroupStillSucceeds(t *testing.T) {
	store := petitioner.NewMemory()
	seedPetitioner(t, store, "p-1", 99)
	dispatcher := &recordingDispatcher{}
	svc := newTestService(store, dispatcher)

	res, err := svc.Confirm(context.Background(), "p-1", testActor)
	require.NoError(t, err)
	assert.Equal(t, "Payment confirmed and email sent successfully. Amount: Amount not specified.", res.Message)
	assert.True(t, res.Petitioner.PaymentConfirmed)

	require.Equal(t, 1, dispatcher.count())
	receipt := dispatcher.last()
	assert.Equal(t, "for registration", receipt.Description)
	assert.Equal(t, "Case not specified", receipt.CaseNumber)
}

func TestConfirm_ConcurrentAttemptsExactlyOnce(t *testing.T) {
	store := petitioner.NewMemory()
	seedPetitioner(t, store, "p-1", 2)
	dispatcher := &recordingDispatcher{}
	svc := newTestService(store, dispatcher)

	res := testutil.RunConcurrent(50, func(idx int) error {
		_, err := svc.Confirm(context.Background(), "p-1", testActor)
		return err
	})

	assert.Equal(t, int32(1), res.Successes)
	assert.Equal(t, int32(49), res.Conflicts)
	assert.Equal(t, int32(0), res.Errors)
	assert.Equal(t, 1, dispatcher.count())
}
