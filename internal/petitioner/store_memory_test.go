package petitioner

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petitionpay/pkg/platform/sentinel"
	"petitionpay/pkg/testutil"
)

func unconfirmed(name string, number, group int) Petitioner {
	return Petitioner{
		ID:               uuid.NewString(),
		Name:             name,
		Email:            name + "@example.com",
		Department:       "Revenue",
		PetitionerNumber: number,
		PetitionerGroup:  group,
	}
}

func TestConfirmPayment_Success(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()
	p := unconfirmed("Debasish Mondal", 101, 1)
	require.NoError(t, store.Insert(ctx, p))

	now := time.Now().UTC()
	got, err := store.ConfirmPayment(ctx, p.ID, "A1B2C3D4E5", "Asha Rao", now)
	require.NoError(t, err)

	assert.True(t, got.PaymentConfirmed)
	require.NotNil(t, got.PaymentID)
	assert.Equal(t, "A1B2C3D4E5", *got.PaymentID)
	require.NotNil(t, got.ConfirmedBy)
	assert.Equal(t, "Asha Rao", *got.ConfirmedBy)
	require.NotNil(t, got.ConfirmedAt)
	assert.Equal(t, now, *got.ConfirmedAt)
}

func TestConfirmPayment_AlreadyConfirmed(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()
	p := unconfirmed("Debasish Mondal", 101, 1)
	require.NoError(t, store.Insert(ctx, p))

	_, err := store.ConfirmPayment(ctx, p.ID, "A1B2C3D4E5", "Asha Rao", time.Now().UTC())
	require.NoError(t, err)

	_, err = store.ConfirmPayment(ctx, p.ID, "F6A7B8C9D0", "Binay Sen", time.Now().UTC())
	require.ErrorIs(t, err, sentinel.ErrConflict)

	// The second attempt must not mutate the record.
	got, ok := store.Get(p.ID)
	require.True(t, ok)
	assert.Equal(t, "A1B2C3D4E5", *got.PaymentID)
	assert.Equal(t, "Asha Rao", *got.ConfirmedBy)
}

func TestConfirmPayment_NotFoundIsSameConflict(t *testing.T) {
	store := NewMemory()

	_, err := store.ConfirmPayment(context.Background(), uuid.NewString(), "A1B2C3D4E5", "Asha Rao", time.Now().UTC())
	require.ErrorIs(t, err, sentinel.ErrConflict)
}

func TestConfirmPayment_ExactlyOnceUnderConcurrency(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()
	p := unconfirmed("Debasish Mondal", 101, 1)
	require.NoError(t, store.Insert(ctx, p))

	const n = 50
	res := testutil.RunConcurrent(n, func(idx int) error {
		_, err := store.ConfirmPayment(ctx, p.ID, uuid.NewString()[:10], "Asha Rao", time.Now().UTC())
		return err
	})

	assert.Equal(t, int32(1), res.Successes)
	assert.Equal(t, int32(n-1), res.Conflicts)
	assert.Equal(t, int32(0), res.Errors)
}

func TestSearch_ByNameCaseInsensitive(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()
	require.NoError(t, store.Insert(ctx, unconfirmed("Debasish Mondal", 101, 1)))
	require.NoError(t, store.Insert(ctx, unconfirmed("Anita Mondal", 102, 2)))
	require.NoError(t, store.Insert(ctx, unconfirmed("Ravi Kumar", 103, 3)))

	got, err := store.Search(ctx, "mondal")
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Ordered by name ascending.
	assert.Equal(t, "Anita Mondal", got[0].Name)
	assert.Equal(t, "Debasish Mondal", got[1].Name)
}

func TestSearch_ByPetitionerNumber(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()
	require.NoError(t, store.Insert(ctx, unconfirmed("Debasish Mondal", 101, 1)))
	require.NoError(t, store.Insert(ctx, unconfirmed("Ravi Kumar", 103, 3)))

	got, err := store.Search(ctx, "103")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Ravi Kumar", got[0].Name)
}

func TestSearch_NoMatchesReturnsEmptySlice(t *testing.T) {
	store := NewMemory()

	got, err := store.Search(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestInsert_Duplicate(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()
	p := unconfirmed("Debasish Mondal", 101, 1)
	require.NoError(t, store.Insert(ctx, p))

	err := store.Insert(ctx, p)
	require.ErrorIs(t, err, sentinel.ErrConflict)
}
