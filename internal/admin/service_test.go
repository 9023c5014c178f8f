package admin

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "petitionpay/pkg/domain-errors"
)

type stubIssuer struct {
	token string
	err   error
}

func (s stubIssuer) Issue(adminName, adminCode string) (string, error) {
	return s.token, s.err
}

type failingStore struct{}

func (failingStore) FindByCode(context.Context, string) (*Admin, error) {
	return nil, errors.New("connection refused")
}

func newTestService(store Store, issuer TokenIssuer) *Service {
	return NewService(store, issuer, slog.Default(), nil)
}

func TestLogin_Success(t *testing.T) {
	store := NewMemory()
	store.Seed(Admin{Name: "Asha Rao", Code: "ADM-1"})
	svc := newTestService(store, stubIssuer{token: "signed-token"})

	res, err := svc.Login(context.Background(), "ADM-1")
	require.NoError(t, err)
	assert.Equal(t, "signed-token", res.Token)
	assert.Equal(t, "Asha Rao", res.AdminName)
}

func TestLogin_EmptyCode(t *testing.T) {
	svc := newTestService(NewMemory(), stubIssuer{token: "t"})

	_, err := svc.Login(context.Background(), "")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestLogin_UnknownCode(t *testing.T) {
	store := NewMemory()
	store.Seed(Admin{Name: "Asha Rao", Code: "ADM-1"})
	svc := newTestService(store, stubIssuer{token: "t"})

	_, err := svc.Login(context.Background(), "WRONG")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestLogin_StoreFailureIsInternal(t *testing.T) {
	svc := newTestService(failingStore{}, stubIssuer{token: "t"})

	_, err := svc.Login(context.Background(), "ADM-1")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
}

func TestLogin_SigningFailureIsInternal(t *testing.T) {
	store := NewMemory()
	store.Seed(Admin{Name: "Asha Rao", Code: "ADM-1"})
	svc := newTestService(store, stubIssuer{err: errors.New("bad key")})

	_, err := svc.Login(context.Background(), "ADM-1")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
}
