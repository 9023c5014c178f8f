//go:build integration

package revocation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"petitionpay/pkg/testutil/containers"
)

type RedisTRLSuite struct {
	suite.Suite
	container *containers.RedisContainer
	trl       *RedisTRL
	ctx       context.Context
}

func TestRedisTRLSuite(t *testing.T) {
	suite.Run(t, new(RedisTRLSuite))
}

func (s *RedisTRLSuite) SetupSuite() {
	s.ctx = context.Background()
	s.container = containers.NewRedisContainer(s.T())
	s.trl = NewRedisTRL(s.container.Client)
}

func (s *RedisTRLSuite) SetupTest() {
	require.NoError(s.T(), s.container.FlushAll(s.ctx))
}

func (s *RedisTRLSuite) TestRevokeAndCheck() {
	revoked, err := s.trl.IsRevoked(s.ctx, "jti-1")
	require.NoError(s.T(), err)
	assert.False(s.T(), revoked)

	require.NoError(s.T(), s.trl.Revoke(s.ctx, "jti-1", time.Hour))

	revoked, err = s.trl.IsRevoked(s.ctx, "jti-1")
	require.NoError(s.T(), err)
	assert.True(s.T(), revoked)

	revoked, err = s.trl.IsRevoked(s.ctx, "jti-2")
	require.NoError(s.T(), err)
	assert.False(s.T(), revoked)
}

func (s *RedisTRLSuite) TestEntryExpiresWithTTL() {
	require.NoError(s.T(), s.trl.Revoke(s.ctx, "jti-short", 200*time.Millisecond))

	revoked, err := s.trl.IsRevoked(s.ctx, "jti-short")
	require.NoError(s.T(), err)
	assert.True(s.T(), revoked)

	assert.Eventually(s.T(), func() bool {
		revoked, err := s.trl.IsRevoked(s.ctx, "jti-short")
		return err == nil && !revoked
	}, 2*time.Second, 100*time.Millisecond)
}

func (s *RedisTRLSuite) TestEmptyJTIIsNoOp() {
	require.NoError(s.T(), s.trl.Revoke(s.ctx, "", time.Hour))

	revoked, err := s.trl.IsRevoked(s.ctx, "")
	require.NoError(s.T(), err)
	assert.False(s.T(), revoked)
}
