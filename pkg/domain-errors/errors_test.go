package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

// DomainErrorsSuite tests the domain error primitives.
//
// These are the error primitives used at every layer boundary, so the
// invariants "wrapped domain errors preserve original code" and "errors.Is
// matches by code" need to hold.
type DomainErrorsSuite struct {
	suite.Suite
}

func TestDomainErrorsSuite(t *testing.T) {
	suite.Run(t, new(DomainErrorsSuite))
}

func (s *DomainErrorsSuite) TestErrorInterface() {
	s.Run("returns message when present", func() {
		err := &Error{Code: CodeConflict, Message: "payment already confirmed"}
		s.Equal("payment already confirmed", err.Error())
	})

	s.Run("returns code when message is empty", func() {
		err := &Error{Code: CodeConflict}
		s.Equal("conflict", err.Error())
	})
}

func (s *DomainErrorsSuite) TestUnwrap() {
	inner := errors.New("connection refused")
	err := Wrap(inner, CodeInternal, "store unavailable")
	s.ErrorIs(err, inner)
}

func (s *DomainErrorsSuite) TestIsMatchesByCode() {
	err := New(CodeUnauthorized, "invalid token")
	s.ErrorIs(err, New(CodeUnauthorized, "different message"))
	s.NotErrorIs(err, New(CodeTokenExpired, "invalid token"))
}

func (s *DomainErrorsSuite) TestWrapPreservesExistingCode() {
	inner := New(CodeConflict, "already confirmed")
	wrapped := Wrap(fmt.Errorf("confirm petitioner: %w", inner), CodeInternal, "confirm failed")

	var e *Error
	s.Require().ErrorAs(wrapped, &e)
	s.Equal(CodeConflict, e.Code)
}

func (s *DomainErrorsSuite) TestHasCode() {
	err := fmt.Errorf("handler: %w", New(CodeValidation, "petitioner id is required"))
	s.True(HasCode(err, CodeValidation))
	s.False(HasCode(err, CodeBadRequest))
	s.False(HasCode(errors.New("plain"), CodeValidation))
}
