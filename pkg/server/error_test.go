package server_test

import (
	"errors"
	"lintang/pathplanner/pkg/server"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapErrorf(t *testing.T) {
	orig := errors.New("boom")
	err := server.WrapErrorf(orig, server.ErrBadParamInput, "no %s", "path")

	assert.Equal(t, "no path", err.Error())
	assert.ErrorIs(t, err, orig)

	var ierr *server.Error
	assert.True(t, errors.As(err, &ierr))
	assert.Equal(t, server.ErrBadParamInput, ierr.Code())
}

func TestErrorCodeMessages(t *testing.T) {
	err := server.WrapErrorf(errors.New("pebble closed"), server.ErrInternalServerError, server.MessageInternalServerError)
	assert.Equal(t, "internal server error", err.Error())
	assert.Equal(t, "internal server error", server.ErrInternalServerError.Error())
	assert.Equal(t, "invalid request parameter", server.ErrBadParamInput.Error())
}
