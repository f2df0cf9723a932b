package domain

import (
	"testing"

	"github.com/ougirez/ecotrack/internal/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPassword(t *testing.T) {
	var p UserPassword
	require.NoError(t, p.Init("hunter22"))
	require.NotEmpty(t, p.Hash)
	require.Len(t, p.Salt, saltLength)

	assert.NoError(t, p.Validate("hunter22"))
	assert.ErrorIs(t, p.Validate("hunter23"), constants.ErrInvalidCredentials)
}

func TestUserPassword_SaltVaries(t *testing.T) {
	var a, b UserPassword
	require.NoError(t, a.Init("same-password"))
	require.NoError(t, b.Init("same-password"))
	assert.NotEqual(t, a.Hash, b.Hash)
}
