package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	id := uuid.New()

	token, err := CreateSessionToken(id)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, id.String(), claims.SessionID)
}

func TestValidateSessionTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateSessionToken("not.a.token")
	assert.Error(t, err)

	_, err = ValidateSessionToken("")
	assert.Error(t, err)
}
