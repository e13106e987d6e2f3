package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewPasswordService_ClampsCost(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, bcrypt.DefaultCost},
		{1, bcrypt.MinCost},
		{8, 8},
		{99, bcrypt.MaxCost},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NewPasswordService(tt.in).Cost())
	}
}

func TestPasswordService_HashVerify(t *testing.T) {
	svc := NewPasswordService(bcrypt.MinCost)

	hash, err := svc.Hash("Secret#123")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret#123", hash)

	assert.True(t, svc.Verify(hash, "Secret#123"))
	assert.False(t, svc.Verify(hash, "secret#123"))
	assert.False(t, svc.Verify("not-a-hash", "Secret#123"))

	again, err := svc.Hash("Secret#123")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again, "hashes must be salted")
}
