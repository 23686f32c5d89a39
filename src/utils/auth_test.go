package utils

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJWTRoundTrip(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT("someone@example.com", 42, "admin")
	assert.Nil(t, err)

	claims, err := ParseJWT(token)
	assert.Nil(t, err)
	assert.Equal(t, "someone@example.com", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "42", claims.Subject)

	_, err = ParseJWT(token + "tampered")
	assert.NotNil(t, err)

	os.Setenv("JWT_SECRET", "rotated-secret")
	_, err = ParseJWT(token)
	assert.NotNil(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	assert.Nil(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPassword(hash, "correct horse battery staple"))
	assert.False(t, CheckPassword(hash, "wrong password"))
	assert.False(t, CheckPassword("not-a-hash", "correct horse battery staple"))
}
