package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("Passw0rd")
	require.NoError(t, err)
	assert.NotEqual(t, "Passw0rd", hash)

	assert.NoError(t, hasher.Compare(hash, "Passw0rd"))
	assert.Error(t, hasher.Compare(hash, "Wr0ngPass"))
}

func TestBcryptHasher_HashesDiffer(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	h1, err := hasher.Hash("Passw0rd")
	require.NoError(t, err)
	h2, err := hasher.Hash("Passw0rd")
	require.NoError(t, err)

	// bcrypt salts internally, so equal passwords produce distinct hashes.
	assert.NotEqual(t, h1, h2)
}
