package auth

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	// Given
	hasher := NewBcryptHasher(Config{BcryptCost: bcrypt.MinCost})

	// When
	first, err := hasher.Hash("secret123")
	require.NoError(t, err)
	second, err := hasher.Hash("secret123")
	require.NoError(t, err)

	// Then
	assert.NotEqual(t, "secret123", first)
	assert.NotEqual(t, first, second, "hashes must be salted")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(first), []byte("secret123")))
	assert.ErrorIs(t, bcrypt.CompareHashAndPassword([]byte(first), []byte("wrong-pass")), bcrypt.ErrMismatchedHashAndPassword)
	cost, err := bcrypt.Cost([]byte(first))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		want    int
		wantErr bool
	}{
		{name: "missing section uses default", yaml: "", want: bcrypt.DefaultCost},
		{name: "explicit cost", yaml: "security:\n  bcrypt-cost: 12\n", want: 12},
		{name: "cost too high", yaml: "security:\n  bcrypt-cost: 40\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			v := viper.New()
			v.SetConfigType("yaml")
			require.NoError(t, v.ReadConfig(strings.NewReader(tt.yaml)))

			// When
			cfg, err := newConfig(v)

			// Then
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.BcryptCost)
		})
	}
}
