package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Sokol111/ecommerce-marketplace/internal/domain"
	"github.com/Sokol111/ecommerce-marketplace/pkg/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestArtistService(t *testing.T) (*ArtistService, *mockArtistStore, *mockHasher) {
	t.Helper()
	artists := &mockArtistStore{}
	hasher := &mockHasher{}
	t.Cleanup(func() {
		artists.AssertExpectations(t)
		hasher.AssertExpectations(t)
	})
	svc := NewArtistService(artists, hasher, noopMetrics(t))
	svc.now = func() time.Time { return fixedNow }
	svc.newID = func() string { return "artist-1" }
	return svc, artists, hasher
}

func validCreateArtistInput() CreateArtistInput {
	return CreateArtistInput{
		Name:           "Meera Devi",
		Email:          "meera@example.com",
		Password:       "terracotta1",
		BusinessName:   "Meera Pottery",
		Specialization: []string{"pottery"},
		DOB:            "1988-03-12",
		AboutHimself:   "Third generation potter",
		Contact:        ContactInput{Value: "9876543210"},
		Address:        "12 Clay Lane",
		City:           "Jaipur",
		State:          "Rajasthan",
		Pincode:        "302001",
		Aadhar:         "123412341234",
	}
}

func TestArtistService_Create(t *testing.T) {
	t.Run("stores hashed password only", func(t *testing.T) {
		// Given
		svc, artists, hasher := newTestArtistService(t)
		artists.On("ExistsByPhone", mock.Anything, "9876543210").Return(false, nil)
		hasher.On("Hash", "terracotta1").Return("$2a$10$hash", nil)
		artists.On("Insert", mock.Anything, mock.MatchedBy(func(a *domain.Artist) bool {
			return a.PasswordHash == "$2a$10$hash" &&
				a.Contact.Phone == "9876543210" &&
				a.DateOfBirth.Equal(time.Date(1988, 3, 12, 0, 0, 0, 0, time.UTC)) &&
				a.CreatedAt.Equal(fixedNow)
		})).Return(nil)

		// When
		artist, err := svc.Create(t.Context(), validCreateArtistInput())

		// Then
		require.NoError(t, err)
		assert.Equal(t, "artist-1", artist.ID)
		assert.NotContains(t, fmt.Sprintf("%+v", *artist), "terracotta1")
	})

	t.Run("phone already registered", func(t *testing.T) {
		// Given
		svc, artists, _ := newTestArtistService(t)
		artists.On("ExistsByPhone", mock.Anything, "9876543210").Return(true, nil)

		// When
		_, err := svc.Create(t.Context(), validCreateArtistInput())

		// Then
		var conflict *domain.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Contains(t, conflict.Message, "already exists")
		assertNoWrites(t, &artists.Mock, "Insert")
	})

	t.Run("concurrent registration hits the unique index", func(t *testing.T) {
		// Given
		svc, artists, hasher := newTestArtistService(t)
		artists.On("ExistsByPhone", mock.Anything, mock.Anything).Return(false, nil)
		hasher.On("Hash", mock.Anything).Return("hash", nil)
		artists.On("Insert", mock.Anything, mock.Anything).Return(fmt.Errorf("insert: %w", persistence.ErrDuplicateKey))

		// When
		_, err := svc.Create(t.Context(), validCreateArtistInput())

		// Then
		var conflict *domain.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "User already exists", conflict.Message)
	})

	t.Run("hash failure", func(t *testing.T) {
		// Given
		svc, artists, hasher := newTestArtistService(t)
		artists.On("ExistsByPhone", mock.Anything, mock.Anything).Return(false, nil)
		hasher.On("Hash", mock.Anything).Return("", errors.New("boom"))

		// When
		_, err := svc.Create(t.Context(), validCreateArtistInput())

		// Then
		require.Error(t, err)
		assertNoWrites(t, &artists.Mock, "Insert")
	})

	t.Run("invalid fields", func(t *testing.T) {
		// Given
		svc, artists, hasher := newTestArtistService(t)
		in := validCreateArtistInput()
		in.Email = "meera-at-example"
		in.Password = "short"
		in.Contact.Value = "1234567890"
		in.Pincode = "30200"
		in.Aadhar = "1234"
		in.DOB = "yesterday"

		// When
		_, err := svc.Create(t.Context(), in)

		// Then
		assert.ElementsMatch(t,
			[]string{"email", "password", "contact.value", "pincode", "aadhar", "DOB"},
			violationFields(t, err),
		)
		assertNoWrites(t, &artists.Mock, "ExistsByPhone", "Insert")
		assertNoWrites(t, &hasher.Mock, "Hash")
	})
}
