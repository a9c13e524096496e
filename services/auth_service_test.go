package services

import (
	"testing"
	"time"

	"conduit-api/config"
	"conduit-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture() (AuthService, *fakeUserRepo) {
	userRepo := &fakeUserRepo{}
	cfg := &config.Config{
		JWTSecret:     []byte("test-secret"),
		JWTExpiration: time.Hour,
	}
	return NewAuthService(userRepo, cfg), userRepo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthFixture()

	registered, err := svc.Register(models.NewUser{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", registered.User.Username)
	assert.NotEmpty(t, registered.User.Token)

	logged, err := svc.Login(models.LoginUser{Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", logged.User.Email)
}

func TestRegisterDuplicateConflicts(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Register(models.NewUser{Username: "alice", Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Register(models.NewUser{Username: "other", Email: "alice@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, models.ErrConflict)

	_, err = svc.Register(models.NewUser{Username: "alice", Email: "other@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Register(models.NewUser{Username: "alice", Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Login(models.LoginUser{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = svc.Login(models.LoginUser{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, models.ErrValidation)
}

type erroringUserRepo struct{}

func (r *erroringUserRepo) Create(user *models.User) error               { return assert.AnError }
func (r *erroringUserRepo) GetByID(id uint) (*models.User, error)        { return nil, assert.AnError }
func (r *erroringUserRepo) GetByEmail(e string) (*models.User, error)    { return nil, assert.AnError }
func (r *erroringUserRepo) GetByUsername(u string) (*models.User, error) { return nil, assert.AnError }
func (r *erroringUserRepo) Update(user *models.User) error               { return assert.AnError }

func TestRegisterSurfacesLookupErrors(t *testing.T) {
	cfg := &config.Config{JWTSecret: []byte("test-secret"), JWTExpiration: time.Hour}
	svc := NewAuthService(&erroringUserRepo{}, cfg)

	// An infrastructure failure during the duplicate pre-check is not a
	// conflict; it propagates as is.
	_, err := svc.Register(models.NewUser{Username: "alice", Email: "alice@example.com", Password: "secret123"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrConflict)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestUpdateUserPatchesOnlyProvidedFields(t *testing.T) {
	svc, userRepo := newAuthFixture()

	_, err := svc.Register(models.NewUser{Username: "alice", Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)
	user := userRepo.users[0]

	bio := "dragon enthusiast"
	resp, err := svc.UpdateUser(user.ID, models.UserPatch{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, bio, resp.User.Bio)
	assert.Equal(t, "alice", resp.User.Username)
	assert.Equal(t, "alice@example.com", resp.User.Email)
}
