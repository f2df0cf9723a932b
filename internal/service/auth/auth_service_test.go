package auth

import (
	"context"
	"testing"

	"github.com/ougirez/ecotrack/internal/domain"
	"github.com/ougirez/ecotrack/internal/domain/dto"
	"github.com/ougirez/ecotrack/internal/pkg/constants"
	"github.com/ougirez/ecotrack/internal/pkg/store"
	"github.com/ougirez/ecotrack/internal/pkg/utils"
	"github.com/ougirez/ecotrack/internal/service/audit"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	store.Store

	byEmail map[string]*domain.User
	created *domain.User
}

func (f *fakeStore) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, constants.ErrDBNotFound
}

func (f *fakeStore) CreateUser(_ context.Context, user *domain.User) error {
	user.ID = 1
	f.byEmail[user.Email] = user
	f.created = user
	return nil
}

func (f *fakeStore) InsertAudit(_ context.Context, _ *domain.AuditRecord) error {
	return nil
}

func newService() (*Service, *fakeStore) {
	fs := &fakeStore{byEmail: map[string]*domain.User{}}
	return NewAuthService(fs, audit.NewAuditService(fs)), fs
}

func TestSignup(t *testing.T) {
	viper.Set(constants.ViperSecretKey, "test-secret")
	t.Cleanup(func() { viper.Set(constants.ViperSecretKey, "") })

	svc, fs := newService()

	resp, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Email:    "maria@example.com",
		Password: "secreto1",
	})
	require.NoError(t, err)
	require.NotNil(t, fs.created)
	assert.Equal(t, "maria", fs.created.Username)
	assert.NotEmpty(t, fs.created.Hash)
	assert.NotEqual(t, "secreto1", fs.created.Hash)
	assert.NotEmpty(t, resp.AuthToken)

	parsed, err := utils.ParseAuthToken(resp.AuthToken)
	require.NoError(t, err)
	assert.Equal(t, fs.created.ID, parsed.UserID)
}

func TestSignup_EmailTaken(t *testing.T) {
	svc, fs := newService()
	fs.byEmail["maria@example.com"] = &domain.User{ID: 1, Email: "maria@example.com"}

	_, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Email:    "maria@example.com",
		Password: "secreto1",
	})
	assert.ErrorIs(t, err, constants.ErrEmailAlreadyTaken)
}

func TestLogin(t *testing.T) {
	viper.Set(constants.ViperSecretKey, "test-secret")
	t.Cleanup(func() { viper.Set(constants.ViperSecretKey, "") })

	svc, _ := newService()
	_, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Email:    "maria@example.com",
		Password: "secreto1",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "maria@example.com",
		Password: "secreto1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AuthToken)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "maria@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, constants.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secreto1",
	})
	assert.ErrorIs(t, err, constants.ErrInvalidCredentials)
}

func TestServiceToken(t *testing.T) {
	viper.Set(constants.ViperSecretKey, "test-secret")
	viper.Set(constants.ViperAPIUserKey, "svc")
	viper.Set(constants.ViperAPIPassKey, "svc-pass")
	t.Cleanup(func() {
		viper.Set(constants.ViperSecretKey, "")
		viper.Set(constants.ViperAPIUserKey, "")
		viper.Set(constants.ViperAPIPassKey, "")
	})

	svc, _ := newService()

	token, err := svc.ServiceToken(context.Background(), &dto.ServiceTokenRequest{
		Username: "svc",
		Password: "svc-pass",
	})
	require.NoError(t, err)

	parsed, err := utils.ParseAuthToken(token)
	require.NoError(t, err)
	assert.Equal(t, "svc", parsed.Service)

	_, err = svc.ServiceToken(context.Background(), &dto.ServiceTokenRequest{
		Username: "svc",
		Password: "nope",
	})
	assert.ErrorIs(t, err, constants.ErrInvalidCredentials)
}
