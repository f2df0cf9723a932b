package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/ougirez/ecotrack/internal/domain"
	"github.com/ougirez/ecotrack/internal/domain/dto"
	"github.com/ougirez/ecotrack/internal/pkg/constants"
	"github.com/ougirez/ecotrack/internal/pkg/logger"
	"github.com/ougirez/ecotrack/internal/pkg/store"
	"github.com/ougirez/ecotrack/internal/pkg/utils"
	"github.com/ougirez/ecotrack/internal/service/audit"
	"github.com/spf13/viper"
)

type Service struct {
	store store.Store
	audit *audit.Service
}

func NewAuthService(store store.Store, audit *audit.Service) *Service {
	return &Service{store: store, audit: audit}
}

type SignupResponse struct {
	User      *domain.User `json:"user"`
	AuthToken string       `json:"auth_token"`
}

type LoginResponse struct {
	User      *domain.User `json:"user"`
	AuthToken string       `json:"auth_token"`
}

// Signup creates a user with a salted bcrypt password. The username defaults
// to the local part of the email, matching the original client contract.
func (svc *Service) Signup(ctx context.Context, request *dto.SignupRequest) (*SignupResponse, error) {
	if _, err := svc.store.GetUserByEmail(ctx, request.Email); !errors.Is(err, constants.ErrDBNotFound) {
		if err == nil {
			return nil, constants.ErrEmailAlreadyTaken
		}
		return nil, err
	}

	user := &domain.User{
		Username: strings.Split(request.Email, "@")[0],
		Email:    request.Email,
	}
	if err := user.UserPassword.Init(request.Password); err != nil {
		return nil, err
	}

	if err := svc.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	svc.audit.Record(ctx, domain.AuditCreate, "users", user.ID, nil, user, user.ID)

	authToken, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{UserID: user.ID})
	if err != nil {
		return nil, err
	}

	return &SignupResponse{User: user, AuthToken: authToken}, nil
}

// Login verifies credentials and issues a token.
func (svc *Service) Login(ctx context.Context, request *dto.LoginRequest) (*LoginResponse, error) {
	user, err := svc.store.GetUserByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			return nil, constants.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := user.UserPassword.Validate(request.Password); err != nil {
		return nil, err
	}

	logger.Debugf(ctx, "login: userID: [%v]", user.ID)

	authToken, err := utils.GenerateAuthToken(&utils.AuthTokenWrapper{UserID: user.ID})
	if err != nil {
		return nil, err
	}

	return &LoginResponse{User: user, AuthToken: authToken}, nil
}

// ServiceToken issues a token for the configured service credentials. Used
// by the consuming backend-for-frontend rather than end users.
func (svc *Service) ServiceToken(ctx context.Context, request *dto.ServiceTokenRequest) (string, error) {
	if request.Username != viper.GetString(constants.ViperAPIUserKey) ||
		request.Password != viper.GetString(constants.ViperAPIPassKey) {
		return "", constants.ErrInvalidCredentials
	}

	return utils.GenerateAuthToken(&utils.AuthTokenWrapper{Service: request.Username})
}
