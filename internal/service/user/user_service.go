package user

import (
	"context"
	"fmt"

	"github.com/ougirez/ecotrack/internal/domain"
	"github.com/ougirez/ecotrack/internal/domain/dto"
	"github.com/ougirez/ecotrack/internal/pkg/store"
	"github.com/ougirez/ecotrack/internal/service/audit"
)

type Service struct {
	store store.Store
	audit *audit.Service
}

func NewUserService(store store.Store, audit *audit.Service) *Service {
	return &Service{store: store, audit: audit}
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.store.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("store.GetUserByID: %w", err)
	}
	return user, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.ListUsers: %w", err)
	}
	return users, nil
}

func (s *Service) UpdateProfile(ctx context.Context, id int64, request *dto.UpdateProfileRequest, actorID int64) (*domain.User, error) {
	user, err := s.store.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("store.GetUserByID: %w", err)
	}
	old := *user

	user.Name = &request.Name
	user.Lastname = &request.Lastname
	user.Birthdate = &request.Birthdate

	if err := s.store.UpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("store.UpdateUser: %w", err)
	}

	s.audit.Record(ctx, domain.AuditUpdate, "users", user.ID, &old, user, actorID)

	return user, nil
}

func (s *Service) UpdatePassword(ctx context.Context, id int64, request *dto.UpdatePasswordRequest, actorID int64) error {
	user, err := s.store.GetUserByID(ctx, id)
	if err != nil {
		return fmt.Errorf("store.GetUserByID: %w", err)
	}

	if err := user.UserPassword.Validate(request.OldPassword); err != nil {
		return err
	}

	if err := user.UserPassword.Init(request.NewPassword); err != nil {
		return err
	}

	if err := s.store.UpdateUser(ctx, user); err != nil {
		return fmt.Errorf("store.UpdateUser: %w", err)
	}

	s.audit.Record(ctx, domain.AuditUpdate, "users", user.ID, nil, nil, actorID)

	return nil
}

func (s *Service) UploadProfilePhoto(ctx context.Context, id int64, request *dto.UploadProfilePhotoRequest, actorID int64) (*domain.User, error) {
	user, err := s.store.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("store.GetUserByID: %w", err)
	}
	old := map[string]interface{}{"profile_photo": user.ProfilePhoto}

	user.ProfilePhoto = &request.ProfilePhoto
	if err := s.store.UpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("store.UpdateUser: %w", err)
	}

	s.audit.Record(ctx, domain.AuditUpdate, "users", user.ID, old, map[string]interface{}{"profile_photo": request.ProfilePhoto}, actorID)

	return user, nil
}

func (s *Service) Delete(ctx context.Context, id int64, actorID int64) error {
	user, err := s.store.GetUserByID(ctx, id)
	if err != nil {
		return fmt.Errorf("store.GetUserByID: %w", err)
	}

	if err := s.store.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("store.DeleteUser: %w", err)
	}

	s.audit.Record(ctx, domain.AuditDelete, "users", id, user, nil, actorID)

	return nil
}
