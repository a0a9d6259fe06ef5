package service

import (
	"errors"

	"github.com/htloc/toeic-practice-api/internal/apperror"
	"github.com/htloc/toeic-practice-api/internal/dto"
	"github.com/htloc/toeic-practice-api/internal/repository"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type UserService interface {
	GetUser(id uint) (*dto.UserResponse, error)
	GetAllUsers() ([]dto.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUser(id uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFoundf("user %d not found", id)
		}
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to load user")
	}

	var resp dto.UserResponse
	copier.Copy(&resp, user)
	return &resp, nil
}

func (s *userService) GetAllUsers() ([]dto.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, err, "failed to list users")
	}

	resps := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		var resp dto.UserResponse
		copier.Copy(&resp, &user)
		resps = append(resps, resp)
	}
	return resps, nil
}
