package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/domain/entities"
	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrInvalidUserInput = errors.New("invalid user input")

// IUserUseCase maintains the shadow user records. Identity truth lives in
// the external provider; this only stores display info.

type IUserUseCase interface {
	CreateUser(ctx context.Context, u entities.User) (entities.User, error)
}

type UserUseCase struct {
	repo interfaces.IUserRepository
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

func (u *UserUseCase) CreateUser(ctx context.Context, user entities.User) (entities.User, error) {
	if strings.TrimSpace(user.Name) == "" || strings.TrimSpace(user.Email) == "" {
		return entities.User{}, ErrInvalidUserInput
	}

	// Callers may supply the provider's subject as the id; otherwise one is
	// generated.
	if strings.TrimSpace(user.ID) == "" {
		user.ID = uuid.NewString()
	}

	created, err := u.repo.Create(ctx, user)
	if err != nil {
		log.Printf("[user][usecase] create failed email=%s err=%v", user.Email, err)
		return entities.User{}, err
	}
	log.Printf("[user][usecase] create success user_id=%s", created.ID)
	return created, nil
}
