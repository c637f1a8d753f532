package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/domain/entities"
	mock_interfaces "github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/usecase/interfaces/mocks"
)

func TestUserUseCase_CreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects missing name or email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewUserUseCase(mock_interfaces.NewMockIUserRepository(ctrl))

		_, err := uc.CreateUser(ctx, entities.User{Name: "Nadia"})
		if !errors.Is(err, ErrInvalidUserInput) {
			t.Fatalf("expected ErrInvalidUserInput, got %v", err)
		}
	})

	t.Run("keeps caller-supplied id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().Create(ctx, entities.User{ID: "auth0|abc", Name: "Nadia", Email: "nadia@example.com"}).
			DoAndReturn(func(_ context.Context, u entities.User) (entities.User, error) { return u, nil })

		created, err := uc.CreateUser(ctx, entities.User{ID: "auth0|abc", Name: "Nadia", Email: "nadia@example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "auth0|abc" {
			t.Fatalf("expected supplied id kept, got %s", created.ID)
		}
	})

	t.Run("generates id when missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.ID == "" {
					t.Fatalf("expected generated id")
				}
				return u, nil
			})

		if _, err := uc.CreateUser(ctx, entities.User{Name: "Nadia", Email: "nadia@example.com"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
