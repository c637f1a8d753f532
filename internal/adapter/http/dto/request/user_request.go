package request

import "github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/domain/entities"

// CreateUserRequest registers a shadow user record. ID is optional; when set
// it should be the identity provider's subject so booking reads can join on
// it.

type CreateUserRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

func (r CreateUserRequest) ToEntity() entities.User {
	return entities.User{ID: r.ID, Name: r.Name, Email: r.Email}
}
