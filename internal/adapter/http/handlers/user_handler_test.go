package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/adapter/http/handlers/mocks"
	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/domain/entities"
)

func TestUserHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.POST("/api/users", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString(`{"name":"Nadia"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUserUseCase(ctrl)
		h := NewUserHandler(uc)

		r := gin.New()
		r.POST("/api/users", h.Create)

		uc.EXPECT().CreateUser(gomock.Any(), entities.User{ID: "auth0|abc", Name: "Nadia", Email: "nadia@example.com"}).
			Return(entities.User{ID: "auth0|abc", Name: "Nadia", Email: "nadia@example.com"}, nil)

		payload := `{"id":"auth0|abc","name":"Nadia","email":"nadia@example.com"}`
		req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["id"] != "auth0|abc" {
			t.Fatalf("unexpected body %v", body)
		}
	})
}
