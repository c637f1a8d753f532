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
	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/usecase"
)

func TestSearchHandler_CreateEmbeddings(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success reports count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISearchUseCase(ctrl)
		h := NewSearchHandler(uc)

		r := gin.New()
		r.POST("/api/hotels/embeddings/create", h.CreateEmbeddings)

		uc.EXPECT().CreateEmbeddings(gomock.Any()).Return(7, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/hotels/embeddings/create", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["indexed"] != float64(7) {
			t.Fatalf("unexpected body %v", body)
		}
	})
}

func TestSearchHandler_Retrieve(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns scored hotels", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISearchUseCase(ctrl)
		h := NewSearchHandler(uc)

		r := gin.New()
		r.GET("/api/hotels/search/retrieve", h.Retrieve)

		uc.EXPECT().Retrieve(gomock.Any(), "beach").Return([]usecase.ScoredHotel{
			{Hotel: entities.Hotel{ID: testHotelID, Name: "Seaside Inn"}, Confidence: 0.91},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/hotels/search/retrieve?query=beach", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Results []struct {
				Hotel struct {
					Name string `json:"name"`
				} `json:"hotel"`
				Confidence float64 `json:"confidence"`
			} `json:"results"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(body.Results) != 1 || body.Results[0].Hotel.Name != "Seaside Inn" {
			t.Fatalf("unexpected body %+v", body)
		}
	})
}

func TestSearchHandler_Respond(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing prompt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISearchUseCase(ctrl)
		h := NewSearchHandler(uc)

		r := gin.New()
		r.POST("/api/hotels/llm", h.Respond)

		req := httptest.NewRequest(http.MethodPost, "/api/hotels/llm", bytes.NewBufferString(`{}`))
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
		uc := mocks.NewMockISearchUseCase(ctrl)
		h := NewSearchHandler(uc)

		r := gin.New()
		r.POST("/api/hotels/llm", h.Respond)

		uc.EXPECT().GenerateResponse(gomock.Any(), "best hotel in Galle?").Return("Seaside Inn", nil)

		req := httptest.NewRequest(http.MethodPost, "/api/hotels/llm", bytes.NewBufferString(`{"prompt":"best hotel in Galle?"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["response"] != "Seaside Inn" {
			t.Fatalf("unexpected body %v", body)
		}
	})
}
