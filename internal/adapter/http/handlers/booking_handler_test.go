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
	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/adapter/http/middlewares"
	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/domain/entities"
	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/usecase"
)

// asPrincipal injects an authenticated principal the way the auth middleware
// would.
func asPrincipal(userID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middlewares.ContextUserID, userID)
		c.Set(middlewares.ContextUserRole, role)
		c.Next()
	}
}

func TestBookingHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	validPayload := `{"hotelId":"` + testHotelID + `","checkIn":"2025-07-01","checkOut":"2025-07-03","firstName":"Nadia","lastName":"Perera","email":"nadia@example.com","phoneNumber":"+94111222333","roomNumber":12}`

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/api/bookings", asPrincipal("user-1", "user"), h.Create)

		req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unparseable dates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/api/bookings", asPrincipal("user-1", "user"), h.Create)

		payload := `{"hotelId":"` + testHotelID + `","checkIn":"July 1st","checkOut":"2025-07-03","firstName":"Nadia","lastName":"Perera","email":"nadia@example.com","phoneNumber":"+94111222333","roomNumber":12}`
		req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("owner comes from principal not payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/api/bookings", asPrincipal("user-1", "user"), h.Create)

		uc.EXPECT().CreateBooking(gomock.Any(), "user-1", gomock.Any()).DoAndReturn(
			func(_ any, userID string, cmd usecase.CreateBookingCommand) (entities.Booking, error) {
				return entities.Booking{ID: testBookingID, HotelID: cmd.HotelID, UserID: userID, PaymentStatus: entities.PaymentStatusPending}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString(validPayload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if w.Body.Len() != 0 {
			t.Fatalf("expected empty body, got %s", w.Body.String())
		}
	})

	t.Run("unknown hotel maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/api/bookings", asPrincipal("user-1", "user"), h.Create)

		uc.EXPECT().CreateBooking(gomock.Any(), "user-1", gomock.Any()).Return(entities.Booking{}, usecase.ErrHotelNotFound)

		req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString(validPayload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestBookingHandler_ListForUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("defaults to the principal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.GET("/api/bookings/user", asPrincipal("user-1", "user"), h.ListForUser)

		uc.EXPECT().ListBookingsForUser(gomock.Any(), "user-1").Return([]usecase.BookingWithHotel{
			{Booking: entities.Booking{ID: testBookingID, UserID: "user-1"}, HotelName: "Seaside Inn"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/bookings/user", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("non-admin cannot read another user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.GET("/api/bookings/user/:userId", asPrincipal("user-1", "user"), h.ListForUser)

		req := httptest.NewRequest(http.MethodGet, "/api/bookings/user/user-2", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("admin can read any user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.GET("/api/bookings/user/:userId", asPrincipal("admin-1", "admin"), h.ListForUser)

		uc.EXPECT().ListBookingsForUser(gomock.Any(), "user-2").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/bookings/user/user-2", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestBookingHandler_ListForHotel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("joins guest records", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.GET("/api/bookings/hotels/:hotelId", asPrincipal("admin-1", "admin"), h.ListForHotel)

		uc.EXPECT().ListBookingsForHotel(gomock.Any(), testHotelID).Return([]usecase.BookingWithGuest{
			{Booking: entities.Booking{ID: testBookingID, HotelID: testHotelID, UserID: "user-1"}, Guest: entities.User{ID: "user-1", Name: "Nadia"}},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/bookings/hotels/"+testHotelID, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []struct {
			User struct {
				Name string `json:"name"`
			} `json:"user"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(body) != 1 || body[0].User.Name != "Nadia" {
			t.Fatalf("unexpected body %+v", body)
		}
	})
}
