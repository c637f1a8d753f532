package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/adapter/http/handlers/mocks"
	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/domain/entities"
	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/usecase"
	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/usecase/interfaces"
)

const testBookingID = "5f0c2f9e-9f6d-4a3b-8f6a-1c2d3e4f5a6b"

func TestPaymentHandler_CreateCheckout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/api/payment/checkout/:bookingId", h.CreateCheckout)

		uc.EXPECT().InitiateCheckout(gomock.Any(), testBookingID, "https://horizone.example").
			Return(interfaces.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.stripe.com/c/cs_test_1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/payment/checkout/"+testBookingID, nil)
		req.Header.Set("Origin", "https://horizone.example")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["sessionId"] != "cs_test_1" || body["sessionUrl"] == "" {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("already paid maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/api/payment/checkout/:bookingId", h.CreateCheckout)

		uc.EXPECT().InitiateCheckout(gomock.Any(), testBookingID, gomock.Any()).
			Return(interfaces.CheckoutSession{}, usecase.ErrBookingAlreadyPaid)

		req := httptest.NewRequest(http.MethodPost, "/api/payment/checkout/"+testBookingID, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown booking maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/api/payment/checkout/:bookingId", h.CreateCheckout)

		uc.EXPECT().InitiateCheckout(gomock.Any(), testBookingID, gomock.Any()).
			Return(interfaces.CheckoutSession{}, usecase.ErrBookingNotFound)

		req := httptest.NewRequest(http.MethodPost, "/api/payment/checkout/"+testBookingID, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_Webhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing signature header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/api/payment/webhook", h.Webhook)

		req := httptest.NewRequest(http.MethodPost, "/api/payment/webhook", bytes.NewBufferString("{}"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid signature", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/api/payment/webhook", h.Webhook)

		uc.EXPECT().ProcessWebhook(gomock.Any(), []byte("{}"), "bad").Return(usecase.ErrWebhookSignature)

		req := httptest.NewRequest(http.MethodPost, "/api/payment/webhook", bytes.NewBufferString("{}"))
		req.Header.Set("Stripe-Signature", "bad")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("accepted event acknowledges with received", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/api/payment/webhook", h.Webhook)

		payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)
		uc.EXPECT().ProcessWebhook(gomock.Any(), payload, "sig").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/payment/webhook", bytes.NewBuffer(payload))
		req.Header.Set("Stripe-Signature", "sig")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]bool
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if !body["received"] {
			t.Fatalf("expected received=true, got %v", body)
		}
	})

	t.Run("repo failure maps to 500 for redelivery", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/api/payment/webhook", h.Webhook)

		uc.EXPECT().ProcessWebhook(gomock.Any(), gomock.Any(), "sig").Return(errors.New("dynamodb unavailable"))

		req := httptest.NewRequest(http.MethodPost, "/api/payment/webhook", bytes.NewBufferString("{}"))
		req.Header.Set("Stripe-Signature", "sig")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_GetStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/api/payment/status/:bookingId", h.GetStatus)

		checkIn := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().GetPaymentStatus(gomock.Any(), testBookingID).Return(entities.Booking{
			ID:            testBookingID,
			CheckIn:       checkIn,
			CheckOut:      checkIn.AddDate(0, 0, 2),
			FirstName:     "Nadia",
			LastName:      "Perera",
			PaymentStatus: entities.PaymentStatusPaid,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/payment/status/"+testBookingID, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["paymentStatus"] != "PAID" || body["bookingId"] != testBookingID {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/api/payment/status/:bookingId", h.GetStatus)

		uc.EXPECT().GetPaymentStatus(gomock.Any(), testBookingID).Return(entities.Booking{}, usecase.ErrBookingNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/payment/status/"+testBookingID, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_CheckSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("matched booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/api/payment/session/:sessionId", h.CheckSession)

		booking := entities.Booking{ID: testBookingID, FirstName: "Nadia", PaymentStatus: entities.PaymentStatusPaid}
		uc.EXPECT().CheckSessionStatus(gomock.Any(), "cs_test_1").Return(usecase.SessionStatus{
			Booking:              &booking,
			HotelName:            "Seaside Inn",
			BookingID:            testBookingID,
			SessionStatus:        "complete",
			SessionPaymentStatus: "paid",
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/payment/session/cs_test_1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Success bool `json:"success"`
			Booking *struct {
				HotelName string `json:"hotelName"`
			} `json:"booking"`
			StripePaymentStatus string `json:"stripePaymentStatus"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if !body.Success || body.Booking == nil || body.Booking.HotelName != "Seaside Inn" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("unmatched session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/api/payment/session/:sessionId", h.CheckSession)

		uc.EXPECT().CheckSessionStatus(gomock.Any(), "cs_test_1").Return(usecase.SessionStatus{
			SessionStatus:        "open",
			SessionPaymentStatus: "unpaid",
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/payment/session/cs_test_1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Success bool `json:"success"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.Success || body.Message == "" {
			t.Fatalf("unexpected body %+v", body)
		}
	})
}
