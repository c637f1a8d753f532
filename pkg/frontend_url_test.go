package pkg

import (
	"net/http/httptest"
	"testing"
)

func TestFrontendURL(t *testing.T) {
	t.Run("origin wins", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/api/payment/checkout/b-1", nil)
		r.Header.Set("Origin", "https://horizone.example")
		r.Header.Set("Referer", "https://other.example/hotels/1")

		if got := FrontendURL(r); got != "https://horizone.example" {
			t.Fatalf("expected origin, got %s", got)
		}
	})

	t.Run("referer is reduced to scheme and host", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/api/payment/checkout/b-1", nil)
		r.Header.Set("Referer", "https://horizone.example/hotels/1?x=1")

		if got := FrontendURL(r); got != "https://horizone.example" {
			t.Fatalf("expected referer host, got %s", got)
		}
	})

	t.Run("forwarded host with default proto", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/api/payment/checkout/b-1", nil)
		r.Header.Set("X-Forwarded-Host", "horizone.example")

		if got := FrontendURL(r); got != "https://horizone.example" {
			t.Fatalf("expected forwarded host, got %s", got)
		}
	})

	t.Run("env fallback", func(t *testing.T) {
		t.Setenv("FRONTEND_URL", "https://env.example")
		r := httptest.NewRequest("POST", "/api/payment/checkout/b-1", nil)

		if got := FrontendURL(r); got != "https://env.example" {
			t.Fatalf("expected env value, got %s", got)
		}
	})

	t.Run("local default", func(t *testing.T) {
		t.Setenv("FRONTEND_URL", "")
		r := httptest.NewRequest("POST", "/api/payment/checkout/b-1", nil)

		if got := FrontendURL(r); got != "http://localhost:5173" {
			t.Fatalf("expected local default, got %s", got)
		}
	})
}
