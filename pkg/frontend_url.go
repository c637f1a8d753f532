package pkg

import (
	"log"
	"net/http"
	"net/url"
	"os"
)

// FrontendURL determines where to send the user back after Stripe Checkout.
// Headers are checked in order of reliability: Origin, then Referer, then
// X-Forwarded-Host for proxied requests, then the FRONTEND_URL env var.
func FrontendURL(r *http.Request) string {
	if origin := r.Header.Get("Origin"); origin != "" {
		return origin
	}

	if referer := r.Header.Get("Referer"); referer != "" {
		if u, err := url.Parse(referer); err == nil && u.Scheme != "" && u.Host != "" {
			return u.Scheme + "://" + u.Host
		}
		log.Printf("[payment][frontend-url] invalid referer header %q", referer)
	}

	if host := r.Header.Get("X-Forwarded-Host"); host != "" {
		proto := r.Header.Get("X-Forwarded-Proto")
		if proto == "" {
			proto = "https"
		}
		return proto + "://" + host
	}

	if v := os.Getenv("FRONTEND_URL"); v != "" {
		return v
	}
	return "http://localhost:5173"
}
