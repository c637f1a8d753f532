package repository

import "os"

// getenvDefault resolves table names from the environment with a fallback.
func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
