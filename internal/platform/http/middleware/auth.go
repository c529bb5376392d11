package middleware

import (
	"net/http"
)

// APIKeyAuth requires a matching key, sent as the X-API-Key header or, for
// browser form posts, as the api_key form field. An empty validKey disables
// the check for single-operator deployments.
func APIKeyAuth(validKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if validKey == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientKey := r.Header.Get("X-API-Key")
			if clientKey == "" {
				clientKey = r.PostFormValue("api_key")
			}

			if clientKey == "" || clientKey != validKey {
				http.Error(w, "Unauthorized: Invalid or missing API Key", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
