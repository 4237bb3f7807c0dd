// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"crypto/sha256"
	"net/http"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// RequireAdmin returns a middleware guarding the admin API with a bearer
// token. tokenHash is the bcrypt hash of the expected token; an empty hash
// disables the admin API entirely (503) rather than leaving it open.
//
// Successful comparisons are memoized by token digest so the bcrypt cost is
// paid once per process, not per request.
func RequireAdmin(tokenHash string) func(http.Handler) http.Handler {
	var (
		mu       sync.RWMutex
		granted  [sha256.Size]byte
		hasGrant bool
	)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tokenHash == "" {
				http.Error(w, "Admin API not configured", http.StatusServiceUnavailable)
				return
			}

			auth := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(auth, "Bearer ")
			if !ok || token == "" {
				w.Header().Set("WWW-Authenticate", "Bearer")
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			digest := sha256.Sum256([]byte(token))

			mu.RLock()
			cached := hasGrant && granted == digest
			mu.RUnlock()

			if !cached {
				if bcrypt.CompareHashAndPassword([]byte(tokenHash), []byte(token)) != nil {
					http.Error(w, "Unauthorized", http.StatusUnauthorized)
					return
				}
				mu.Lock()
				granted = digest
				hasGrant = true
				mu.Unlock()
			}

			next.ServeHTTP(w, r)
		})
	}
}
