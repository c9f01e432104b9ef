package api

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/matheodrd/httphelper/handler"

	"portfolio-api/internal/services"
)

type AuthError struct {
	Error string `json:"error"`
}

var missingHeader = &AuthError{Error: "Authorization Header is missing"}
var invalidToken = &AuthError{Error: "invalid token"}

func (s *Server) AuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				w.Header().Set("WWW-Authenticate", "Bearer")
				if err := handler.Encode(missingHeader, http.StatusUnauthorized, w); err != nil {
					s.log.Error("Error encoding response", "err", err)
					w.WriteHeader(http.StatusInternalServerError)
				}
				return
			}

			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			user, err := s.service.CurrentUser(r.Context(), tokenStr)
			if err != nil {
				w.Header().Set("WWW-Authenticate", "Bearer")
				response := invalidToken
				code := http.StatusUnauthorized
				if ewc := services.DecodeErrorWithCode(err); ewc != nil {
					response = &AuthError{Error: ewc.Message}
					code = ewc.Code
				}
				if err := handler.Encode(response, code, w); err != nil {
					s.log.Error("Error encoding response", "err", err)
					w.WriteHeader(http.StatusInternalServerError)
				}
				return
			}

			ctx := context.WithValue(r.Context(), "user", user)
			ctx = context.WithValue(ctx, "accessToken", tokenStr)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (s *Server) CorsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && slices.Contains(s.Config.AllowedOrigins, origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
