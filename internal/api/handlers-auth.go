package api

import (
	"net/http"

	"github.com/matheodrd/httphelper/handler"

	"portfolio-api/internal/api/validations"
	"portfolio-api/internal/models/dto"
)

type RegisterResponse struct {
	User  *dto.UserDTO  `json:"user"`
	Token *dto.TokenDTO `json:"token"`
}

func (s *Server) Register() http.HandlerFunc {
	return handler.Handler(func(w http.ResponseWriter, r *http.Request) error {
		body, err := handler.Decode[validations.RegisterValidator](r)
		if err != nil {
			if validationErrors := decodeValidationError(err); validationErrors != nil {
				return buildValidationErrors(w, validationErrors)
			}
			return err
		}

		user, pair, err := s.service.Register(r.Context(), body.Email, body.Password, body.FirstName, body.LastName)
		if err != nil {
			return encodeServiceError(w, err)
		}

		response := RegisterResponse{
			User:  dto.UserToDTO(user),
			Token: dto.TokenToDTO(pair),
		}
		return handler.Encode[RegisterResponse](response, http.StatusCreated, w)
	})
}

func (s *Server) Login() http.HandlerFunc {
	return handler.Handler(func(w http.ResponseWriter, r *http.Request) error {
		body, err := handler.Decode[validations.LoginValidator](r)
		if err != nil {
			if validationErrors := decodeValidationError(err); validationErrors != nil {
				return buildValidationErrors(w, validationErrors)
			}
			return err
		}

		user, pair, err := s.service.Login(r.Context(), body.Email, body.Password)
		if err != nil {
			return encodeServiceError(w, err)
		}

		response := RegisterResponse{
			User:  dto.UserToDTO(user),
			Token: dto.TokenToDTO(pair),
		}
		return handler.Encode[RegisterResponse](response, http.StatusOK, w)
	})
}

// Logout blacklists the bearer token that authenticated the request.
func (s *Server) Logout() http.HandlerFunc {
	return handler.Handler(func(w http.ResponseWriter, r *http.Request) error {
		tokenStr, ok := r.Context().Value("accessToken").(string)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return nil
		}

		if err := s.service.BlacklistToken(r.Context(), tokenStr); err != nil {
			return encodeServiceError(w, err)
		}

		return handler.Encode(MessageResponse{Message: "User logged out successfully"}, http.StatusOK, w)
	})
}

func (s *Server) Refresh() http.HandlerFunc {
	return handler.Handler(func(w http.ResponseWriter, r *http.Request) error {
		body, err := handler.Decode[validations.RefreshValidator](r)
		if err != nil {
			if validationErrors := decodeValidationError(err); validationErrors != nil {
				return buildValidationErrors(w, validationErrors)
			}
			return err
		}

		newAccessToken, err := s.service.RefreshAccessToken(r.Context(), body.RefreshToken)
		if err != nil {
			return encodeServiceError(w, err)
		}

		// The refresh token is not rotated, the caller keeps using it.
		response := dto.TokenDTO{
			AccessToken:  newAccessToken,
			RefreshToken: body.RefreshToken,
			TokenType:    "bearer",
		}
		return handler.Encode[dto.TokenDTO](response, http.StatusOK, w)
	})
}

func (s *Server) SweepTokens() http.HandlerFunc {
	return handler.Handler(func(w http.ResponseWriter, r *http.Request) error {
		if err := s.service.SweepExpiredTokens(r.Context()); err != nil {
			return encodeServiceError(w, err)
		}

		w.WriteHeader(http.StatusNoContent)
		return nil
	})
}
