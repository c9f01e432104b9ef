package api

import (
	"net/http"

	"github.com/matheodrd/httphelper/handler"

	"portfolio-api/internal/models"
	"portfolio-api/internal/models/dto"
)

func (s *Server) GetUsers() http.HandlerFunc {
	return handler.Handler(func(w http.ResponseWriter, r *http.Request) error {
		users, err := s.service.GetAllUsers(r.Context())
		if err != nil {
			return err
		}

		response := make([]dto.UserDTO, len(users))
		for i := range users {
			response[i] = *dto.UserToDTO(&users[i])
		}

		return handler.Encode[[]dto.UserDTO](response, http.StatusOK, w)
	})
}

func (s *Server) GetUserById() http.HandlerFunc {
	return handler.Handler(func(w http.ResponseWriter, r *http.Request) error {
		id, err := pathID(r)
		if err != nil {
			return err
		}

		user, err := s.service.GetUserByID(r.Context(), id)
		if err != nil {
			return encodeServiceError(w, err)
		}

		return handler.Encode[dto.UserDTO](*dto.UserToDTO(user), http.StatusOK, w)
	})
}

func (s *Server) GetMe() http.HandlerFunc {
	return handler.Handler(func(w http.ResponseWriter, r *http.Request) error {
		user, ok := r.Context().Value("user").(*models.User)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return nil
		}

		return handler.Encode[dto.UserDTO](*dto.UserToDTO(user), http.StatusOK, w)
	})
}

func (s *Server) ActivateUser() http.HandlerFunc {
	return s.setUserActive(true)
}

func (s *Server) DeactivateUser() http.HandlerFunc {
	return s.setUserActive(false)
}

func (s *Server) setUserActive(active bool) http.HandlerFunc {
	return handler.Handler(func(w http.ResponseWriter, r *http.Request) error {
		id, err := pathID(r)
		if err != nil {
			return err
		}

		user, err := s.service.SetUserActive(r.Context(), id, active)
		if err != nil {
			return encodeServiceError(w, err)
		}

		return handler.Encode[dto.UserDTO](*dto.UserToDTO(user), http.StatusOK, w)
	})
}

func (s *Server) DeleteUser() http.HandlerFunc {
	return handler.Handler(func(w http.ResponseWriter, r *http.Request) error {
		id, err := pathID(r)
		if err != nil {
			return err
		}

		if err := s.service.DeleteUser(r.Context(), id); err != nil {
			return encodeServiceError(w, err)
		}

		return handler.Encode(MessageResponse{Message: "User deleted successfully"}, http.StatusOK, w)
	})
}
