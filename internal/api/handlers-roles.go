package api

import (
	"net/http"

	"github.com/matheodrd/httphelper/handler"

	"portfolio-api/internal/api/validations"
	"portfolio-api/internal/models"
)

func (s *Server) GetRoles() http.HandlerFunc {
	return handler.Handler(func(w http.ResponseWriter, r *http.Request) error {
		roles, err := s.service.GetAllRoles(r.Context())
		if err != nil {
			return err
		}

		return handler.Encode[[]models.Role](roles, http.StatusOK, w)
	})
}

func (s *Server) GetRoleById() http.HandlerFunc {
	return handler.Handler(func(w http.ResponseWriter, r *http.Request) error {
		id, err := pathID(r)
		if err != nil {
			return err
		}

		role, err := s.service.GetRoleByID(r.Context(), id)
		if err != nil {
			return encodeServiceError(w, err)
		}

		return handler.Encode[models.Role](*role, http.StatusOK, w)
	})
}

func (s *Server) CreateRole() http.HandlerFunc {
	return handler.Handler(func(w http.ResponseWriter, r *http.Request) error {
		body, err := handler.Decode[validations.CreateRoleValidator](r)
		if err != nil {
			if validationErrors := decodeValidationError(err); validationErrors != nil {
				return buildValidationErrors(w, validationErrors)
			}
			return err
		}

		role, err := s.service.CreateRole(r.Context(), body)
		if err != nil {
			return encodeServiceError(w, err)
		}

		return handler.Encode[models.Role](*role, http.StatusCreated, w)
	})
}

func (s *Server) UpdateRole() http.HandlerFunc {
	return handler.Handler(func(w http.ResponseWriter, r *http.Request) error {
		id, err := pathID(r)
		if err != nil {
			return err
		}

		body, err := handler.Decode[validations.UpdateRoleValidator](r)
		if err != nil {
			if validationErrors := decodeValidationError(err); validationErrors != nil {
				return buildValidationErrors(w, validationErrors)
			}
			return err
		}

		role, err := s.service.UpdateRole(r.Context(), id, body)
		if err != nil {
			return encodeServiceError(w, err)
		}

		return handler.Encode[models.Role](*role, http.StatusOK, w)
	})
}

func (s *Server) DeleteRole() http.HandlerFunc {
	return handler.Handler(func(w http.ResponseWriter, r *http.Request) error {
		id, err := pathID(r)
		if err != nil {
			return err
		}

		if err := s.service.DeleteRole(r.Context(), id); err != nil {
			return encodeServiceError(w, err)
		}

		return handler.Encode(MessageResponse{Message: "Role deleted successfully"}, http.StatusOK, w)
	})
}

func (s *Server) GetRolePermissionsForRole() http.HandlerFunc {
	return handler.Handler(func(w http.ResponseWriter, r *http.Request) error {
		id, err := pathID(r)
		if err != nil {
			return err
		}

		permissions, err := s.service.GetPermissionsForRole(r.Context(), id)
		if err != nil {
			return encodeServiceError(w, err)
		}

		return handler.Encode[[]models.Permission](permissions, http.StatusOK, w)
	})
}

func (s *Server) AddPermissionsToRole() http.HandlerFunc {
	return handler.Handler(func(w http.ResponseWriter, r *http.Request) error {
		id, err := pathID(r)
		if err != nil {
			return err
		}

		body, err := handler.Decode[validations.BulkRolePermissionsValidator](r)
		if err != nil {
			if validationErrors := decodeValidationError(err); validationErrors != nil {
				return buildValidationErrors(w, validationErrors)
			}
			return err
		}

		associations, err := s.service.AddPermissionsToRole(r.Context(), id, body)
		if err != nil {
			return encodeServiceError(w, err)
		}

		return handler.Encode[[]models.RolePermission](associations, http.StatusCreated, w)
	})
}
