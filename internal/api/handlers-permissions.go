package api

import (
	"net/http"

	"github.com/matheodrd/httphelper/handler"

	"portfolio-api/internal/api/validations"
	"portfolio-api/internal/models"
)

func (s *Server) GetPermissions() http.HandlerFunc {
	return handler.Handler(func(w http.ResponseWriter, r *http.Request) error {
		permissions, err := s.service.GetAllPermissions(r.Context())
		if err != nil {
			return err
		}

		return handler.Encode[[]models.Permission](permissions, http.StatusOK, w)
	})
}

func (s *Server) GetPermissionById() http.HandlerFunc {
	return handler.Handler(func(w http.ResponseWriter, r *http.Request) error {
		id, err := pathID(r)
		if err != nil {
			return err
		}

		permission, err := s.service.GetPermissionByID(r.Context(), id)
		if err != nil {
			return encodeServiceError(w, err)
		}

		return handler.Encode[models.Permission](*permission, http.StatusOK, w)
	})
}

func (s *Server) CreatePermission() http.HandlerFunc {
	return handler.Handler(func(w http.ResponseWriter, r *http.Request) error {
		body, err := handler.Decode[validations.CreatePermissionValidator](r)
		if err != nil {
			if validationErrors := decodeValidationError(err); validationErrors != nil {
				return buildValidationErrors(w, validationErrors)
			}
			return err
		}

		permission, err := s.service.CreatePermission(r.Context(), body)
		if err != nil {
			return encodeServiceError(w, err)
		}

		return handler.Encode[models.Permission](*permission, http.StatusCreated, w)
	})
}

func (s *Server) UpdatePermission() http.HandlerFunc {
	return handler.Handler(func(w http.ResponseWriter, r *http.Request) error {
		id, err := pathID(r)
		if err != nil {
			return err
		}

		body, err := handler.Decode[validations.UpdatePermissionValidator](r)
		if err != nil {
			if validationErrors := decodeValidationError(err); validationErrors != nil {
				return buildValidationErrors(w, validationErrors)
			}
			return err
		}

		permission, err := s.service.UpdatePermission(r.Context(), id, body)
		if err != nil {
			return encodeServiceError(w, err)
		}

		return handler.Encode[models.Permission](*permission, http.StatusOK, w)
	})
}

func (s *Server) DeletePermission() http.HandlerFunc {
	return handler.Handler(func(w http.ResponseWriter, r *http.Request) error {
		id, err := pathID(r)
		if err != nil {
			return err
		}

		if err := s.service.DeletePermission(r.Context(), id); err != nil {
			return encodeServiceError(w, err)
		}

		return handler.Encode(MessageResponse{Message: "Permission deleted successfully"}, http.StatusOK, w)
	})
}

func (s *Server) GetRolePermissions() http.HandlerFunc {
	return handler.Handler(func(w http.ResponseWriter, r *http.Request) error {
		associations, err := s.service.GetAllRolePermissions(r.Context())
		if err != nil {
			return err
		}

		return handler.Encode[[]models.RolePermission](associations, http.StatusOK, w)
	})
}

func (s *Server) GetRolePermissionById() http.HandlerFunc {
	return handler.Handler(func(w http.ResponseWriter, r *http.Request) error {
		id, err := pathID(r)
		if err != nil {
			return err
		}

		association, err := s.service.GetRolePermissionByID(r.Context(), id)
		if err != nil {
			return encodeServiceError(w, err)
		}

		return handler.Encode[models.RolePermission](*association, http.StatusOK, w)
	})
}

func (s *Server) CreateRolePermission() http.HandlerFunc {
	return handler.Handler(func(w http.ResponseWriter, r *http.Request) error {
		body, err := handler.Decode[validations.CreateRolePermissionValidator](r)
		if err != nil {
			if validationErrors := decodeValidationError(err); validationErrors != nil {
				return buildValidationErrors(w, validationErrors)
			}
			return err
		}

		association, err := s.service.CreateRolePermission(r.Context(), body)
		if err != nil {
			return encodeServiceError(w, err)
		}

		return handler.Encode[models.RolePermission](*association, http.StatusCreated, w)
	})
}

func (s *Server) DeleteRolePermission() http.HandlerFunc {
	return handler.Handler(func(w http.ResponseWriter, r *http.Request) error {
		id, err := pathID(r)
		if err != nil {
			return err
		}

		if err := s.service.DeleteRolePermission(r.Context(), id); err != nil {
			return encodeServiceError(w, err)
		}

		return handler.Encode(MessageResponse{Message: "Role-Permission association deleted successfully"}, http.StatusOK, w)
	})
}
