package api

import (
	"net/http"

	"github.com/matheodrd/httphelper/handler"

	"portfolio-api/internal/api/validations"
	"portfolio-api/internal/models"
)

type ServiceListResponse struct {
	Services []models.Service `json:"services"`
}

func (s *Server) GetServices() http.HandlerFunc {
	return handler.Handler(func(w http.ResponseWriter, r *http.Request) error {
		services, err := s.service.GetAllServices(r.Context())
		if err != nil {
			return err
		}

		return handler.Encode[ServiceListResponse](ServiceListResponse{Services: services}, http.StatusOK, w)
	})
}

func (s *Server) GetServiceById() http.HandlerFunc {
	return handler.Handler(func(w http.ResponseWriter, r *http.Request) error {
		id, err := pathID(r)
		if err != nil {
			return err
		}

		service, err := s.service.GetServiceByID(r.Context(), id)
		if err != nil {
			return encodeServiceError(w, err)
		}

		return handler.Encode[models.Service](*service, http.StatusOK, w)
	})
}

func (s *Server) CreateService() http.HandlerFunc {
	return handler.Handler(func(w http.ResponseWriter, r *http.Request) error {
		body, err := handler.Decode[validations.CreateServiceValidator](r)
		if err != nil {
			if validationErrors := decodeValidationError(err); validationErrors != nil {
				return buildValidationErrors(w, validationErrors)
			}
			return err
		}

		service, err := s.service.CreateService(r.Context(), body)
		if err != nil {
			return encodeServiceError(w, err)
		}

		return handler.Encode[models.Service](*service, http.StatusCreated, w)
	})
}

func (s *Server) UpdateService() http.HandlerFunc {
	return handler.Handler(func(w http.ResponseWriter, r *http.Request) error {
		id, err := pathID(r)
		if err != nil {
			return err
		}

		body, err := handler.Decode[validations.UpdateServiceValidator](r)
		if err != nil {
			if validationErrors := decodeValidationError(err); validationErrors != nil {
				return buildValidationErrors(w, validationErrors)
			}
			return err
		}

		service, err := s.service.UpdateService(r.Context(), id, body)
		if err != nil {
			return encodeServiceError(w, err)
		}

		return handler.Encode[models.Service](*service, http.StatusOK, w)
	})
}

func (s *Server) DeleteService() http.HandlerFunc {
	return handler.Handler(func(w http.ResponseWriter, r *http.Request) error {
		id, err := pathID(r)
		if err != nil {
			return err
		}

		if err := s.service.DeleteService(r.Context(), id); err != nil {
			return encodeServiceError(w, err)
		}

		return handler.Encode(MessageResponse{Message: "Service deleted successfully"}, http.StatusOK, w)
	})
}
