package api

import (
	"net/http"

	"github.com/matheodrd/httphelper/handler"

	"portfolio-api/internal/api/validations"
	"portfolio-api/internal/models"
)

func (s *Server) GetUserJobHistory() http.HandlerFunc {
	return handler.Handler(func(w http.ResponseWriter, r *http.Request) error {
		id, err := pathID(r)
		if err != nil {
			return err
		}

		jobs, err := s.service.GetUserJobHistory(r.Context(), id)
		if err != nil {
			return encodeServiceError(w, err)
		}

		return handler.Encode[[]models.JobHistory](jobs, http.StatusOK, w)
	})
}

func (s *Server) CreateJobHistory() http.HandlerFunc {
	return handler.Handler(func(w http.ResponseWriter, r *http.Request) error {
		body, err := handler.Decode[validations.CreateJobHistoryValidator](r)
		if err != nil {
			if validationErrors := decodeValidationError(err); validationErrors != nil {
				return buildValidationErrors(w, validationErrors)
			}
			return err
		}

		job, err := s.service.CreateJobHistory(r.Context(), body)
		if err != nil {
			return encodeServiceError(w, err)
		}

		return handler.Encode[models.JobHistory](*job, http.StatusCreated, w)
	})
}

func (s *Server) UpdateJobHistory() http.HandlerFunc {
	return handler.Handler(func(w http.ResponseWriter, r *http.Request) error {
		id, err := pathID(r)
		if err != nil {
			return err
		}

		body, err := handler.Decode[validations.UpdateJobHistoryValidator](r)
		if err != nil {
			if validationErrors := decodeValidationError(err); validationErrors != nil {
				return buildValidationErrors(w, validationErrors)
			}
			return err
		}

		job, err := s.service.UpdateJobHistory(r.Context(), id, body)
		if err != nil {
			return encodeServiceError(w, err)
		}

		return handler.Encode[models.JobHistory](*job, http.StatusOK, w)
	})
}

func (s *Server) DeleteJobHistory() http.HandlerFunc {
	return handler.Handler(func(w http.ResponseWriter, r *http.Request) error {
		id, err := pathID(r)
		if err != nil {
			return err
		}

		if err := s.service.DeleteJobHistory(r.Context(), id); err != nil {
			return encodeServiceError(w, err)
		}

		return handler.Encode(MessageResponse{Message: "Job history deleted successfully"}, http.StatusOK, w)
	})
}
