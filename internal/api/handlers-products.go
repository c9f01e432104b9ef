package api

import (
	"net/http"

	"github.com/matheodrd/httphelper/handler"

	"portfolio-api/internal/api/validations"
	"portfolio-api/internal/models"
)

type ProductListResponse struct {
	Products []models.Product `json:"products"`
}

func (s *Server) GetProducts() http.HandlerFunc {
	return handler.Handler(func(w http.ResponseWriter, r *http.Request) error {
		products, err := s.service.GetAllProducts(r.Context())
		if err != nil {
			return err
		}

		return handler.Encode[ProductListResponse](ProductListResponse{Products: products}, http.StatusOK, w)
	})
}

func (s *Server) GetProductById() http.HandlerFunc {
	return handler.Handler(func(w http.ResponseWriter, r *http.Request) error {
		id, err := pathID(r)
		if err != nil {
			return err
		}

		product, err := s.service.GetProductByID(r.Context(), id)
		if err != nil {
			return encodeServiceError(w, err)
		}

		return handler.Encode[models.Product](*product, http.StatusOK, w)
	})
}

func (s *Server) CreateProduct() http.HandlerFunc {
	return handler.Handler(func(w http.ResponseWriter, r *http.Request) error {
		body, err := handler.Decode[validations.CreateProductValidator](r)
		if err != nil {
			if validationErrors := decodeValidationError(err); validationErrors != nil {
				return buildValidationErrors(w, validationErrors)
			}
			return err
		}

		product, err := s.service.CreateProduct(r.Context(), body)
		if err != nil {
			return encodeServiceError(w, err)
		}

		return handler.Encode[models.Product](*product, http.StatusCreated, w)
	})
}

func (s *Server) UpdateProduct() http.HandlerFunc {
	return handler.Handler(func(w http.ResponseWriter, r *http.Request) error {
		id, err := pathID(r)
		if err != nil {
			return err
		}

		body, err := handler.Decode[validations.UpdateProductValidator](r)
		if err != nil {
			if validationErrors := decodeValidationError(err); validationErrors != nil {
				return buildValidationErrors(w, validationErrors)
			}
			return err
		}

		product, err := s.service.UpdateProduct(r.Context(), id, body)
		if err != nil {
			return encodeServiceError(w, err)
		}

		return handler.Encode[models.Product](*product, http.StatusOK, w)
	})
}

func (s *Server) DeleteProduct() http.HandlerFunc {
	return handler.Handler(func(w http.ResponseWriter, r *http.Request) error {
		id, err := pathID(r)
		if err != nil {
			return err
		}

		if err := s.service.DeleteProduct(r.Context(), id); err != nil {
			return encodeServiceError(w, err)
		}

		return handler.Encode(MessageResponse{Message: "Product deleted successfully"}, http.StatusOK, w)
	})
}
