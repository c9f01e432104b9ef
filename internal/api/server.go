package api

import (
	"log/slog"
	"net/http"

	"portfolio-api/internal/config"
	"portfolio-api/internal/services"
)

type Server struct {
	Config  *config.Config
	log     *slog.Logger
	service *services.Service
}

func NewServer(config *config.Config, log *slog.Logger, service *services.Service) *Server {
	return &Server{
		Config:  config,
		log:     log,
		service: service,
	}
}

func (s *Server) Start() error {
	mux := http.NewServeMux()

	auth := s.AuthMiddleware()

	mux.Handle("POST /auth/register", s.Register())
	mux.Handle("POST /auth/login", s.Login())
	mux.Handle("POST /auth/logout", auth(s.Logout()))
	mux.Handle("POST /auth/refresh", s.Refresh())
	mux.Handle("POST /auth/tokens/sweep", auth(s.SweepTokens()))

	mux.Handle("GET /users", auth(s.GetUsers()))
	mux.Handle("GET /users/me", auth(s.GetMe()))
	mux.Handle("GET /users/{id}", auth(s.GetUserById()))
	mux.Handle("PATCH /users/{id}/activate", auth(s.ActivateUser()))
	mux.Handle("PATCH /users/{id}/deactivate", auth(s.DeactivateUser()))
	mux.Handle("DELETE /users/{id}", auth(s.DeleteUser()))

	mux.Handle("GET /users/{id}/job-history", auth(s.GetUserJobHistory()))
	mux.Handle("POST /job-history", auth(s.CreateJobHistory()))
	mux.Handle("PUT /job-history/{id}", auth(s.UpdateJobHistory()))
	mux.Handle("DELETE /job-history/{id}", auth(s.DeleteJobHistory()))

	mux.Handle("GET /products", s.GetProducts())
	mux.Handle("GET /products/{id}", s.GetProductById())
	mux.Handle("POST /products", auth(s.CreateProduct()))
	mux.Handle("PUT /products/{id}", auth(s.UpdateProduct()))
	mux.Handle("DELETE /products/{id}", auth(s.DeleteProduct()))

	mux.Handle("GET /services", s.GetServices())
	mux.Handle("GET /services/{id}", s.GetServiceById())
	mux.Handle("POST /services", auth(s.CreateService()))
	mux.Handle("PUT /services/{id}", auth(s.UpdateService()))
	mux.Handle("DELETE /services/{id}", auth(s.DeleteService()))

	mux.Handle("GET /roles", auth(s.GetRoles()))
	mux.Handle("GET /roles/{id}", auth(s.GetRoleById()))
	mux.Handle("POST /roles", auth(s.CreateRole()))
	mux.Handle("PUT /roles/{id}", auth(s.UpdateRole()))
	mux.Handle("DELETE /roles/{id}", auth(s.DeleteRole()))
	mux.Handle("GET /roles/{id}/permissions", auth(s.GetRolePermissionsForRole()))
	mux.Handle("POST /roles/{id}/permissions", auth(s.AddPermissionsToRole()))

	mux.Handle("GET /permissions", auth(s.GetPermissions()))
	mux.Handle("GET /permissions/{id}", auth(s.GetPermissionById()))
	mux.Handle("POST /permissions", auth(s.CreatePermission()))
	mux.Handle("PUT /permissions/{id}", auth(s.UpdatePermission()))
	mux.Handle("DELETE /permissions/{id}", auth(s.DeletePermission()))

	mux.Handle("GET /role-permissions", auth(s.GetRolePermissions()))
	mux.Handle("GET /role-permissions/{id}", auth(s.GetRolePermissionById()))
	mux.Handle("POST /role-permissions", auth(s.CreateRolePermission()))
	mux.Handle("DELETE /role-permissions/{id}", auth(s.DeleteRolePermission()))

	server := &http.Server{
		Addr:    ":" + s.Config.Port,
		Handler: s.CorsMiddleware()(mux),
	}

	s.log.Info("Starting server on port: " + server.Addr)
	if err := server.ListenAndServe(); err != nil {
		return err
	}
	return nil
}
