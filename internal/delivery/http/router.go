package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventoslisting/internal/delivery/http/controllers"
	"eventoslisting/internal/delivery/http/middleware"
	"eventoslisting/internal/domain"
)

// RouterConfig carries the pieces the router needs beyond the controllers.
type RouterConfig struct {
	Logger        *slog.Logger
	TokenVerifier domain.TokenVerifier
	// UploadDir is the local image directory served under /uploads.
	// Empty when images live in a remote blob store.
	UploadDir string
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(cfg RouterConfig, eventController *controllers.EventController, authController *controllers.AuthController, resetController *controllers.PasswordResetController) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(cfg.TokenVerifier, cfg.Logger)

	// Event catalog
	mux.HandleFunc("GET /api/eventos", eventController.List)
	mux.HandleFunc("POST /api/eventos", eventController.Create)
	mux.HandleFunc("PUT /api/eventos/{id}", eventController.Update)
	mux.HandleFunc("DELETE /api/eventos/{id}", eventController.Delete)

	// Auth
	mux.HandleFunc("POST /api/register", authController.Register)
	mux.HandleFunc("POST /api/login", authController.Login)
	mux.HandleFunc("GET /api/me", requireAuth(authController.Me))

	// Password reset
	mux.HandleFunc("POST /api/reset-password-request", resetController.Request)
	mux.HandleFunc("POST /api/reset-password", resetController.Reset)

	// Locally stored images, read-only
	if cfg.UploadDir != "" {
		mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))
	}

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
