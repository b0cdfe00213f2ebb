package admin

import (
	"log"

	"github.com/go-chi/chi/v5"

	adminapp "github.com/halemalu/mall-directory-services/api/internal/admin/application"
)

// Handler wires admin HTTP endpoints to application services.
type Handler struct {
	logger      *log.Logger
	directory   adminapp.DirectoryService
	defaultMall string
}

// Config provides dependencies for Handler.
type Config struct {
	Logger      *log.Logger
	Directory   adminapp.DirectoryService
	DefaultMall string
}

// NewHandler constructs an admin HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:      cfg.Logger,
		directory:   cfg.Directory,
		defaultMall: cfg.DefaultMall,
	}
}

// Register mounts admin routes onto router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/directory/refresh", h.refreshHandler())
	r.Get("/directory/stores", h.storeListHandler())
	r.Delete("/directory/stores", h.purgeHandler())
}
