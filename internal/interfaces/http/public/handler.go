package public

import (
	"log"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	publicapp "github.com/halemalu/mall-directory-services/api/internal/public/application"
)

// Handler wires the host-facing directory endpoints to the lookup pipeline.
type Handler struct {
	logger      *log.Logger
	directory   publicapp.DirectoryQueryService
	location    *time.Location
	defaultMall string
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger      *log.Logger
	Directory   publicapp.DirectoryQueryService
	Location    *time.Location
	DefaultMall string
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:      cfg.Logger,
		directory:   cfg.Directory,
		location:    cfg.Location,
		defaultMall: cfg.DefaultMall,
	}
}

// Register mounts all public routes onto the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/directory/stores", h.storeLookupHandler())
	r.Get("/directory/stores/availability", h.availabilityHandler())
	r.Get("/directory/stores/floor", h.floorHandler())
	r.Get("/directory/language", h.languageHandler())
}

// mallLink picks the mall base link from the request, falling back to the
// configured default mall.
func (h *Handler) mallLink(raw string) string {
	if link := strings.TrimSpace(raw); link != "" {
		return link
	}
	return h.defaultMall
}
