package public

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/halemalu/mall-directory-services/api/internal/interfaces/http/common"
)

// Lookup requests may trigger a live directory fetch on a cache miss, so
// the timeout covers the fetcher's own timeout with room to spare.
const lookupTimeout = 15 * time.Second

func (h *Handler) storeLookupHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), lookupTimeout)
		defer cancel()

		query := r.URL.Query()
		userRequest := strings.TrimSpace(query.Get("q"))
		if userRequest == "" {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "query parameter q is required"})
			return
		}

		stores, err := h.directory.Find(ctx, userRequest, h.mallLink(query.Get("mall")))
		if err != nil {
			h.logger.Printf("store lookup failed q=%q err=%v", userRequest, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "store lookup failed"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, storeListResponse{
			Found:  len(stores) > 0,
			Total:  len(stores),
			Stores: buildStoreResponses(stores),
		})
	}
}
