package public

import (
	"context"
	"net/http"
	"strings"

	"github.com/halemalu/mall-directory-services/api/internal/interfaces/http/common"
)

func (h *Handler) floorHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), lookupTimeout)
		defer cancel()

		query := r.URL.Query()
		userRequest := strings.TrimSpace(query.Get("q"))
		floorPhrase := strings.TrimSpace(query.Get("floor"))
		if userRequest == "" || floorPhrase == "" {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "query parameters q and floor are required"})
			return
		}

		selection, err := h.directory.ByFloor(ctx, userRequest, h.mallLink(query.Get("mall")), floorPhrase)
		if err != nil {
			h.logger.Printf("floor lookup failed q=%q floor=%q err=%v", userRequest, floorPhrase, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "floor lookup failed"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, floorListResponse{
			Found:    len(selection.Stores) > 0,
			Fallback: selection.Fallback,
			Total:    len(selection.Stores),
			Stores:   buildStoreResponses(selection.Stores),
		})
	}
}
