package admin

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/halemalu/mall-directory-services/api/internal/interfaces/http/common"
)

type refreshRequest struct {
	Mall string `json:"mall"`
}

type refreshResponse struct {
	Stores int `json:"stores"`
}

func (h *Handler) refreshHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
		defer cancel()

		var req refreshRequest
		body := http.MaxBytesReader(w, r.Body, common.MaxAdminRequestBody)
		if err := json.NewDecoder(body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
			return
		}

		mall := strings.TrimSpace(req.Mall)
		if mall == "" {
			mall = h.defaultMall
		}

		operator := "unknown"
		if user, ok := common.UserFromContext(ctx); ok {
			operator = user.ID
		}
		h.logger.Printf("directory refresh requested mall=%q operator=%s", mall, operator)

		count, err := h.directory.Refresh(ctx, mall)
		if err != nil {
			h.logger.Printf("directory refresh failed mall=%q err=%v", mall, err)
			common.WriteJSON(h.logger, w, http.StatusBadGateway, map[string]string{"error": "directory refresh failed"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, refreshResponse{Stores: count})
	}
}

func (h *Handler) storeListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		stores, err := h.directory.List(ctx)
		if err != nil {
			h.logger.Printf("directory list failed: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "directory list failed"})
			return
		}

		if limit, ok := common.ParsePositiveInt(r.URL.Query().Get("limit"), 0); ok && limit < len(stores) {
			stores = stores[:limit]
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildStoreListResponse(stores))
	}
}

func (h *Handler) purgeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		removed, err := h.directory.Purge(ctx)
		if err != nil {
			h.logger.Printf("directory purge failed: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "directory purge failed"})
			return
		}

		h.logger.Printf("directory purged, removed=%d", removed)
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]int64{"removed": removed})
	}
}
