package public

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/halemalu/mall-directory-services/api/internal/interfaces/http/common"
)

func (h *Handler) languageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		query := r.URL.Query()
		lang := strings.ToLower(strings.TrimSpace(query.Get("lang")))
		if len(lang) != common.LanguageCodeLength {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "query parameter lang must be an ISO 639-1 code"})
			return
		}

		support, err := h.directory.LanguageSupport(ctx, lang, h.mallLink(query.Get("mall")))
		if err != nil {
			h.logger.Printf("language probe failed lang=%q err=%v", lang, err)
			common.WriteJSON(h.logger, w, http.StatusBadGateway, map[string]string{"error": "language check failed"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, languageResponse{
			Supported: support.Supported,
			URL:       support.URL,
		})
	}
}
