package public

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/halemalu/mall-directory-services/api/internal/interfaces/http/common"
	publicdomain "github.com/halemalu/mall-directory-services/api/internal/public/domain"
)

func (h *Handler) availabilityHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), lookupTimeout)
		defer cancel()

		query := r.URL.Query()
		userRequest := strings.TrimSpace(query.Get("q"))
		if userRequest == "" {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "query parameter q is required"})
			return
		}

		at, err := h.resolveClock(query.Get("at"))
		if err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		results, err := h.directory.Availability(ctx, userRequest, h.mallLink(query.Get("mall")), at)
		if err != nil {
			h.logger.Printf("availability lookup failed q=%q err=%v", userRequest, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "availability lookup failed"})
			return
		}

		entries := make([]availabilityEntryResponse, 0, len(results))
		for _, result := range results {
			entries = append(entries, buildAvailabilityEntry(result))
		}

		common.WriteJSON(h.logger, w, http.StatusOK, availabilityListResponse{
			Found:   len(entries) > 0,
			Total:   len(entries),
			At:      fmt.Sprintf("%02d:%02d", at.Hour, at.Minute),
			Entries: entries,
		})
	}
}

// resolveClock parses the optional at=HH:MM override, defaulting to the
// current wall clock in the mall's timezone.
func (h *Handler) resolveClock(raw string) (publicdomain.ClockTime, error) {
	if strings.TrimSpace(raw) == "" {
		now := time.Now().In(h.location)
		return publicdomain.ClockTime{Hour: now.Hour(), Minute: now.Minute()}, nil
	}
	hour, minute, err := common.ParseClock(raw)
	if err != nil {
		return publicdomain.ClockTime{}, err
	}
	return publicdomain.ClockTime{Hour: hour, Minute: minute}, nil
}
