package public

import (
	"fmt"

	publicapp "github.com/halemalu/mall-directory-services/api/internal/public/application"
	publicdomain "github.com/halemalu/mall-directory-services/api/internal/public/domain"
)

func buildStoreResponse(store publicdomain.Store) storeResponse {
	return storeResponse{
		Name:           store.Name,
		Hours:          store.Hours,
		Location:       store.Location,
		SpokenLocation: publicdomain.SpeakableLocation(store.Location),
		LogoURL:        store.LogoURL,
	}
}

func buildStoreResponses(stores []publicdomain.Store) []storeResponse {
	responses := make([]storeResponse, 0, len(stores))
	for _, store := range stores {
		responses = append(responses, buildStoreResponse(store))
	}
	return responses
}

// availabilityStatus maps a resolved availability to the wire status tag.
// A nil availability means the store's hours could not be parsed.
func availabilityStatus(availability *publicdomain.Availability) string {
	if availability == nil {
		return "unknown"
	}
	switch availability.State {
	case publicdomain.StateOpen:
		if availability.ClosingSoon {
			return "closing_soon"
		}
		return "open"
	case publicdomain.StateClosed:
		return "opening_soon"
	case publicdomain.StateClosedUntil:
		return "closed_until"
	default:
		return "unknown"
	}
}

// availabilityLabel renders the status as a speech-ready phrase. Waits of
// less than a full hour report minutes only.
func availabilityLabel(availability *publicdomain.Availability) string {
	if availability == nil {
		return "opening hours unavailable"
	}
	switch availability.State {
	case publicdomain.StateOpen:
		if availability.ClosingSoon {
			return fmt.Sprintf("open, closing in %d minutes", availability.MinutesToClose)
		}
		return "open now"
	case publicdomain.StateClosed:
		if availability.WaitHours == 0 {
			return fmt.Sprintf("closed, opens in %d minutes", availability.WaitMinutes)
		}
		return fmt.Sprintf("closed, opens in %d hours and %d minutes", availability.WaitHours, availability.WaitMinutes)
	case publicdomain.StateClosedUntil:
		return fmt.Sprintf("closed until %s", availability.OpensAt)
	default:
		return "opening hours unavailable"
	}
}

func buildAvailabilityEntry(result publicapp.StoreAvailability) availabilityEntryResponse {
	entry := availabilityEntryResponse{
		Store:  buildStoreResponse(result.Store),
		Status: availabilityStatus(result.Availability),
		Label:  availabilityLabel(result.Availability),
	}
	if availability := result.Availability; availability != nil {
		entry.MinutesToClose = availability.MinutesToClose
		entry.WaitHours = availability.WaitHours
		entry.WaitMinutes = availability.WaitMinutes
		entry.OpensAt = availability.OpensAt
	}
	return entry
}
