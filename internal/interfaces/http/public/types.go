package public

// storeResponse is one directory entry rendered for the host platform.
// SpokenLocation carries the location with digits expanded to numeral words
// so the host can pass it straight to text-to-speech.
type storeResponse struct {
	Name           string `json:"name"`
	Hours          string `json:"hours"`
	Location       string `json:"location,omitempty"`
	SpokenLocation string `json:"spokenLocation,omitempty"`
	LogoURL        string `json:"logoURL,omitempty"`
}

// storeListResponse answers a store lookup. Found false is the "not found"
// sentinel that prompts the host to re-ask the user.
type storeListResponse struct {
	Found  bool            `json:"found"`
	Total  int             `json:"total"`
	Stores []storeResponse `json:"stores"`
}

// availabilityEntryResponse pairs a store with its resolved status.
// Status "unknown" means the hours text could not be parsed; the store is
// still speakable as a plain record.
type availabilityEntryResponse struct {
	Store          storeResponse `json:"store"`
	Status         string        `json:"status"`
	Label          string        `json:"label"`
	MinutesToClose int           `json:"minutesToClose,omitempty"`
	WaitHours      int           `json:"waitHours,omitempty"`
	WaitMinutes    int           `json:"waitMinutes,omitempty"`
	OpensAt        string        `json:"opensAt,omitempty"`
}

type availabilityListResponse struct {
	Found   bool                        `json:"found"`
	Total   int                         `json:"total"`
	At      string                      `json:"at"`
	Entries []availabilityEntryResponse `json:"entries"`
}

// floorListResponse answers a floor-narrowed lookup. Fallback true means no
// candidate sat on the requested floor and Stores carries the full set.
type floorListResponse struct {
	Found    bool            `json:"found"`
	Fallback bool            `json:"fallback"`
	Total    int             `json:"total"`
	Stores   []storeResponse `json:"stores"`
}

type languageResponse struct {
	Supported bool   `json:"supported"`
	URL       string `json:"url"`
}
