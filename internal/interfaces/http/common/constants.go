package common

const (
	// MaxAdminRequestBody limits JSON request bodies on admin endpoints.
	MaxAdminRequestBody = 1 << 20
	// LanguageCodeLength is the length of an ISO 639-1 language code.
	LanguageCodeLength = 2
)
