package domain

import "errors"

var (
	// ErrProductNotFound is returned when a product cannot be found in the catalog
	ErrProductNotFound = errors.New("product not found")

	// ErrPreferencesNotFound is returned when a user has no stored quiz answers
	ErrPreferencesNotFound = errors.New("preferences not found")

	// ErrInvalidPreferences is returned when quiz answers fail validation
	ErrInvalidPreferences = errors.New("invalid preferences")

	// ErrCatalogUnavailable is returned when the catalog store cannot be read
	ErrCatalogUnavailable = errors.New("catalog store unavailable")

	// ErrPreferenceStoreUnavailable is returned when the preference store fails or its breaker is open
	ErrPreferenceStoreUnavailable = errors.New("preference store unavailable")

	// ErrUnauthorized is returned when a request lacks a valid bearer token
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheUnavailable is returned when cache service is unavailable
	ErrCacheUnavailable = errors.New("cache service unavailable")
)
