package timeutil

import (
	"fmt"
	"sync"
	"time"
)

// locationCache stores loaded timezone locations.
var locationCache sync.Map

// Indonesian timezone names.
const (
	// UTC is the Coordinated Universal Time.
	UTC = "UTC"

	// WIB is Western Indonesian Time (Jakarta, Bandung).
	WIB = "Asia/Jakarta"

	// WITA is Central Indonesian Time (Bali, Makassar).
	WITA = "Asia/Makassar"

	// WIT is Eastern Indonesian Time (Jayapura).
	WIT = "Asia/Jayapura"
)

// GetLocation returns a cached timezone location.
func GetLocation(name string) (*time.Location, error) {
	if loc, ok := locationCache.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	locationCache.Store(name, loc)
	return loc, nil
}

// MustGetLocation returns a cached timezone location or panics on error.
// Use this for names that were already validated.
func MustGetLocation(name string) *time.Location {
	loc, err := GetLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// FormatDateTime formats a time as YYYY-MM-DD HH:MM:SS MST.
func FormatDateTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05 MST")
}

// ClearLocationCache clears the cached timezone locations.
// This is primarily useful for testing.
func ClearLocationCache() {
	locationCache.Range(func(key, _ interface{}) bool {
		locationCache.Delete(key)
		return true
	})
}
