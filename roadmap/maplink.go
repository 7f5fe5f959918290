package roadmap

import (
	"net/url"
	"strings"
)

const mapsSearchBase = "https://www.google.com/maps/search/?api=1&query="

// MapsSearchURL builds a Google Maps search link for a free-text address.
// Empty input yields an empty link. The address is percent-encoded with %20
// for spaces so links match what encodeURIComponent produced in older
// exports. No validation of the address is attempted.
func MapsSearchURL(address string) string {
	if strings.TrimSpace(address) == "" {
		return ""
	}
	escaped := strings.ReplaceAll(url.QueryEscape(address), "+", "%20")
	return mapsSearchBase + escaped
}
