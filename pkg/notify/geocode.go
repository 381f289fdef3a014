package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	nominatimBaseURL = "https://nominatim.openstreetmap.org"
	geocodeUserAgent = "TruthSnapBot/1.0"
	geocodeTimeout   = 3 * time.Second
)

// Geocoder resolves GPS coordinates to a "City, Country" label through
// Nominatim. Lookups are best-effort: any failure degrades to showing
// raw coordinates.
type Geocoder struct {
	baseURL    string
	httpClient *http.Client
}

// NewGeocoder creates a Geocoder against the public Nominatim instance.
func NewGeocoder() *Geocoder {
	return NewGeocoderWithBaseURL(nominatimBaseURL)
}

// NewGeocoderWithBaseURL is used by tests to point at a fake server.
func NewGeocoderWithBaseURL(baseURL string) *Geocoder {
	return &Geocoder{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: geocodeTimeout},
	}
}

type nominatimResponse struct {
	Address struct {
		City         string `json:"city"`
		Town         string `json:"town"`
		Village      string `json:"village"`
		Municipality string `json:"municipality"`
		County       string `json:"county"`
		Country      string `json:"country"`
	} `json:"address"`
}

// ReverseGeocode returns a human place name for the coordinates, or
// ok=false when the lookup fails or resolves to nothing useful.
func (g *Geocoder) ReverseGeocode(ctx context.Context, lat, lon float64) (string, bool) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("format", "json")
	q.Set("zoom", "10")
	q.Set("accept-language", "en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return "", false
	}
	req.Header.Set("User-Agent", geocodeUserAgent)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		slog.Warn("Reverse geocoding failed", "component", "notify", "error", err)
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", false
	}

	var decoded nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", false
	}

	addr := decoded.Address
	city := firstNonEmpty(addr.City, addr.Town, addr.Village, addr.Municipality, addr.County)
	switch {
	case city != "" && addr.Country != "":
		return city + ", " + addr.Country, true
	case city != "":
		return city, true
	case addr.Country != "":
		return addr.Country, true
	default:
		return "", false
	}
}

// MapsURL returns a public map link for the coordinates.
func MapsURL(lat, lon float64) string {
	return fmt.Sprintf("https://www.google.com/maps?q=%s,%s",
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lon, 'f', -1, 64))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
