package clock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// LocationUnavailable reemplaza al nombre del lugar cuando la busqueda falla.
const LocationUnavailable = "Location not available"

var ErrLocationUnavailable = errors.New("location unavailable")

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// ParseCoordinates acepta latitud y longitud como texto; ambas son
// obligatorias y deben estar en rango.
func ParseCoordinates(lat, lon string) (*Coordinates, error) {
	if strings.TrimSpace(lat) == "" || strings.TrimSpace(lon) == "" {
		return nil, fmt.Errorf("%w: missing coordinates", ErrLocationUnavailable)
	}
	latitude, err := strconv.ParseFloat(lat, 64)
	if err != nil || latitude < -90 || latitude > 90 {
		return nil, fmt.Errorf("%w: invalid latitude %q", ErrLocationUnavailable, lat)
	}
	longitude, err := strconv.ParseFloat(lon, 64)
	if err != nil || longitude < -180 || longitude > 180 {
		return nil, fmt.Errorf("%w: invalid longitude %q", ErrLocationUnavailable, lon)
	}
	return &Coordinates{Latitude: latitude, Longitude: longitude}, nil
}

// Locator traduce coordenadas a un nombre legible.
type Locator interface {
	Locate(ctx context.Context, coords Coordinates) (string, error)
}

// HTTPLocator usa un servicio de geocodificacion inversa compatible con
// bigdatacloud (reverse-geocode-client).
type HTTPLocator struct {
	endpoint string
	client   *http.Client
}

func NewHTTPLocator(endpoint string, httpClient *http.Client) *HTTPLocator {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &HTTPLocator{endpoint: endpoint, client: httpClient}
}

type reverseGeocodeResponse struct {
	City        string `json:"city"`
	Locality    string `json:"locality"`
	CountryName string `json:"countryName"`
}

func (l *HTTPLocator) Locate(ctx context.Context, coords Coordinates) (string, error) {
	u, err := url.Parse(l.endpoint)
	if err != nil {
		return "", fmt.Errorf("%w: parse endpoint: %v", ErrLocationUnavailable, err)
	}
	q := u.Query()
	q.Set("latitude", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	q.Set("localityLanguage", "en")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: create request: %v", ErrLocationUnavailable, err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: do request: %v", ErrLocationUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("%w: status=%d", ErrLocationUnavailable, resp.StatusCode)
	}

	var body reverseGeocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrLocationUnavailable, err)
	}

	city := body.City
	if city == "" {
		city = body.Locality
	}
	switch {
	case city != "" && body.CountryName != "":
		return city + ", " + body.CountryName, nil
	case city != "":
		return city, nil
	case body.CountryName != "":
		return body.CountryName, nil
	default:
		return "", fmt.Errorf("%w: empty place", ErrLocationUnavailable)
	}
}
