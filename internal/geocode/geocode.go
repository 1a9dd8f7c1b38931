package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Geocoder resolves a free-text address into coordinates
type Geocoder interface {
	Geocode(ctx context.Context, location string) (*Point, error)
}

type Point struct {
	Lat float64
	Lng float64
}

type NominatimClient struct {
	baseURL string
	client  *http.Client
}

func NewNominatimClient(baseURL string) *NominatimClient {
	return &NominatimClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (n *NominatimClient) Geocode(ctx context.Context, location string) (*Point, error) {
	if location == "" {
		return nil, fmt.Errorf("пустой адрес")
	}

	reqURL := fmt.Sprintf("%s/search?q=%s&format=json&countrycodes=us&limit=1",
		n.baseURL, url.QueryEscape(location))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса геокодирования: %w", err)
	}

	// Nominatim requires an identifying user agent
	req.Header.Set("User-Agent", "volunteerhub/1.0")

	resp, err := n.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса геокодирования: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("геокодер вернул статус %d", resp.StatusCode)
	}

	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("ошибка разбора ответа геокодера: %w", err)
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("адрес не найден: %s", location)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("неверная широта в ответе геокодера: %w", err)
	}

	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("неверная долгота в ответе геокодера: %w", err)
	}

	return &Point{Lat: lat, Lng: lng}, nil
}
