// Package flight looks up recent flights by callsign on the OpenSky
// Network. OpenSky data is ADS-B based: coverage is partial and delayed,
// and the free tier is for non-commercial use only.
package flight

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://opensky-network.org/api"

	lookbackWindow = 24 * time.Hour
)

var (
	// ErrNotConfigured means no OpenSky credentials were provided.
	ErrNotConfigured = errors.New("flight lookup not configured")
	ErrNotFound      = errors.New("flight not found")
)

type Flight struct {
	FlightNumber  string
	Origin        string
	Destination   string
	DepartureTime time.Time
	ArrivalTime   time.Time
}

type Config struct {
	BaseURL  string
	Username string
	Password string
	Timeout  time.Duration
}

type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
	now        func() time.Time
}

func NewClient(cfg Config) *Client {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(base, "/"),
		username:   cfg.Username,
		password:   cfg.Password,
		httpClient: &http.Client{Timeout: timeout},
		now:        time.Now,
	}
}

// Enabled reports whether credentials are set.
func (c *Client) Enabled() bool {
	return c.username != "" && c.password != ""
}

// Lookup finds the most recent day's flight whose callsign matches
// flightNumber, ignoring case and padding.
func (c *Client) Lookup(ctx context.Context, flightNumber string) (Flight, error) {
	if !c.Enabled() {
		return Flight{}, ErrNotConfigured
	}

	end := c.now().Unix()
	begin := end - int64(lookbackWindow/time.Second)

	q := url.Values{}
	q.Set("begin", strconv.FormatInt(begin, 10))
	q.Set("end", strconv.FormatInt(end, 10))
	endpoint := c.baseURL + "/flights/all?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Flight{}, fmt.Errorf("building opensky request: %w", err)
	}
	req.SetBasicAuth(c.username, c.password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Flight{}, fmt.Errorf("opensky request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return Flight{}, fmt.Errorf("opensky request error: status=%d body=%s", resp.StatusCode, payload)
	}

	var records []flightRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return Flight{}, fmt.Errorf("decoding opensky response: %w", err)
	}

	want := strings.ToUpper(strings.TrimSpace(flightNumber))
	for _, rec := range records {
		if strings.TrimSpace(rec.Callsign) == want {
			return rec.toFlight(), nil
		}
	}
	return Flight{}, ErrNotFound
}

// flightRecord is one element of the /flights/all response.
type flightRecord struct {
	ICAO24              string `json:"icao24"`
	Callsign            string `json:"callsign"`
	FirstSeen           int64  `json:"firstSeen"`
	LastSeen            int64  `json:"lastSeen"`
	EstDepartureAirport string `json:"estDepartureAirport"`
	EstArrivalAirport   string `json:"estArrivalAirport"`
}

func (r flightRecord) toFlight() Flight {
	return Flight{
		FlightNumber:  strings.TrimSpace(r.Callsign),
		Origin:        r.EstDepartureAirport,
		Destination:   r.EstArrivalAirport,
		DepartureTime: time.Unix(r.FirstSeen, 0).UTC(),
		ArrivalTime:   time.Unix(r.LastSeen, 0).UTC(),
	}
}
