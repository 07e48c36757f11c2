package irail

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the public iRail v1 endpoint.
	DefaultBaseURL = "https://api.irail.be/v1"
	// DefaultTimeout bounds every upstream request.
	DefaultTimeout = 30 * time.Second
	// DefaultRequestsPerSecond is the rate the iRail usage policy allows.
	DefaultRequestsPerSecond = 3
	// DefaultLanguage is used when a call does not specify one.
	DefaultLanguage = "en"

	queryDateFormat = "020106"
	queryTimeFormat = "1504"
)

// Options configures a Client. Zero values fall back to the defaults above.
type Options struct {
	BaseURL           string
	UserAgent         string
	Timeout           time.Duration
	RequestsPerSecond float64
	Language          string
}

// Client issues rate-limited requests against the iRail API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	userAgent  string
	language   string
}

// NewClient creates an iRail client with a shared outbound rate limiter.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if opts.Language == "" {
		opts.Language = DefaultLanguage
	}
	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1),
		baseURL:    opts.BaseURL,
		userAgent:  opts.UserAgent,
		language:   opts.Language,
	}
}

// Liveboard returns departures (or arrivals) at a station around the given time.
func (c *Client) Liveboard(ctx context.Context, station string, when time.Time, arrivals bool, lang string) (*LiveboardResponse, error) {
	arrdep := "departure"
	if arrivals {
		arrdep = "arrival"
	}
	params := url.Values{}
	params.Set("station", station)
	params.Set("date", when.Format(queryDateFormat))
	params.Set("time", when.Format(queryTimeFormat))
	params.Set("arrdep", arrdep)

	var out LiveboardResponse
	if err := c.get(ctx, "/liveboard/", params, lang, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Connections returns journey options between two stations. When arriveBy is
// set, the given time is treated as the latest arrival instead of the
// earliest departure.
func (c *Client) Connections(ctx context.Context, from, to string, when time.Time, arriveBy bool, lang string) (*ConnectionsResponse, error) {
	timeSel := "depart"
	if arriveBy {
		timeSel = "arrive"
	}
	params := url.Values{}
	params.Set("from", from)
	params.Set("to", to)
	params.Set("date", when.Format(queryDateFormat))
	params.Set("time", when.Format(queryTimeFormat))
	params.Set("timeSel", timeSel)

	var out ConnectionsResponse
	if err := c.get(ctx, "/connections/", params, lang, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Vehicle returns the stop list and live delays of a single train.
func (c *Client) Vehicle(ctx context.Context, id string, when time.Time, lang string) (*VehicleResponse, error) {
	params := url.Values{}
	params.Set("id", id)
	params.Set("date", when.Format(queryDateFormat))

	var out VehicleResponse
	if err := c.get(ctx, "/vehicle/", params, lang, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Disturbances returns current disruptions and planned works on the network.
func (c *Client) Disturbances(ctx context.Context, lang string) (*DisturbancesResponse, error) {
	var out DisturbancesResponse
	if err := c.get(ctx, "/disturbances/", url.Values{}, lang, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Stations returns the full station list known to iRail.
func (c *Client) Stations(ctx context.Context, lang string) (*StationsResponse, error) {
	var out StationsResponse
	if err := c.get(ctx, "/stations/", url.Values{}, lang, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// get waits for the rate limiter, issues one GET and decodes the JSON body.
func (c *Client) get(ctx context.Context, path string, params url.Values, lang string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &Error{Kind: KindTimeout, Msg: "canceled while waiting for rate limiter", Err: err}
	}

	params.Set("format", "json")
	if lang == "" {
		lang = c.language
	}
	params.Set("lang", lang)

	reqURL := c.baseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &Error{Kind: KindInvalidArgument, Msg: "build request", Err: err}
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return &Error{Kind: KindTimeout, Msg: "request to " + path + " timed out", Err: err}
		}
		return &Error{Kind: KindNetwork, Msg: "request to " + path + " failed", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decoding
	case resp.StatusCode == http.StatusTooManyRequests:
		return errorf(KindRateLimited, "rate limit exceeded; iRail allows %d requests/second", DefaultRequestsPerSecond)
	case resp.StatusCode == http.StatusNotFound:
		return errorf(KindNotFound, "station or resource not found")
	case resp.StatusCode >= 500:
		return errorf(KindUpstreamStatus, "iRail server error (HTTP %d), try again later", resp.StatusCode)
	default:
		return errorf(KindUpstreamStatus, "unexpected HTTP %d from %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Kind: KindMalformedResponse, Msg: "decode response from " + path, Err: err}
	}
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
