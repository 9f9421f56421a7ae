package monitor

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/bufrsh/cronchirp/internal/pp"
)

// Healthchecks pings a Healthchecks endpoint.
type Healthchecks struct {
	// BaseURL is the URL of the endpoint.
	BaseURL *url.URL

	// Timeout is the timeout of each ping.
	Timeout time.Duration

	// MaxRetries is the number of retries of each ping.
	MaxRetries int
}

var _ Monitor = Healthchecks{}

const (
	// HealthchecksDefaultTimeout is the default timeout of a Healthchecks ping.
	HealthchecksDefaultTimeout = 10 * time.Second

	// HealthchecksDefaultMaxRetries is the default number of retries of a Healthchecks ping.
	HealthchecksDefaultMaxRetries = 4
)

// NewHealthchecks creates a new Healthchecks monitor.
// A valid Healthchecks URL looks like "https://hc-ping.com/01234567-0123-0123-0123-0123456789abc".
func NewHealthchecks(ppfmt pp.PP, rawURL string) (Healthchecks, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		ppfmt.Errorf(pp.EmojiUserError, "Failed to parse the Healthchecks URL (redacted): %v", err)
		return Healthchecks{}, false
	}

	if !(u.IsAbs() && u.Opaque == "" && u.Host != "" && u.Fragment == "" && !u.ForceQuery && u.RawQuery == "") {
		ppfmt.Errorf(pp.EmojiUserError, "The Healthchecks URL (redacted) does not look like a valid URL")
		ppfmt.Errorf(pp.EmojiUserError, `A valid example is "https://hc-ping.com/01234567-0123-0123-0123-0123456789abc"`)
		return Healthchecks{}, false
	}

	switch u.Scheme {
	case "https":
		// all good
	case "http":
		ppfmt.Warningf(pp.EmojiUserWarning, "The Healthchecks URL (redacted) uses HTTP; please consider using HTTPS")
	default:
		ppfmt.Errorf(pp.EmojiUserError, "The Healthchecks URL (redacted) does not look like a valid URL")
		return Healthchecks{}, false
	}

	return Healthchecks{
		BaseURL:    u,
		Timeout:    HealthchecksDefaultTimeout,
		MaxRetries: HealthchecksDefaultMaxRetries,
	}, true
}

// Describe calls the callback with the service name "Healthchecks".
func (h Healthchecks) Describe(callback func(service, params string)) {
	callback("Healthchecks", "(URL redacted)")
}

// ping hits the endpoint with message as the body, retrying transient
// failures up to MaxRetries times.
func (h Healthchecks) ping(ctx context.Context, ppfmt pp.PP, endpoint string, message string) bool {
	url := h.BaseURL.JoinPath(endpoint).String()

	ctx, cancel := context.WithTimeout(ctx, h.Timeout)
	defer cancel()

	client := retryablehttp.NewClient()
	client.RetryMax = h.MaxRetries
	client.Logger = nil

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(message))
	if err != nil {
		ppfmt.Warningf(pp.EmojiImpossible, "Failed to prepare HTTP(S) request to the Healthchecks endpoint: %v", err)
		return false
	}

	resp, err := client.Do(req)
	if err != nil {
		ppfmt.Warningf(pp.EmojiError, "Failed to send HTTP(S) request to the Healthchecks endpoint: %v", err)
		return false
	}
	resp.Body.Close()

	ppfmt.Infof(pp.EmojiPing, "Pinged the Healthchecks endpoint")
	return true
}

// Start pings the /start endpoint.
func (h Healthchecks) Start(ctx context.Context, ppfmt pp.PP, message string) bool {
	return h.ping(ctx, ppfmt, "/start", message)
}

// Success pings the root endpoint.
func (h Healthchecks) Success(ctx context.Context, ppfmt pp.PP, message string) bool {
	return h.ping(ctx, ppfmt, "", message)
}

// Failure pings the /fail endpoint.
func (h Healthchecks) Failure(ctx context.Context, ppfmt pp.PP, message string) bool {
	return h.ping(ctx, ppfmt, "/fail", message)
}

// ExitStatus reports the exit status via the /<code> endpoint.
func (h Healthchecks) ExitStatus(ctx context.Context, ppfmt pp.PP, code int, message string) bool {
	if code < 0 || code > 255 {
		ppfmt.Errorf(pp.EmojiImpossible, "Exit code (%d) not within the range 0-255", code)
		return false
	}

	return h.ping(ctx, ppfmt, fmt.Sprintf("/%d", code), message)
}
