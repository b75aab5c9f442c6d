// Package postgrest reads the dashboard tables through the PostgREST API of a hosted Postgres.
package postgrest

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/invoice-dashboard-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const restPath = "/rest/v1"

type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	apiKey     string
}

func NewClient(cfg config.PostgREST) (*Client, error) {
	baseURL, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "postgrest: invalid base url")
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, errors.Errorf("postgrest: base url %q must be absolute", cfg.URL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
	}, nil
}

func (c *Client) newRequest(ctx context.Context, method, table string, params url.Values) (*http.Request, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, restPath, table)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "postgrest: error creating request for %s", table)
	}

	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	return req, nil
}

// get decodes the rows of table selected by params into out
func (c *Client) get(ctx context.Context, table string, params url.Values, out interface{}) error {
	req, err := c.newRequest(ctx, http.MethodGet, table, params)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "postgrest: error requesting %s", table)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.Wrapf(decodeAPIError(resp), "postgrest: error reading %s", table)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "postgrest: error decoding %s", table)
	}

	return nil
}

// count returns the exact number of rows of table matching params, 0 when the server omits it
func (c *Client) count(ctx context.Context, table string, params url.Values) (int, error) {
	req, err := c.newRequest(ctx, http.MethodHead, table, params)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Prefer", "count=exact")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, errors.Wrapf(err, "postgrest: error counting %s", table)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, errors.Wrapf(decodeAPIError(resp), "postgrest: error counting %s", table)
	}

	total, err := parseContentRange(resp.Header.Get("Content-Range"))
	if err != nil {
		return 0, errors.Wrapf(err, "postgrest: error counting %s", table)
	}

	return total, nil
}

// parseContentRange reads the total of headers such as "0-24/3573" or "*/3573"
func parseContentRange(header string) (int, error) {
	if header == "" {
		return 0, nil
	}

	idx := strings.LastIndex(header, "/")
	if idx < 0 {
		return 0, errors.Errorf("malformed Content-Range %q", header)
	}

	total := header[idx+1:]
	if total == "*" {
		return 0, nil
	}

	n, err := strconv.Atoi(total)
	if err != nil {
		return 0, errors.Wrapf(err, "malformed Content-Range %q", header)
	}

	return n, nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err == nil && len(body) > 0 {
		// a body that is not JSON still leaves the status code
		_ = json.Unmarshal(body, apiErr)
	}

	return apiErr
}
