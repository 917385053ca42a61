package capapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	http "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"

	"github.com/hashrelay/capsolver/internal/entity"
)

// The collaborating service fingerprints clients, so the challenge call has
// to look like a browser: Chrome TLS profile plus the ordered header set
// below. The redeem call only needs a JSON content type.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/142.0.0.0 Safari/537.36"

// Options configure the endpoint pair and the browser identity presented to
// it.
type Options struct {
	BaseURL        string
	Origin         string
	Referer        string
	UserAgent      string
	TimeoutSeconds int
}

// Client talks to the challenge/redeem endpoint pair. Safe for concurrent
// use; the driver only ever issues its two calls sequentially.
type Client struct {
	http tls_client.HttpClient
	log  *slog.Logger
	opts Options
}

func New(log *slog.Logger, opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("capapi: base URL is required")
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.TimeoutSeconds <= 0 {
		opts.TimeoutSeconds = 10
	}

	jar := tls_client.NewCookieJar()
	hc, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(),
		tls_client.WithTimeoutSeconds(opts.TimeoutSeconds),
		tls_client.WithClientProfile(profiles.Chrome_133),
		tls_client.WithCookieJar(jar),
	)
	if err != nil {
		return nil, fmt.Errorf("capapi: build http client: %w", err)
	}

	return &Client{http: hc, log: log, opts: opts}, nil
}

type challengeResponse struct {
	Token     string `json:"token"`
	Challenge struct {
		C int `json:"c"`
		S int `json:"s"`
		D int `json:"d"`
	} `json:"challenge"`
	Expires float64 `json:"expires"`
}

type redeemRequest struct {
	Token     string  `json:"token"`
	Solutions []int64 `json:"solutions"`
}

type redeemResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// FetchChallenge issues the single challenge request and validates the
// parameter triple. Transport failures come back as NetworkError, anything
// out of contract as ProtocolError.
func (c *Client) FetchChallenge(ctx context.Context) (entity.ChallengeSpec, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.BaseURL+"/challenge", strings.NewReader("{}"))
	if err != nil {
		return entity.ChallengeSpec{}, fmt.Errorf("capapi: build challenge request: %w", err)
	}
	c.setBrowserHeaders(req)

	body, status, err := c.do(req, "challenge")
	if err != nil {
		return entity.ChallengeSpec{}, err
	}
	if status < 200 || status > 299 {
		return entity.ChallengeSpec{}, &entity.ProtocolError{Reason: fmt.Sprintf("challenge endpoint returned %d", status)}
	}

	var cr challengeResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return entity.ChallengeSpec{}, &entity.ProtocolError{Reason: "challenge body is not valid JSON: " + err.Error()}
	}
	spec := entity.ChallengeSpec{
		Token:            cr.Token,
		Count:            cr.Challenge.C,
		SaltLength:       cr.Challenge.S,
		DifficultyLength: cr.Challenge.D,
		Expires:          cr.Expires,
	}
	if err := spec.Validate(); err != nil {
		return entity.ChallengeSpec{}, err
	}
	c.log.Debug("challenge fetched",
		"count", spec.Count,
		"salt_len", spec.SaltLength,
		"difficulty_len", spec.DifficultyLength,
		"expires", spec.Expires,
	)
	return spec, nil
}

// Redeem posts the index-ordered nonce array and returns the opaque token.
// A declined or malformed answer is a RedemptionError.
func (c *Client) Redeem(ctx context.Context, token string, nonces []int64) (entity.RedemptionResult, error) {
	payload, err := json.Marshal(redeemRequest{Token: token, Solutions: nonces})
	if err != nil {
		return entity.RedemptionResult{}, fmt.Errorf("capapi: marshal redeem request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.BaseURL+"/redeem", bytes.NewReader(payload))
	if err != nil {
		return entity.RedemptionResult{}, fmt.Errorf("capapi: build redeem request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	body, status, err := c.do(req, "redeem")
	if err != nil {
		return entity.RedemptionResult{}, err
	}
	if status < 200 || status > 299 {
		return entity.RedemptionResult{}, &entity.RedemptionError{Reason: fmt.Sprintf("redeem endpoint returned %d", status)}
	}

	var rr redeemResponse
	if err := json.Unmarshal(body, &rr); err != nil {
		return entity.RedemptionResult{}, &entity.RedemptionError{Reason: "redeem body is not valid JSON: " + err.Error()}
	}
	if !rr.Success {
		return entity.RedemptionResult{}, &entity.RedemptionError{Reason: "server rejected the solutions"}
	}
	if rr.Token == "" {
		return entity.RedemptionResult{}, &entity.RedemptionError{Reason: "success response with empty token"}
	}
	return entity.RedemptionResult{Success: true, Token: rr.Token}, nil
}

func (c *Client) do(req *http.Request, op string) ([]byte, int, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, &entity.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, &entity.NetworkError{Op: op, Err: err}
	}
	c.log.Debug("request done", "op", op, "status", resp.StatusCode)
	return body, resp.StatusCode, nil
}

func (c *Client) setBrowserHeaders(req *http.Request) {
	h := http.Header{
		"accept":          {"*/*"},
		"accept-language": {"en-US,en;q=0.9"},
		"content-type":    {"application/json"},
		"user-agent":      {c.opts.UserAgent},
		http.HeaderOrderKey: {
			"accept", "accept-language", "content-type",
			"origin", "referer", "user-agent",
		},
	}
	if c.opts.Origin != "" {
		h["origin"] = []string{c.opts.Origin}
	}
	if c.opts.Referer != "" {
		h["referer"] = []string{c.opts.Referer}
	}
	req.Header = h
}
