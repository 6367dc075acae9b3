// Package userapi is a typed client for two public user-data endpoints: a
// generic REST resource serving JSON user records and a random-user
// generator serving an envelope with a results array.
//
// Failures are classified with errx types: transport problems and upstream
// 5xx map to EXTERNAL, missing records to NOT_FOUND, malformed payloads to
// VALIDATION, and deadline hits to TIMEOUT, so HTTP handlers can surface
// them without re-inspecting the cause.
package userapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/arzav18/interview-prep-go/pkg/errx"
	"github.com/arzav18/interview-prep-go/pkg/logx"
)

const (
	// DefaultUserBase is the generic REST endpoint serving user records.
	DefaultUserBase = "https://jsonplaceholder.typicode.com"

	// DefaultRandomBase is the random user generator.
	DefaultRandomBase = "https://randomuser.me"

	defaultTimeout = 10 * time.Second
)

// Client calls the public user endpoints. The zero value is not usable;
// construct with NewClient.
type Client struct {
	http       *http.Client
	userBase   string
	randomBase string
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithUserBase overrides the REST user record base URL.
func WithUserBase(base string) Option {
	return func(c *Client) { c.userBase = base }
}

// WithRandomBase overrides the random user generator base URL.
func WithRandomBase(base string) Option {
	return func(c *Client) { c.randomBase = base }
}

// NewClient creates a Client with sane defaults.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http:       &http.Client{Timeout: defaultTimeout},
		userBase:   DefaultUserBase,
		randomBase: DefaultRandomBase,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetUser fetches one user record by id from the REST endpoint.
func (c *Client) GetUser(ctx context.Context, id int) (*User, error) {
	var user User
	url := fmt.Sprintf("%s/users/%d", c.userBase, id)
	if err := c.getJSON(ctx, url, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// RandomUser fetches one record from the random user generator and flattens
// the envelope. An empty results array is a validation failure.
func (c *Client) RandomUser(ctx context.Context) (*RandomUser, error) {
	var envelope randomUserEnvelope
	if err := c.getJSON(ctx, c.randomBase+"/api/", &envelope); err != nil {
		return nil, err
	}
	if len(envelope.Results) == 0 {
		return nil, errx.Validation("random user response has no results")
	}

	r := envelope.Results[0]
	return &RandomUser{
		FirstName:  r.Name.First,
		LastName:   r.Name.Last,
		Email:      r.Email,
		PictureURL: r.Picture.Medium,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errx.Wrap(err, "build request", errx.TypeInternal)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	logx.Debugw("outbound request", "url", url, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		if errx.Is(err, context.DeadlineExceeded) || errx.Is(err, context.Canceled) {
			return errx.Wrapf(err, errx.TypeTimeout, "fetch %s timed out", url)
		}
		return errx.Wrapf(err, errx.TypeExternal, "fetch %s failed", url)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errx.NotFound("user record not found").WithDetail("url", url)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return errx.External("upstream returned non-success status").
			WithDetail("url", url).
			WithDetail("status", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errx.Wrapf(err, errx.TypeValidation, "decode %s response", url)
	}
	return nil
}
