// Package services is the access layer for the hospital REST API. Every
// entity the portal shows lives behind that API; these clients attach the
// user's bearer token, decode the response envelope and normalize failures.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"github.com/Liyana-shirin/hospital-management-system-frontent/metrics"
	"github.com/Liyana-shirin/hospital-management-system-frontent/models"
)

// ErrUnauthorized is returned for any upstream 401, wherever it happens.
// The single handler for it clears the session and redirects to the login
// page; the original action is abandoned, never replayed.
var ErrUnauthorized = errors.New("unauthorized")

// APIError carries a backend-reported failure. Message is shown to the user
// verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

type Client struct {
	BaseURL string
	// No timeout on purpose: a hung upstream hangs the page, it does not
	// corrupt anything, and the inbound request context still cancels the
	// call when the browser gives up.
	HTTP    *http.Client
	breaker *gobreaker.CircuitBreaker
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{},
		breaker: newBreaker("hospital-api"),
	}
}

func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    time.Second * 10,
		Timeout:     time.Second * 30,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("[API] circuit breaker %s: %s -> %s", name, from, to)
		},
	})
}

// doEnvelope performs one request and returns the decoded envelope. Only
// transport failures count against the circuit breaker; a reachable backend
// answering 4xx is not an outage.
func (cl *Client) doEnvelope(ctx context.Context, method, path, token string, body any) (*models.Response, error) {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewBuffer(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, cl.BaseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	res, err := cl.breaker.Execute(func() (any, error) {
		return cl.HTTP.Do(req)
	})
	if err != nil {
		metrics.ObserveUpstream(method, "error", time.Since(start))
		log.Printf("[API] %s %s failed: %v", method, path, err)
		return nil, fmt.Errorf("hospital API unreachable: %w", err)
	}

	resp := res.(*http.Response)
	defer resp.Body.Close()
	metrics.ObserveUpstream(method, strconv.Itoa(resp.StatusCode), time.Since(start))

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}

	var envelope models.Response
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode response from %s %s: %w", method, path, err)
	}

	if !envelope.Success {
		msg := envelope.ErrorMessage()
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, &APIError{Status: resp.StatusCode, Message: msg}
	}

	return &envelope, nil
}

// do is doEnvelope plus decoding of the data payload into out. A nil out
// discards the payload.
func (cl *Client) do(ctx context.Context, method, path, token string, body any, out any) error {
	envelope, err := cl.doEnvelope(ctx, method, path, token, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}

	data := envelope.Data
	if len(data) == 0 {
		data = envelope.Doctors
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode data from %s %s: %w", method, path, err)
	}
	return nil
}

// Ping checks reachability only. Any HTTP answer, even an error status,
// means the backend is up.
func (cl *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cl.BaseURL, nil)
	if err != nil {
		return err
	}
	resp, err := cl.HTTP.Do(req)
	if err != nil {
		return err
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return nil
}
