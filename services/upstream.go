package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"store-admin/libs"
)

// upstreamClient talks to the remote catalog API. Responses arrive wrapped in
// a {success, message, data} envelope.
type upstreamClient struct {
	baseURL string
	client  *http.Client
	log     *libs.Logger
}

func newUpstreamClient(baseURL string, log *libs.Logger) upstreamClient {
	return upstreamClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

type upstreamEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// getJSON retries a failed query exactly once.
func (u *upstreamClient) getJSON(ctx context.Context, url string, out interface{}) error {
	err := u.doJSON(ctx, http.MethodGet, url, nil, out)
	if err == nil {
		return nil
	}
	u.log.Warn("upstream query failed, retrying", "url", url, "error", err)
	return u.doJSON(ctx, http.MethodGet, url, nil, out)
}

func (u *upstreamClient) doJSON(ctx context.Context, method, url string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := u.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &UpstreamError{StatusCode: resp.StatusCode}
	}
	if out == nil {
		return nil
	}

	var env upstreamEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return err
	}
	if env.Data == nil {
		return errors.New("upstream response missing data")
	}
	return json.Unmarshal(env.Data, out)
}
