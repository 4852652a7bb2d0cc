// Package randomness provides RandomnessSource implementations: an HTTP
// adapter for a verifiable randomness beacon and a local crypto/rand
// fallback.
package randomness

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"tessera/pkg/platform/sentinel"
)

// Beacon fetches hex random values from a deployed randomness collaborator
// (e.g. a VRF service). The beacon's proof verification is the caller's
// trust model; this adapter only transports the value.
type Beacon struct {
	url    string
	client *http.Client
}

// NewBeacon creates the adapter.
func NewBeacon(url string, timeout time.Duration) *Beacon {
	return &Beacon{url: url, client: &http.Client{Timeout: timeout}}
}

type beaconResponse struct {
	RandomHex string `json:"random_hex"`
}

func (b *Beacon) RequestRandomHex(ctx context.Context) (string, error) {
	if b.url == "" {
		return "", sentinel.ErrUnavailable
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.url+"/random", nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	resp, err := b.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", sentinel.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status %d", sentinel.ErrUnavailable, resp.StatusCode)
	}
	var body beaconResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", sentinel.ErrUnavailable, err)
	}
	if body.RandomHex == "" {
		return "", fmt.Errorf("%w: empty random value", sentinel.ErrUnavailable)
	}
	return body.RandomHex, nil
}

// Local draws from crypto/rand. Not verifiable; used as the degraded path
// when the beacon is unreachable and as the default in dev.
type Local struct{}

func (Local) RequestRandomHex(_ context.Context) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
