// Package ledger talks to the external point-currency service. The core
// only reads balances and issues fixed-cost debits; the ledger itself is
// owned elsewhere.
package ledger

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// PointLedger is the contract the roll session needs from the ledger.
type PointLedger interface {
	Balance(ctx context.Context, playerID string) (int64, error)
	Debit(ctx context.Context, playerID string, amount int64) error
}

// Client calls the ledger HTTP API. Requests are HMAC-SHA256 signed with the
// shared secret when one is configured.
type Client struct {
	baseURL string
	secret  string
	http    *http.Client
}

func NewClient(baseURL, secret string) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}
	return &Client{
		baseURL: baseURL,
		secret:  secret,
		http:    &http.Client{},
	}
}

func (c *Client) sign(body []byte) string {
	m := hmac.New(sha256.New, []byte(c.secret))
	m.Write(body)
	return hex.EncodeToString(m.Sum(nil))
}

// Balance returns the player's current point balance.
func (c *Client) Balance(ctx context.Context, playerID string) (int64, error) {
	u := c.baseURL + "/api/points/balance?playerId=" + url.QueryEscape(playerID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, err
	}
	if c.secret != "" {
		req.Header.Set("X-Signature", c.sign([]byte(playerID)))
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	var data struct {
		Balance int64  `json:"balance"`
		Error   string `json:"error"`
	}
	_ = json.Unmarshal(body, &data)
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("ledger: %s", data.Error)
	}
	return data.Balance, nil
}

// Debit subtracts amount from the player's balance. The ledger rejects the
// call when funds are insufficient; that surfaces here as an error.
func (c *Client) Debit(ctx context.Context, playerID string, amount int64) error {
	payload := map[string]interface{}{
		"playerId": playerID,
		"amount":   amount,
	}
	body, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/points/debit", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.secret != "" {
		req.Header.Set("X-Signature", c.sign(body))
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)
	var data struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(respBody, &data)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ledger: %s", data.Error)
	}
	return nil
}
