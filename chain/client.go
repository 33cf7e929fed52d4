// Package chain talks to the zkCross rollup over its HTTP query and
// command surface. It implements launchpad.Ledger.
package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/zkcross/launchpad"
)

// envelope is the JSON wrapper every endpoint answers with.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message,omitempty"`
}

// Client is an HTTP client for one rollup server. It carries no session
// state; processing keys are passed per call the way the RPC does it.
type Client struct {
	baseURL string
	hc      *http.Client
}

// NewClient creates a client for the given server base URL.
func NewClient(serverURL string) *Client {
	return &Client{
		baseURL: serverURL,
		hc:      &http.Client{Timeout: 30 * time.Second},
	}
}

// get performs a GET and unmarshals the envelope's data field into out.
// A 404 translates to launchpad.ErrNoData.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("cannot GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return launchpad.ErrNoData
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot GET %s: %s", path, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("malformed response for %s: %w", path, err)
	}
	if !env.Success {
		if env.Message != "" {
			return fmt.Errorf("%s: %s", path, env.Message)
		}
		return fmt.Errorf("%s: server reported failure", path)
	}
	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("malformed data for %s: %w", path, err)
		}
	}
	return nil
}

// post performs a POST with a JSON body and returns the envelope.
func (c *Client) post(ctx context.Context, path string, payload any) (envelope, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return envelope{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return envelope{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.hc.Do(req)
	if err != nil {
		return envelope{}, fmt.Errorf("cannot POST %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return envelope{}, err
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return envelope{}, fmt.Errorf("malformed response for %s: %w", path, err)
	}
	return env, nil
}

// Offerings lists every offering on the rollup.
func (c *Client) Offerings(ctx context.Context) ([]launchpad.OfferingRecord, error) {
	var records []launchpad.OfferingRecord
	if err := c.get(ctx, "/data/idos", &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Offering fetches one offering by id.
func (c *Client) Offering(ctx context.Context, id string) (launchpad.OfferingRecord, error) {
	var rec launchpad.OfferingRecord
	if err := c.get(ctx, "/data/ido/"+id, &rec); err != nil {
		return launchpad.OfferingRecord{}, err
	}
	return rec, nil
}

// Investors lists every investment recorded for one offering.
func (c *Client) Investors(ctx context.Context, id string) ([]launchpad.InvestmentRecord, error) {
	var records []launchpad.InvestmentRecord
	if err := c.get(ctx, "/data/ido/"+id+"/investors", &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Positions lists a participant's stake in every offering.
func (c *Client) Positions(ctx context.Context, id launchpad.Identity) ([]launchpad.PositionRecord, error) {
	p1, p2 := id.Strings()
	var records []launchpad.PositionRecord
	if err := c.get(ctx, "/data/user/"+p1+"/"+p2+"/positions", &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Position fetches a participant's stake in one offering.
func (c *Client) Position(ctx context.Context, id launchpad.Identity, offeringID string) (launchpad.PositionRecord, error) {
	p1, p2 := id.Strings()
	var rec launchpad.PositionRecord
	if err := c.get(ctx, "/data/user/"+p1+"/"+p2+"/project/"+offeringID+"/position", &rec); err != nil {
		return launchpad.PositionRecord{}, err
	}
	return rec, nil
}

// Investments lists a participant's invest events.
func (c *Client) Investments(ctx context.Context, id launchpad.Identity) ([]launchpad.InvestmentRecord, error) {
	p1, p2 := id.Strings()
	var records []launchpad.InvestmentRecord
	if err := c.get(ctx, "/data/user/"+p1+"/"+p2+"/investments", &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Withdrawals lists a participant's withdrawal events.
func (c *Client) Withdrawals(ctx context.Context, id launchpad.Identity) ([]launchpad.WithdrawalRecord, error) {
	p1, p2 := id.Strings()
	var records []launchpad.WithdrawalRecord
	if err := c.get(ctx, "/data/user/"+p1+"/"+p2+"/withdrawals", &records); err != nil {
		return nil, err
	}
	return records, nil
}
