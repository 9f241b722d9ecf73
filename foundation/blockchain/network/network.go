// Package network implements the HTTP client a node uses to query the chain
// held by its peers.
package network

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/peer"
	"github.com/ardanlabs/ledger/foundation/validate"
	"github.com/cenkalti/backoff"
)

// Routes served by the private API of every node.
const (
	RouteChainLength = "v1/node/chain/length"
	RouteChain       = "v1/node/chain"
)

// maxResponseBytes caps the size of a response read from a peer.
const maxResponseBytes = 64 << 20

// EventHandler defines a function that is called when events
// occur while talking to peers.
type EventHandler func(v string, args ...any)

// Config represents the settings for talking to peers.
type Config struct {
	Timeout   time.Duration
	Retries   uint64
	EvHandler EventHandler
}

// Client queries peers over HTTP.
type Client struct {
	http      *http.Client
	retries   uint64
	evHandler EventHandler
}

// New constructs a client for querying peers.
func New(cfg Config) *Client {
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	return &Client{
		http:      &http.Client{Timeout: cfg.Timeout},
		retries:   cfg.Retries,
		evHandler: ev,
	}
}

// ChainLength asks the peer for the length of its chain.
func (c *Client) ChainLength(ctx context.Context, pr peer.Peer) (int, error) {
	c.evHandler("network: ChainLength: started: %s", pr)
	defer c.evHandler("network: ChainLength: completed: %s", pr)

	var resp peer.ChainLength
	if err := c.get(ctx, pr.URL(RouteChainLength), &resp); err != nil {
		return 0, err
	}

	if err := checkVersion(resp.Version); err != nil {
		return 0, err
	}

	if err := validate.Check(resp); err != nil {
		return 0, fmt.Errorf("chain length payload: %w", err)
	}

	c.evHandler("network: ChainLength: peer[%s]: length[%d]", pr, resp.Length)

	return resp.Length, nil
}

// Chain asks the peer for its full chain.
func (c *Client) Chain(ctx context.Context, pr peer.Peer) ([]database.Block, error) {
	c.evHandler("network: Chain: started: %s", pr)
	defer c.evHandler("network: Chain: completed: %s", pr)

	var resp peer.Chain
	if err := c.get(ctx, pr.URL(RouteChain), &resp); err != nil {
		return nil, err
	}

	if err := checkVersion(resp.Version); err != nil {
		return nil, err
	}

	if err := validate.Check(resp); err != nil {
		return nil, fmt.Errorf("chain payload: %w", err)
	}

	c.evHandler("network: Chain: peer[%s]: blocks[%d]", pr, len(resp.Blocks))

	return resp.Blocks, nil
}

// =============================================================================

func checkVersion(version string) error {
	if version != peer.SchemaVersion {
		return fmt.Errorf("%w: got %q, exp %q", peer.ErrSchemaVersion, version, peer.SchemaVersion)
	}
	return nil
}

// get performs the request, retrying transport failures and server errors
// up to the configured number of retries.
func (c *Client) get(ctx context.Context, url string, dataRecv any) error {
	var attempt int

	op := func() error {
		attempt++
		if attempt > 1 {
			c.evHandler("network: get: %s: retry attempt[%d]", url, attempt)
		}
		return send(ctx, c.http, http.MethodGet, url, nil, dataRecv)
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.retries), ctx)

	return backoff.Retry(op, bo)
}

// send is a helper function to send an HTTP request to a node. Decoding is
// strict: unknown fields fail the request and are never retried.
func send(ctx context.Context, client *http.Client, method string, url string, dataSend any, dataRecv any) error {
	var body io.Reader
	if dataSend != nil {
		data, err := json.Marshal(dataSend)
		if err != nil {
			return backoff.Permanent(err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return backoff.Permanent(err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, err := io.ReadAll(io.LimitReader(resp.Body, 1024))
		if err != nil {
			return err
		}

		err = fmt.Errorf("status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
		if resp.StatusCode < http.StatusInternalServerError {
			return backoff.Permanent(err)
		}
		return err
	}

	if dataRecv != nil {
		d := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes))
		d.DisallowUnknownFields()

		if err := d.Decode(dataRecv); err != nil {
			return backoff.Permanent(fmt.Errorf("decoding response: %w", err))
		}

		if d.More() {
			return backoff.Permanent(errors.New("decoding response: trailing data"))
		}
	}

	return nil
}
