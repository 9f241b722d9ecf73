// Package peer maintains the peer related information such as the set
// of known peers and the wire schema peers exchange.
package peer

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
)

// ErrInvalidAddress is returned when a peer address can't be parsed into
// an http(s) url with a host.
var ErrInvalidAddress = errors.New("invalid peer address")

// Peer represents information about a Node in the network.
type Peer struct {
	Address string
}

// New parses the address and constructs a peer with the normalized form of
// the address. The normalized form is scheme://host/path with a lowercase
// scheme and host, no default port, a path that always ends in a slash, and
// no query or fragment.
func New(address string) (Peer, error) {
	u, err := url.Parse(strings.TrimSpace(address))
	if err != nil {
		return Peer{}, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return Peer{}, fmt.Errorf("%w: %q: scheme must be http or https", ErrInvalidAddress, address)
	}

	if u.Host == "" || u.Hostname() == "" {
		return Peer{}, fmt.Errorf("%w: %q: missing host", ErrInvalidAddress, address)
	}

	path := u.EscapedPath()
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}

	// The default port of the scheme is dropped so a node can only be known
	// by one address.
	host := strings.ToLower(u.Host)
	switch port := u.Port(); {
	case port == "" && strings.HasSuffix(host, ":"):
		host = strings.TrimSuffix(host, ":")
	case scheme == "http" && port == "80", scheme == "https" && port == "443":
		host = strings.TrimSuffix(host, ":"+port)
	}

	norm := url.URL{
		Scheme: scheme,
		Host:   host,
	}

	return Peer{Address: norm.String() + path}, nil
}

// Match validates if the specified address matches this peer.
func (p Peer) Match(address string) bool {
	return p.Address == address
}

// URL joins the route to the peer address.
func (p Peer) URL(route string) string {
	return p.Address + strings.TrimPrefix(route, "/")
}

// String implements the Stringer interface.
func (p Peer) String() string {
	return p.Address
}

// =============================================================================

// PeerSet represents the data representation to maintain a set of known
// peers. Peers are returned in the order they were first added.
type PeerSet struct {
	mu    sync.RWMutex
	set   map[Peer]struct{}
	order []Peer
}

// NewPeerSet constructs a new info set to manage node peer information.
func NewPeerSet() *PeerSet {
	return &PeerSet{
		set: make(map[Peer]struct{}),
	}
}

// Add adds a new node to the set. It reports false if the peer was
// already known.
func (ps *PeerSet) Add(peer Peer) bool {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	if _, exists := ps.set[peer]; exists {
		return false
	}

	ps.set[peer] = struct{}{}
	ps.order = append(ps.order, peer)

	return true
}

// Copy returns a list of the known peers in insertion order, leaving out
// the peer matching the specified address.
func (ps *PeerSet) Copy(address string) []Peer {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	peers := make([]Peer, 0, len(ps.order))
	for _, peer := range ps.order {
		if !peer.Match(address) {
			peers = append(peers, peer)
		}
	}

	return peers
}
