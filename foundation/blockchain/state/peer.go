package state

import "github.com/ardanlabs/ledger/foundation/blockchain/peer"

// RegisterPeer normalizes the address and adds it to the known peers. A
// malformed address leaves the known peers untouched. Registering a known
// peer again is a no-op.
func (s *State) RegisterPeer(address string) error {
	return s.RegisterPeers([]string{address})
}

// RegisterPeers registers every address or none of them. The first
// malformed address fails the whole set.
func (s *State) RegisterPeers(addresses []string) error {
	peers := make([]peer.Peer, len(addresses))
	for i, address := range addresses {
		pr, err := peer.New(address)
		if err != nil {
			return err
		}
		peers[i] = pr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, pr := range peers {
		if s.knownPeers.Add(pr) {
			s.evHandler("state: RegisterPeers: adding peer-node %s", pr)
		}
	}

	return nil
}
