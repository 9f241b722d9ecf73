package peer_test

import (
	"errors"
	"testing"

	"github.com/ardanlabs/ledger/foundation/blockchain/peer"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func Test_New(t *testing.T) {
	type table struct {
		name    string
		address string
		exp     string
		err     bool
	}

	tt := []table{
		{name: "no-path", address: "http://127.0.0.1:9080", exp: "http://127.0.0.1:9080/"},
		{name: "slash", address: "http://127.0.0.1:9080/", exp: "http://127.0.0.1:9080/"},
		{name: "case", address: "HTTP://Node1.Example.com:9080", exp: "http://node1.example.com:9080/"},
		{name: "path", address: "https://example.com/ledger", exp: "https://example.com/ledger/"},
		{name: "query", address: "http://example.com/a/?x=1#frag", exp: "http://example.com/a/"},
		{name: "spaces", address: "  http://example.com  ", exp: "http://example.com/"},
		{name: "http-default-port", address: "http://node2:80", exp: "http://node2/"},
		{name: "https-default-port", address: "https://node2:443/", exp: "https://node2/"},
		{name: "empty-port", address: "http://node2:/", exp: "http://node2/"},
		{name: "https-port-80", address: "https://node2:80", exp: "https://node2:80/"},
		{name: "ipv6-default-port", address: "http://[::1]:80", exp: "http://[::1]/"},
		{name: "no-scheme", address: "127.0.0.1:9080", err: true},
		{name: "bad-scheme", address: "ftp://example.com", err: true},
		{name: "no-host", address: "http://", err: true},
		{name: "garbage", address: "http://[::1", err: true},
		{name: "empty", address: "", err: true},
	}

	t.Log("Given the need to normalize peer addresses.")
	{
		for testID, tst := range tt {
			f := func(t *testing.T) {
				p, err := peer.New(tst.address)
				if tst.err {
					if !errors.Is(err, peer.ErrInvalidAddress) {
						t.Fatalf("\t%s\tTest %d:\tShould get ErrInvalidAddress, got %v.", failed, testID, err)
					}
					t.Logf("\t%s\tTest %d:\tShould get ErrInvalidAddress.", success, testID)
					return
				}

				if err != nil {
					t.Fatalf("\t%s\tTest %d:\tShould be able to parse the address: %v", failed, testID, err)
				}

				if p.Address != tst.exp {
					t.Logf("\t\tTest %d:\tgot: %s", testID, p.Address)
					t.Logf("\t\tTest %d:\texp: %s", testID, tst.exp)
					t.Fatalf("\t%s\tTest %d:\tShould get back the normalized address.", failed, testID)
				}
				t.Logf("\t%s\tTest %d:\tShould get back the normalized address.", success, testID)
			}

			t.Run(tst.name, f)
		}
	}
}

func Test_CRUD(t *testing.T) {
	mustNew := func(address string) peer.Peer {
		p, err := peer.New(address)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to parse %q: %v", failed, address, err)
		}
		return p
	}

	t.Log("Given the need to keep an ordered set of peers.")
	{
		ps := peer.NewPeerSet()

		hosts := []string{"http://host3", "http://host1", "http://HOST3/", "http://host2", "http://host1:80", "http://host2:80/"}
		var added int
		for _, host := range hosts {
			if ps.Add(mustNew(host)) {
				added++
			}
		}

		if added != 3 || len(ps.Copy("")) != 3 {
			t.Fatalf("\t%s\tShould dedup equivalent addresses: added %d, peers %v.", failed, added, ps.Copy(""))
		}
		t.Logf("\t%s\tShould dedup equivalent addresses.", success)

		exp := []string{"http://host3/", "http://host1/", "http://host2/"}
		peers := ps.Copy("")
		for i, p := range peers {
			if p.Address != exp[i] {
				t.Fatalf("\t%s\tShould keep insertion order: got %v.", failed, peers)
			}
		}
		t.Logf("\t%s\tShould keep insertion order.", success)

		peers = ps.Copy("http://host1/")
		if len(peers) != 2 {
			t.Fatalf("\t%s\tShould leave out the matching peer: got %v.", failed, peers)
		}
		t.Logf("\t%s\tShould leave out the matching peer.", success)

		if got := mustNew("http://host1").URL("/v1/node/chain"); got != "http://host1/v1/node/chain" {
			t.Fatalf("\t%s\tShould join routes to the address: got %s.", failed, got)
		}
		t.Logf("\t%s\tShould join routes to the address.", success)
	}
}
