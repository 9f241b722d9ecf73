package worker_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/peer"
	"github.com/ardanlabs/ledger/foundation/blockchain/state"
	"github.com/ardanlabs/ledger/foundation/blockchain/worker"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

type countingClient struct {
	calls int32
}

func (c *countingClient) ChainLength(ctx context.Context, pr peer.Peer) (int, error) {
	atomic.AddInt32(&c.calls, 1)
	return 0, errors.New("unreachable")
}

func (c *countingClient) Chain(ctx context.Context, pr peer.Peer) ([]database.Block, error) {
	return nil, errors.New("unreachable")
}

func waitFor(cond func() bool) bool {
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

func Test_Worker(t *testing.T) {
	t.Log("Given the need to mine and reconcile in the background.")
	{
		client := countingClient{}

		st, err := state.New(state.Config{
			RewardAddress: "node",
			OperatorName:  "miner1",
			MiningFee:     1,
			PeerClient:    &client,
		})
		if err != nil {
			t.Fatalf("\t%s\tShould be able to construct the state: %v", failed, err)
		}

		if err := st.RegisterPeer("http://peer1"); err != nil {
			t.Fatalf("\t%s\tShould be able to register a peer: %v", failed, err)
		}

		ev := func(v string, args ...any) { t.Logf(v, args...) }
		w := worker.Run(st, 0, ev)

		if st.Worker == nil {
			t.Fatalf("\t%s\tShould register the worker with the state.", failed)
		}
		t.Logf("\t%s\tShould register the worker with the state.", success)

		st.SubmitTransaction("a", "b", 5)
		w.SignalStartMining()

		if !waitFor(func() bool { return st.RetrieveChainLength() == 2 }) {
			t.Fatalf("\t%s\tShould mine a block after a signal.", failed)
		}
		t.Logf("\t%s\tShould mine a block after a signal.", success)

		w.SignalReconcile()

		if !waitFor(func() bool { return atomic.LoadInt32(&client.calls) > 0 }) {
			t.Fatalf("\t%s\tShould reconcile after a signal.", failed)
		}
		t.Logf("\t%s\tShould reconcile after a signal.", success)

		if err := st.Shutdown(); err != nil {
			t.Fatalf("\t%s\tShould be able to shut down: %v", failed, err)
		}
		t.Logf("\t%s\tShould be able to shut down.", success)

		w.Shutdown()
		if err := st.Shutdown(); err != nil {
			t.Fatalf("\t%s\tShould be able to shut down again: %v", failed, err)
		}
		t.Logf("\t%s\tShould be able to shut down again.", success)
	}
}

func Test_ReconcileInterval(t *testing.T) {
	t.Log("Given the need to reconcile on an interval.")
	{
		client := countingClient{}

		st, err := state.New(state.Config{PeerClient: &client})
		if err != nil {
			t.Fatalf("\t%s\tShould be able to construct the state: %v", failed, err)
		}
		st.RegisterPeer("http://peer1")

		worker.Run(st, 20*time.Millisecond, func(string, ...any) {})
		defer st.Shutdown()

		if !waitFor(func() bool { return atomic.LoadInt32(&client.calls) >= 2 }) {
			t.Fatalf("\t%s\tShould reconcile on every tick.", failed)
		}
		t.Logf("\t%s\tShould reconcile on every tick.", success)
	}
}
