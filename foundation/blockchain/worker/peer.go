package worker

import (
	"context"
	"time"
)

// reconcileOperations handles chain reconciliation with the known peers.
func (w *Worker) reconcileOperations() {
	w.evHandler("worker: reconcileOperations: G started")
	defer w.evHandler("worker: reconcileOperations: G completed")

	// A nil channel blocks forever when no interval is configured.
	var tick <-chan time.Time
	if w.ticker != nil {
		tick = w.ticker.C
	}

	for {
		select {
		case <-w.reconcile:
			if !w.isShutdown() {
				w.runReconcileOperation()
			}
		case <-tick:
			if !w.isShutdown() {
				w.runReconcileOperation()
			}
		case <-w.shut:
			w.evHandler("worker: reconcileOperations: received shut signal")
			return
		}
	}
}

// runReconcileOperation asks the known peers for a longer chain.
func (w *Worker) runReconcileOperation() {
	w.evHandler("worker: runReconcileOperation: started")
	defer w.evHandler("worker: runReconcileOperation: completed")

	// Cancel the peer requests if the node is shutting down.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		select {
		case <-w.shut:
			cancel()
		case <-ctx.Done():
		}
	}()

	replaced := w.state.Reconcile(ctx)

	w.evHandler("worker: runReconcileOperation: replaced[%v]", replaced)
}
