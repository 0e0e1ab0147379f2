package dispatch

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestDispatch_MissingBinaryDoesNotFail(t *testing.T) {
	d := NewProcessDispatcher("/nonexistent/silentblock-notifier", zerolog.Nop())

	done := make(chan struct{})
	go func() {
		// Dispatch has no error return by contract; launching a missing
		// binary must neither panic nor block.
		d.Dispatch("65a1b2c3d4e5f60718293a4b")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Dispatch blocked the caller")
	}
}
