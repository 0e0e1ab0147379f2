package dispatch

import (
	"os/exec"
	"syscall"

	"github.com/rs/zerolog"
)

// ProcessDispatcher launches the notification-delivery program as a detached
// process. Launching never blocks the caller and never reports failure
// upward; a block creation must not depend on delivery machinery.
type ProcessDispatcher struct {
	bin string
	log zerolog.Logger
}

// NewProcessDispatcher creates a dispatcher for the given notifier binary.
func NewProcessDispatcher(bin string, log zerolog.Logger) *ProcessDispatcher {
	return &ProcessDispatcher{bin: bin, log: log}
}

// Dispatch starts the notifier for the given block id. The child runs in its
// own session with discarded stdio, so it outlives the request and the parent
// process. Launch errors are logged only.
func (d *ProcessDispatcher) Dispatch(blockID string) {
	cmd := exec.Command(d.bin, blockID)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	if err := cmd.Start(); err != nil {
		d.log.Warn().Err(err).Str("block_id", blockID).Str("bin", d.bin).
			Msg("failed to launch notifier (non-fatal)")
		return
	}
	d.log.Info().Str("block_id", blockID).Int("pid", cmd.Process.Pid).Msg("notifier dispatched")

	// Reap the child when it exits so it does not linger as a zombie while
	// this process is alive. The child is not kept alive by this handle.
	go func() { _ = cmd.Wait() }()
}
