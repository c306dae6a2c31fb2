package wm

import "os/exec"

// spawnedProcess is what actionSpawn hands off to the reaper goroutine:
// a started command, detached from the engine's own state so the
// reaper never touches clients/monitors and the event loop never
// blocks on a child exiting.
type spawnedProcess struct {
	argv []string
	cmd  *exec.Cmd
}

// startReaper runs until e.reapc is closed, starting one goroutine per
// spawned command that Wait()s on it so it never becomes a zombie.
// Because each child is waited on separately, the channel keeps
// draining while children are still running. These goroutines
// communicate nothing back except a log line — spawned processes
// are fire-and-forget from the engine's perspective.
func (e *Engine) startReaper() {
	go func() {
		for sp := range e.reapc {
			go func(sp spawnedProcess) {
				err := sp.cmd.Wait()
				entry := e.log.WithField("argv", sp.argv)
				if err != nil {
					entry.WithError(err).Debug("spawned process exited")
				} else {
					entry.Debug("spawned process exited")
				}
			}(sp)
		}
	}()
}

func (e *Engine) stopReaper() {
	close(e.reapc)
}

// spawn starts argv[0] with the remaining elements as arguments,
// detached from goxwm's own standard streams control, and registers it
// with the reaper. A spawn failure is logged, not surfaced to the
// caller — dwm's spawn() has no way to report failure either, since it
// runs in a forked child.
func (e *Engine) spawn(argv []string) {
	if len(argv) == 0 {
		return
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		e.log.WithError(err).WithField("argv", argv).Warn("spawn failed")
		return
	}
	e.reapc <- spawnedProcess{argv: argv, cmd: cmd}
}
