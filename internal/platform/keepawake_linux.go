package platform

import (
	"fmt"
	"os/exec"
)

// inhibitSleep holds a systemd inhibitor lock by parking a sleep process
// behind systemd-inhibit until the release func kills it.
func inhibitSleep() (func(), error) {
	inhibit, err := exec.LookPath("systemd-inhibit")
	if err != nil {
		return nil, fmt.Errorf("systemd-inhibit unavailable: %w", err)
	}
	command := exec.Command(inhibit,
		"--what=idle:sleep",
		"--who=FocusBell",
		"--why=countdown running",
		"sleep", "infinity")
	if err := command.Start(); err != nil {
		return nil, fmt.Errorf("start systemd-inhibit: %w", err)
	}
	go func() {
		_ = command.Wait()
	}()
	return func() {
		_ = command.Process.Kill()
	}, nil
}
