package platform

import (
	"fmt"
	"os/exec"
)

// inhibitSleep runs caffeinate for as long as the returned release func is
// not called.
func inhibitSleep() (func(), error) {
	command := exec.Command("caffeinate", "-di")
	if err := command.Start(); err != nil {
		return nil, fmt.Errorf("start caffeinate: %w", err)
	}
	go func() {
		_ = command.Wait()
	}()
	return func() {
		_ = command.Process.Kill()
	}, nil
}
