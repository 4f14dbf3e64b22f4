package platform

import (
	"fmt"
	"syscall"
)

const (
	esContinuous     = 0x80000000
	esSystemRequired = 0x00000001
)

// inhibitSleep flips the thread execution state so the system stays awake
// until the release func clears it.
func inhibitSleep() (func(), error) {
	kernel32 := syscall.NewLazyDLL("kernel32.dll")
	setThreadExecutionState := kernel32.NewProc("SetThreadExecutionState")

	result, _, err := setThreadExecutionState.Call(uintptr(esContinuous | esSystemRequired))
	if result == 0 {
		if err != nil {
			return nil, fmt.Errorf("set thread execution state: %w", err)
		}
		return nil, fmt.Errorf("set thread execution state: unknown error")
	}
	return func() {
		_, _, _ = setThreadExecutionState.Call(uintptr(esContinuous))
	}, nil
}
