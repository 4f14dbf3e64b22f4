package platform

import (
	"fmt"
	"os/exec"
)

// playWaveFile tries the PulseAudio player first, then falls back to ALSA.
func playWaveFile(path string) error {
	if player, err := exec.LookPath("paplay"); err == nil {
		if err := exec.Command(player, path).Run(); err != nil {
			return fmt.Errorf("paplay: %w", err)
		}
		return nil
	}
	if player, err := exec.LookPath("aplay"); err == nil {
		if err := exec.Command(player, "-q", path).Run(); err != nil {
			return fmt.Errorf("aplay: %w", err)
		}
		return nil
	}
	return fmt.Errorf("no wave player found")
}
