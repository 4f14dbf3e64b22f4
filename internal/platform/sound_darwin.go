package platform

import (
	"fmt"
	"os/exec"
)

func playWaveFile(path string) error {
	if err := exec.Command("afplay", path).Run(); err != nil {
		return fmt.Errorf("afplay: %w", err)
	}
	return nil
}
