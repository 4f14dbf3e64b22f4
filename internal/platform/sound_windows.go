package platform

import (
	"fmt"
	"os/exec"
	"strings"
)

func playWaveFile(path string) error {
	escaped := strings.ReplaceAll(path, "'", "''")
	script := fmt.Sprintf("(New-Object Media.SoundPlayer '%s').PlaySync()", escaped)
	command := exec.Command("powershell", "-NoProfile", "-NonInteractive", "-Command", script)
	if err := command.Run(); err != nil {
		return fmt.Errorf("powershell soundplayer: %w", err)
	}
	return nil
}
