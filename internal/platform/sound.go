package platform

// PlayWaveFile plays a WAV file through the native system player. The call
// blocks until playback ends and is best-effort: callers run it on their own
// goroutine and only log failures.
func PlayWaveFile(path string) error {
	return playWaveFile(path)
}
