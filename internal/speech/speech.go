// Package speech plays pronunciation through the host platform's
// speech synthesizer. Detection happens once at construction; when no
// synthesizer is found the UI shows a disabled affordance instead of
// failing on every keypress.
package speech

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// Speaker synthesizes and plays a text string.
type Speaker interface {
	// Available reports whether a synthesizer was found at startup.
	Available() bool

	// Speak blocks until playback finishes or ctx is done. Calling it
	// on an unavailable speaker returns ErrUnavailable.
	Speak(ctx context.Context, text string) error
}

// ErrUnavailable is returned by Speak when no synthesizer exists.
var ErrUnavailable = fmt.Errorf("no speech synthesizer available")

// command is one candidate synthesizer invocation. Args are appended
// before the text argument.
type command struct {
	bin  string
	args []string
}

// candidatesFor lists the platform synthesizers in preference order,
// each configured for a Mandarin voice where the tool supports one.
func candidatesFor(goos string) []command {
	switch goos {
	case "darwin":
		return []command{{bin: "say", args: []string{"-v", "Tingting"}}}
	case "linux":
		return []command{
			{bin: "espeak-ng", args: []string{"-v", "cmn"}},
			{bin: "espeak", args: []string{"-v", "zh"}},
		}
	case "windows":
		return []command{{bin: "powershell", args: []string{
			"-NoProfile", "-Command",
			"Add-Type -AssemblyName System.Speech; (New-Object System.Speech.Synthesis.SpeechSynthesizer).Speak($args[0])",
		}}}
	default:
		return nil
	}
}

// ExecSpeaker shells out to the first synthesizer found on PATH.
type ExecSpeaker struct {
	cmd *command
}

// NewExecSpeaker probes the platform synthesizers and returns a
// speaker. The zero-candidate case is not an error; the speaker just
// reports unavailable.
func NewExecSpeaker() *ExecSpeaker {
	for _, c := range candidatesFor(runtime.GOOS) {
		if _, err := exec.LookPath(c.bin); err == nil {
			c := c
			return &ExecSpeaker{cmd: &c}
		}
	}
	return &ExecSpeaker{}
}

func (s *ExecSpeaker) Available() bool {
	return s.cmd != nil
}

func (s *ExecSpeaker) Speak(ctx context.Context, text string) error {
	if s.cmd == nil {
		return ErrUnavailable
	}
	args := append(append([]string{}, s.cmd.args...), text)
	cmd := exec.CommandContext(ctx, s.cmd.bin, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w (%s)", s.cmd.bin, err, string(out))
	}
	return nil
}
