package speech

import (
	"context"
	"errors"
	"testing"
)

func TestUnavailableSpeakerReturnsErrUnavailable(t *testing.T) {
	s := &ExecSpeaker{}
	if s.Available() {
		t.Fatal("zero speaker should be unavailable")
	}
	err := s.Speak(context.Background(), "你好")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Speak on unavailable speaker = %v, want ErrUnavailable", err)
	}
}

func TestCandidatesCoverSupportedPlatforms(t *testing.T) {
	for _, goos := range []string{"darwin", "linux", "windows"} {
		if len(candidatesFor(goos)) == 0 {
			t.Errorf("no synthesizer candidates for %s", goos)
		}
	}
	if len(candidatesFor("plan9")) != 0 {
		t.Error("unsupported platform should have no candidates")
	}
}

func TestCandidateArgsDoNotIncludeText(t *testing.T) {
	// The text is appended at Speak time; baked-in args must only
	// carry voice selection.
	for _, c := range candidatesFor("linux") {
		for _, a := range c.args {
			if a == "" {
				t.Errorf("%s has an empty arg", c.bin)
			}
		}
	}
}
