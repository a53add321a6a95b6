package systems

import (
	"errors"
	"testing"
	"time"

	"github.com/tardionchain/tardi/components"
	cfg "github.com/tardionchain/tardi/config"
	"github.com/yohamta/donburi/ecs"
)

type fakeClipboard struct {
	err  error
	text chan string
}

func (f *fakeClipboard) WriteText(s string) error {
	f.text <- s
	return f.err
}

func withClipboard(t *testing.T, c clipboardWriter) {
	t.Helper()
	prev := clipboard
	clipboard = c
	t.Cleanup(func() { clipboard = prev })
}

// waitForCopy runs UpdateCopy until the pending write resolves
func waitForCopy(t *testing.T, e *ecs.ECS) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		UpdateCopy(e)
		c := GetOrCreateCopy(e)
		if c.Pending == nil && !c.Requested {
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("clipboard write never resolved")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestCopySuccess(t *testing.T) {
	fake := &fakeClipboard{text: make(chan string, 4)}
	withClipboard(t, fake)
	e := newTestECS()

	RequestCopy(e)
	waitForCopy(t, e)

	if got := <-fake.text; got != cfg.Content.ContractAddress {
		t.Errorf("Expected the contract address on the clipboard, got %q", got)
	}
	c := GetOrCreateCopy(e)
	if !c.Copied {
		t.Fatal("Expected the copied indicator")
	}
	if c.Opacity <= 0 {
		t.Errorf("Expected the indicator to start fading in, got %v", c.Opacity)
	}
	audio := GetOrCreateAudio(e)
	if len(audio.PendingSFX) != 1 || audio.PendingSFX[0] != cfg.SoundCopied {
		t.Errorf("Expected the copied sound to be queued, got %v", audio.PendingSFX)
	}

	runFrames(e, cfg.Copy.IndicatorFrames, UpdateCopy)
	if c.Copied {
		t.Error("Expected the indicator to hide after the timeout")
	}
	runFrames(e, 60, UpdateCopy)
	if c.Opacity != 0 || c.Fade != nil {
		t.Errorf("Expected the indicator faded out, got %v", c.Opacity)
	}
}

func TestCopyRestartsTimer(t *testing.T) {
	fake := &fakeClipboard{text: make(chan string, 4)}
	withClipboard(t, fake)
	e := newTestECS()

	RequestCopy(e)
	waitForCopy(t, e)
	runFrames(e, cfg.Copy.IndicatorFrames/2, UpdateCopy)

	RequestCopy(e)
	waitForCopy(t, e)
	c := GetOrCreateCopy(e)
	if c.FramesLeft < cfg.Copy.IndicatorFrames-2 {
		t.Errorf("Expected the timer to restart, %d frames left", c.FramesLeft)
	}
}

func TestCopyFailure(t *testing.T) {
	fake := &fakeClipboard{err: errors.New("no clipboard"), text: make(chan string, 4)}
	withClipboard(t, fake)
	e := newTestECS()

	RequestCopy(e)
	waitForCopy(t, e)

	c := GetOrCreateCopy(e)
	if c.Copied || c.Opacity != 0 {
		t.Errorf("Expected no indicator after a failed write, got copied=%v opacity=%v", c.Copied, c.Opacity)
	}
	if _, ok := components.Audio.First(e.World); ok {
		if n := len(GetOrCreateAudio(e).PendingSFX); n != 0 {
			t.Errorf("Expected no sound after a failed write, got %d", n)
		}
	}
}
