package systems

import (
	"log"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/tardionchain/tardi/components"
	cfg "github.com/tardionchain/tardi/config"
	"github.com/yohamta/donburi/ecs"
)

// RequestCopy asks for the contract address to be written to the clipboard
func RequestCopy(e *ecs.ECS) {
	GetOrCreateCopy(e).Requested = true
}

// UpdateCopy starts requested clipboard writes, collects their results and runs the
// "copied" indicator. A failed write is only logged; the indicator stays as it was.
func UpdateCopy(e *ecs.ECS) {
	c := GetOrCreateCopy(e)

	if c.Requested && c.Pending == nil {
		c.Requested = false
		ch := make(chan error, 1)
		text := c.Text
		go func() {
			ch <- clipboard.WriteText(text)
		}()
		c.Pending = ch
	}

	if c.Pending != nil {
		select {
		case err := <-c.Pending:
			c.Pending = nil
			if err != nil {
				log.Printf("Warning: failed to copy contract address: %v", err)
				break
			}
			// A repeated copy restarts the timer
			c.FramesLeft = cfg.Copy.IndicatorFrames
			if !c.Copied {
				c.Copied = true
				c.Fade = gween.New(c.Opacity, 1, cfg.Copy.FadeSeconds, ease.OutQuad)
			}
			QueueSFX(e, cfg.SoundCopied)
		default:
		}
	}

	if c.Copied {
		c.FramesLeft--
		if c.FramesLeft <= 0 {
			c.Copied = false
			c.FramesLeft = 0
			c.Fade = gween.New(c.Opacity, 0, cfg.Copy.FadeSeconds, ease.InQuad)
		}
	}

	if c.Fade != nil {
		v, done := c.Fade.Update(frameSeconds)
		c.Opacity = v
		if done {
			c.Fade = nil
		}
	}
}

// GetOrCreateCopy returns the page singleton's copy state
func GetOrCreateCopy(e *ecs.ECS) *components.CopyData {
	return components.Copy.Get(getOrCreatePage(e))
}
