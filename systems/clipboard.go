package systems

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// clipboardWriter puts text on the system clipboard
type clipboardWriter interface {
	WriteText(s string) error
}

// commandClipboard pipes text into the first clipboard tool that runs successfully
type commandClipboard struct {
	commands [][]string
}

var defaultClipboardCommands = [][]string{
	{"wl-copy"},
	{"xclip", "-selection", "clipboard"},
	{"xsel", "--clipboard", "--input"},
	{"pbcopy"},
	{"clip"},
}

// clipboard is swapped for a fake in tests
var clipboard clipboardWriter = commandClipboard{commands: defaultClipboardCommands}

func (c commandClipboard) WriteText(s string) error {
	var errs []error
	for _, args := range c.commands {
		if len(args) == 0 {
			continue
		}
		path, err := exec.LookPath(args[0])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		cmd := exec.Command(path, args[1:]...)
		cmd.Stdin = strings.NewReader(s)
		if err := cmd.Run(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", args[0], err))
			continue
		}
		return nil
	}
	return fmt.Errorf("no clipboard command available: %w", errors.Join(errs...))
}
