package systems

import (
	"fmt"
	"log"
	"net/url"
	"os/exec"
	"runtime"

	cfg "github.com/tardionchain/tardi/config"
)

// OpenLink opens a page link in the default browser. Relative links resolve
// against the site URL.
func OpenLink(ref string) {
	target, err := ResolveURL(cfg.Content.SiteURL, ref)
	if err != nil {
		log.Printf("Warning: bad link %q: %v", ref, err)
		return
	}
	if err := openURL(runtime.GOOS, target); err != nil {
		log.Printf("Warning: failed to open %s: %v", target, err)
	}
}

// ResolveURL resolves ref against base
func ResolveURL(base, ref string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	r, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("parse link: %w", err)
	}
	return b.ResolveReference(r).String(), nil
}

// openCommand returns the platform command that opens target in a browser
func openCommand(goos, target string) (string, []string, error) {
	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{target}, nil
	case "darwin":
		return "open", []string{target}, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}, nil
	}
	return "", nil, fmt.Errorf("no url opener for %s", goos)
}

func openURL(goos, target string) error {
	name, args, err := openCommand(goos, target)
	if err != nil {
		return err
	}
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}
	// Reap the opener without blocking the frame
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}
