// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnavailable is returned when no clipboard tool is installed.
var ErrUnavailable = errors.New("no clipboard tool available")

// candidates lists clipboard commands per OS in order of preference.
var candidates = map[string][][]string{
	"darwin":  {{"pbcopy"}},
	"linux":   {{"wl-copy"}, {"xclip", "-selection", "clipboard"}, {"xsel", "--clipboard", "--input"}},
	"windows": {{"cmd", "/c", "clip"}},
}

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// command returns the first installed clipboard command for goos.
func command(goos string) ([]string, error) {
	for _, argv := range candidates[goos] {
		if _, err := lookPath(argv[0]); err == nil {
			return argv, nil
		}
	}
	return nil, fmt.Errorf("%w on %s", ErrUnavailable, goos)
}

// Write copies text to the system clipboard.
func Write(text string) error {
	argv, err := command(runtime.GOOS)
	if err != nil {
		return err
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", argv[0], err)
	}
	return nil
}

// Available reports whether Write can succeed on this system.
func Available() bool {
	_, err := command(runtime.GOOS)
	return err == nil
}
