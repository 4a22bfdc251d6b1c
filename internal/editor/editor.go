package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// command returns the editor argv, honouring flags in $EDITOR
// such as "code --wait".
func command() []string {
	for _, key := range []string{"FOLIO_EDITOR", "EDITOR", "VISUAL"} {
		if fields := strings.Fields(os.Getenv(key)); len(fields) > 0 {
			return fields
		}
	}
	return []string{"vi"}
}

// Open opens a post file in the user's editor and waits for it to exit.
func Open(path string) error {
	argv := append(command(), path)
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %q: %w", argv[0], err)
	}
	return nil
}
