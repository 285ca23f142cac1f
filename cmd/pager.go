package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// isTerminal reports whether stdout is attached to a terminal. Redirected or
// piped output is never paged.
func isTerminal() bool {
	fileInfo, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// displayWithPager pipes content through the user's pager. $PAGER wins;
// otherwise the first of less, more or cat found on PATH is used. With no
// pager available at all the content is printed directly.
func displayWithPager(content string) error {
	pagerCmd := os.Getenv("PAGER")
	if pagerCmd == "" {
		for _, pager := range []string{"less", "more", "cat"} {
			if _, err := exec.LookPath(pager); err == nil {
				pagerCmd = pager
				break
			}
		}
	}

	if pagerCmd == "" {
		fmt.Print(content)
		return nil
	}

	// less needs -R to pass lipgloss's ANSI styles through; -F and -X keep
	// short result lists on the main screen instead of the alternate one.
	var args []string
	if strings.Contains(pagerCmd, "less") {
		args = []string{"-R", "-S", "-F", "-X"}
	}

	cmd := exec.Command(pagerCmd, args...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}
