package prompt

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"
)

var stdin = bufio.NewReader(os.Stdin)

// Line prints label and reads one line from stdin, trimmed of whitespace.
func Line(label string) (string, error) {
	fmt.Print(label)
	s, err := stdin.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(s), nil
}

// Password prints label and reads a line without echoing it.
func Password(label string) (string, error) {
	fmt.Print(label)
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Confirm asks a y/n question and returns true only on an affirmative
// answer. Read errors count as a decline.
func Confirm(label string) bool {
	answer, err := Line(label)
	if err != nil {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}
