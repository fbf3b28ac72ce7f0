package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// One shared reader so read-ahead input is not lost between prompts.
var stdin = bufio.NewReader(os.Stdin)

// Confirm asks a yes/no question and reads one line from stdin. Empty
// input means yes; end of input or an interrupted read means no.
func Confirm(prompt string) bool {
	fmt.Printf("%s ", Warn.Render(prompt+" [Y/n]"))
	line, err := stdin.ReadString('\n')
	if err != nil && strings.TrimSpace(line) == "" {
		fmt.Println()
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "", "y", "yes":
		return true
	default:
		return false
	}
}

// WaitEnter blocks until the user presses Enter (or input ends).
func WaitEnter() {
	fmt.Print(Muted.Render("\n  Press Enter to continue "))
	_, _ = stdin.ReadString('\n')
	fmt.Println()
}
