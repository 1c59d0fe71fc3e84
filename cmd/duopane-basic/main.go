// Demonstrates basic window creation, dynamic titling, and the Say and
// Prompt convenience calls.
package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/duopane/window"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	win, err := window.Open(window.Config{Title: "Basic Window"})
	if err != nil {
		return err
	}
	defer win.Close()

	if err := win.Say("Nice window you've got there!"); err != nil {
		return err
	}
	if _, err := win.Prompt("What are you waiting for?"); err != nil {
		return err
	}
	if err := win.Say("Fascinating!"); err != nil {
		return err
	}
	_, err = win.Prompt("Well, goodbye!")
	return err
}
