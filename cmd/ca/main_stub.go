//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

// Without the ebiten tag the viewer is not compiled in.
func main() {
	fmt.Fprintln(os.Stderr, "ca: built without the window viewer; rebuild with -tags ebiten")
	fmt.Fprintln(os.Stderr, "ca: for terminal output run: wolfram run")
	os.Exit(2)
}
