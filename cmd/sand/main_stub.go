//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of sandpit requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/sand`, or use ./cmd/sand-term in a terminal.")
	os.Exit(2)
}
