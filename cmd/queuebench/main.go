// Command queuebench times ArrayQueue, ListQueue and StdQueue for int,
// string and Record elements.
//
// Usage:
//
//	go run ./cmd/queuebench
package main

import (
	"os"

	"github.com/tezrry/queuebench/pkg/logging"
)

func main() {
	err := newRootCommand().Execute()
	logging.Cleanup()
	if err != nil {
		os.Exit(1)
	}
}
