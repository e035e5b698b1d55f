// SPDX-License-Identifier: EPL-2.0

// Command wavkit renders audio into WAV files.
//
// Usage:
//
//	wavkit [flags] <command> [args]
//
// Commands:
//
//	tone     - Write a sine tone
//	convert  - Convert an audio file (wav, aiff, mp3, ogg) to WAV
//	info     - Show the layout of a WAV file
//	batch    - Run tone and convert jobs from a YAML or JSON manifest
package main

import (
	"fmt"
	"os"

	"github.com/ik5/wavkit/cmd/wavkit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
