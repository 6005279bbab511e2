// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/beevik/go8080/host"
	"github.com/beevik/term"
)

var (
	rom string
)

func init() {
	flag.StringVar(&rom, "rom", "", "ROM image to load at address 0")
	flag.CommandLine.Usage = func() {
		fmt.Println("Usage: go8080 [options] [script] ..\nOptions:")
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()

	h := host.New()

	// Load a ROM image if requested.
	if rom != "" {
		data, err := os.ReadFile(rom)
		if err != nil {
			exitOnError(err)
		}
		if err := h.Machine().LoadROM(data, 0); err != nil {
			exitOnError(err)
		}
	}

	// Run commands contained in command-line files.
	args := flag.Args()
	for _, filename := range args {
		file, err := os.Open(filename)
		if err != nil {
			exitOnError(err)
		}
		h.RunCommands(file, os.Stdout, false)
		file.Close()
	}

	// Break on Ctrl-C.
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go handleInterrupt(h, c)

	// Run commands interactively.
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	h.RunCommands(os.Stdin, os.Stdout, interactive)
}

func handleInterrupt(h *host.Host, c chan os.Signal) {
	for {
		<-c
		h.Break()
	}
}

func exitOnError(err error) {
	fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	os.Exit(1)
}
