package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

func main() {
	cli := parseArgs(os.Args[1:])

	switch cli.mode {
	case versionMode:
		fmt.Println("anfsq7", version)
	case runMode:
		runDeck(cli)
	}
}
