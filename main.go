package main

import (
	"fmt"
	"os"

	"github.com/tebeka/atexit"

	"os-scheduler/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
