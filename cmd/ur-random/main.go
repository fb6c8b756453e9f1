package main

import (
	"flag"
	"log"
	"os"

	"github.com/chriscauley/ur-random/internal/cli"
)

func main() {
	logger := log.New(os.Stderr, "ur-random: ", 0)
	cfg, err := cli.ParseConfig(flag.CommandLine, os.Args[1:], nil)
	if err != nil {
		logger.Fatal(err)
	}
	if err := cli.Run(cfg, os.Stdout, logger); err != nil {
		logger.Fatal(err)
	}
}
