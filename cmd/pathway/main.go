// Package main starts the Pathway theme service.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	pathwaycmd "github.com/louisbranch/pathway/internal/cmd/pathway"
	"github.com/louisbranch/pathway/internal/platform/config"
)

func main() {
	cfg, err := pathwaycmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := pathwaycmd.Run(ctx, cfg); err != nil {
		config.Exitf("failed to serve: %v", err)
	}
}
