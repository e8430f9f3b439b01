package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	chaincmd "github.com/louisbranch/purerand/internal/cmd/chain"
)

func main() {
	cfg, err := chaincmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[CHAIN] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := chaincmd.Run(ctx, os.Stdout, cfg); err != nil {
		log.Fatalf("chain failed: %v", err)
	}
}
