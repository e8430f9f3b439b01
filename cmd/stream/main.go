package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	streamcmd "github.com/louisbranch/purerand/internal/cmd/stream"
)

func main() {
	cfg, err := streamcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[STREAM] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := streamcmd.Run(ctx, os.Stdout, cfg); err != nil {
		log.Fatalf("stream failed: %v", err)
	}
}
