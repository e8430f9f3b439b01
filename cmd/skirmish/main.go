package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	skirmishcmd "github.com/louisbranch/purerand/internal/cmd/skirmish"
)

func main() {
	cfg, err := skirmishcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[SKIRMISH] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := skirmishcmd.Run(ctx, os.Stdout, cfg); err != nil {
		log.Fatalf("skirmish failed: %v", err)
	}
}
