package main

import (
	"context"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"

	"github.com/zephyrtronium/calc/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := cli.Execute(ctx); err != nil {
		log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
		log.Error(err)
		stop()
		os.Exit(1)
	}
}
