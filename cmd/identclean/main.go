package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/dmitrymomot/identkit/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logger.New(logger.WithAttr(logger.Component("identclean"))).
			Error("command failed", logger.Error(err))
		stop()
		os.Exit(1)
	}
}
