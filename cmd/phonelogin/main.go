package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"phonelogin/cmd/phonelogin/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
