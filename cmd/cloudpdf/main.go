package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nickabs/cloudpdf"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		// the api's error body is more useful than the status line cobra has already printed
		var trErr *cloudpdf.TransportError
		if errors.As(err, &trErr) && len(trErr.Body) > 0 {
			fmt.Fprintln(os.Stderr, string(trErr.Body))
		}
		os.Exit(1)
	}
}
