// Package main provides floatctl, a command line front end for the
// go-floating positioning engine.
//
// Usage:
//
//	floatctl place --anchor l,t,w,h --size w,h [flags]   Compute one position
//	floatctl demo [--runtime tcell|bubbletea]            Run the interactive demo
//	floatctl version                                     Print version information
//
// Examples:
//
//	floatctl place --anchor 100,100,50,20 --size 40,40
//	floatctl place --anchor 70,2,6,1 --size 20,3 --placement bottom-start --viewport auto --json
//	floatctl demo --runtime bubbletea -v
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	root := newRootCmd(os.Stdout, os.Stderr)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
