// Command assertcheck runs domain assertions from the command line and
// relays the resulting notifications over Redis.
//
//	assertcheck validate --cpf 943.754.516-29 --email user@example.com
//	assertcheck validate --cnpj 11.222.333/0001-81 --publish
//	assertcheck listen
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, errUnsatisfied) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
