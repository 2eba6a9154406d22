package main

import (
	"context"
	"log"

	"github.com/inklabs/wallclock/pkg/clockapp"
)

func main() {
	app := clockapp.New()

	stopInterrupts := forwardInterrupts(app)
	defer stopInterrupts()

	err := app.Run(context.Background())
	if err != nil {
		log.Fatal(err)
	}
}

type interrupter interface {
	Interrupt(reason string)
}
