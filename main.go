package main

import (
	"context"
	"os"
	"time"

	"github.com/V6nn/Pillar-Bank-ATM/internal/app"
)

func main() {
	application := app.New()    // Initialize the application
	wait := application.Start() // Start the console session
	<-wait                      // Wait for the session to end or a termination signal

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	application.Stop(ctx) // Stop the application gracefully
	cancel()

	os.Exit(application.ExitCode())
}
