package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/billworks/receipt-render/internal/api"
	"github.com/billworks/receipt-render/internal/printer"
)

// Version is set during build via ldflags
var Version = "dev"

func main() {
	port := getPort()

	pool := printer.NewPool()

	// Print queue with 3 retries
	queue := printer.NewQueue(pool, 3)
	defer queue.Stop()

	server := api.NewServer(pool, queue)

	serverErrChan := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", port)
		log.Printf("Starting API server on %s", addr)
		if err := server.Run(addr); err != nil {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrChan:
		log.Fatalf("Server error: %v", err)
	case <-sigChan:
		log.Println("Shutting down...")
		pool.DisconnectAll()
	}
}

func getPort() string {
	if port := os.Getenv("SERVER_PORT"); port != "" {
		return port
	}

	for i, arg := range os.Args {
		if arg == "--port" && i+1 < len(os.Args) {
			return os.Args[i+1]
		}
	}

	return "12212"
}
