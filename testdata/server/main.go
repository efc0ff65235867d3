// Command server runs the echo API on localhost for manual testing:
//
//	go run ./testdata/server -addr localhost:8080
package main

import (
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/shhac/snooze/internal/echo"
)

func main() {
	addr := flag.String("addr", "localhost:8080", "listen address")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	srv := &http.Server{
		Addr:              *addr,
		Handler:           echo.NewRouter(logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("echo server listening on http://%s", *addr)
	log.Printf("Routes: /echo /json /text /latin1 /encoded/:encoding /status/:code /delay/:ms")

	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
