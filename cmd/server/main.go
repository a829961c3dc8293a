package main

import (
	log "github.com/sirupsen/logrus"

	"socialnet/internal/transport/http"
)

func main() {
	if err := http.Run(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
