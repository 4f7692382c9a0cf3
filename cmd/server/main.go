package main

import (
	"context"
	"log"

	"github.com/ownersalliance/trustportal/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
