package main

import (
	"os"

	"github.com/cinex/cinema-service/internal/app"
)

func main() {
	err := app.Run()
	if err != nil {
		os.Exit(1)
	}
}
