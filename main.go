package main

import (
	"fmt"
	"os"

	"github.com/eastsky4dk/youtubeQurator/cmd"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env if present (YOUTUBE_API_KEY).
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
