package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/cezvahid/tonto/internal/handlers/cli"
)

const defaultMaxRounds = 3

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	rounds := flag.Int("rounds", getEnvInt("TONTO_MAX_ROUNDS", defaultMaxRounds), "number of rounds per game")
	flag.Usage = usage
	flag.Parse()

	names := flag.Args()
	if len(names) == 0 {
		usage()
		os.Exit(2)
	}

	runner, err := cli.New(&cli.Config{
		PlayerNames: names,
		MaxRounds:   *rounds,
	})
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Game failed: %v", err)
	}
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-rounds N] PLAYER [PLAYER...]\n", os.Args[0])
	flag.PrintDefaults()
}

// getEnvInt retrieves an integer environment variable or returns a fallback
func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Ignoring %s=%q: %v", key, value, err)
		return fallback
	}
	return parsed
}
