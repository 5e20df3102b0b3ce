package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	apiURL := "http://localhost:8080"
	if envURL := os.Getenv("API_URL"); envURL != "" {
		apiURL = envURL
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "demo":
		demoCmd(apiURL, args)
	case "seed-vendors":
		seedVendorsCmd(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Planner Simulator - Development tool for populating the event planner

USAGE:
  simulator <command> [options]

COMMANDS:
  demo          Register a user and walk an event through the API
  seed-vendors  Insert sample vendors directly into the database
  help          Show this help message

ENVIRONMENT:
  API_URL       Backend API URL (default: http://localhost:8080)
  DATABASE_URL  Postgres connection string (seed-vendors only)

EXAMPLES:
  # Create a demo user, an event, and a few participants
  simulator demo

  # Create three demo events instead of one
  simulator demo --events=3

  # Populate the vendor catalog
  simulator seed-vendors`)
}

func demoCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	eventCount := fs.Int("events", 1, "Number of demo events to create")
	fs.Parse(args)

	if *eventCount < 1 || *eventCount > 20 {
		fmt.Println("Error: --events must be between 1 and 20")
		os.Exit(1)
	}

	if err := runDemo(apiURL, *eventCount); err != nil {
		fmt.Printf("FAILED\n  Error: %v\n", err)
		os.Exit(1)
	}
}

func seedVendorsCmd(args []string) {
	fs := flag.NewFlagSet("seed-vendors", flag.ExitOnError)
	fs.Parse(args)

	if err := runSeedVendors(); err != nil {
		fmt.Printf("FAILED\n  Error: %v\n", err)
		os.Exit(1)
	}
}
