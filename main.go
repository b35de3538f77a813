// ABOUTME: Entry point for the closet wardrobe CLI
// ABOUTME: Routes to wardrobe, outfit, and sync commands based on arguments
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/harperreed/closet/cli"
	"github.com/harperreed/closet/config"
	"github.com/harperreed/closet/events"
	"github.com/harperreed/closet/identity"
	"github.com/harperreed/closet/remote"
	"github.com/harperreed/closet/storage"
	"github.com/harperreed/closet/syncer"
)

const version = "0.1.0"

func main() {
	showVersion := flag.Bool("version", false, "Show version and exit")
	dataDir := flag.String("data-dir", "", "Data directory (default: ~/.local/share/closet)")
	apiURL := flag.String("api-url", "", "Remote service base URL")

	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("closet version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	// .env is optional; real environment variables win either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *apiURL != "" {
		cfg.APIBaseURL = *apiURL
	}

	logger := newLogger(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	store, err := storage.Open(cfg.DatabasePath(), logger)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer func() { _ = store.Close() }()

	client := remote.NewClient(&http.Client{Timeout: cfg.HTTPTimeout}, cfg.APIBaseURL)
	resolveDevice := func() (string, error) {
		return identity.Resolve(cfg.DevicePath(), cfg.DeviceID)
	}
	bus := events.NewBus()
	engine := syncer.New(store, client, bus, resolveDevice, logger)

	command := args[0]
	commandArgs := args[1:]

	switch command {
	case "init":
		if err := cli.InitCommand(resolveDevice, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "wardrobe":
		if len(commandArgs) == 0 {
			fmt.Println("Error: wardrobe requires a subcommand")
			printUsage()
			os.Exit(1)
		}

		sub := commandArgs[0]
		subArgs := commandArgs[1:]

		switch sub {
		case "add":
			if err := cli.AddClothingCommand(store, subArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "list":
			if err := cli.ListClothingCommand(store, subArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "show":
			if err := cli.ShowClothingCommand(store, subArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "update":
			if err := cli.UpdateClothingCommand(store, subArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "delete":
			if err := cli.DeleteClothingCommand(store, subArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		default:
			fmt.Printf("Unknown wardrobe command: %s\n\n", sub)
			printUsage()
			os.Exit(1)
		}

	case "outfits":
		if len(commandArgs) == 0 {
			fmt.Println("Error: outfits requires a subcommand")
			printUsage()
			os.Exit(1)
		}

		sub := commandArgs[0]
		subArgs := commandArgs[1:]

		switch sub {
		case "add":
			if err := cli.AddOutfitCommand(store, subArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "list":
			if err := cli.ListOutfitsCommand(store, subArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "show":
			if err := cli.ShowOutfitCommand(store, subArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "update":
			if err := cli.UpdateOutfitCommand(store, subArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "delete":
			if err := cli.DeleteOutfitCommand(store, subArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		default:
			fmt.Printf("Unknown outfits command: %s\n\n", sub)
			printUsage()
			os.Exit(1)
		}

	case "sync":
		sub := "now"
		subArgs := commandArgs
		if len(commandArgs) > 0 {
			sub = commandArgs[0]
			subArgs = commandArgs[1:]
		}

		switch sub {
		case "now":
			if err := cli.SyncCommand(engine, subArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "status":
			if err := cli.SyncStatusCommand(store, resolveDevice, subArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		case "init":
			if err := cli.InitCommand(resolveDevice, subArgs); err != nil {
				log.Fatalf("Error: %v", err)
			}
		default:
			fmt.Printf("Unknown sync command: %s\n\n", sub)
			printUsage()
			os.Exit(1)
		}

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func newLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func printUsage() {
	fmt.Printf(`closet v%s - Offline-first wardrobe manager

USAGE:
  closet [global flags] <command> [subcommand] [flags]

GLOBAL FLAGS:
  --version              Show version and exit
  --data-dir <path>      Data directory (default: ~/.local/share/closet)
  --api-url <url>        Remote service base URL

COMMANDS:
  init                   Create the device identity
  wardrobe               Manage clothing items
  outfits                Manage outfits
  sync                   Synchronize with the remote service

WARDROBE COMMANDS:
  closet wardrobe add       Add a clothing item
    --name <name>             Item name (required)
    --category <cat>          TOP, BOTTOM, DRESS, SHOES, ACCESSORIES,
                              OUTERWEAR, UNDERWEAR, SPORTSWEAR, SWIMWEAR, OTHER (required)
    --color <color>           Color
    --brand <brand>           Brand
    --image <url>             Image URL
    --seasons <list>          Comma-separated: SPRING, SUMMER, AUTUMN, WINTER
    --occasions <list>        Comma-separated: CASUAL, FORMAL, SPORT, PARTY, WORK, HOME, TRAVEL

  closet wardrobe list      List items
    --category <cat>          Filter by category

  closet wardrobe show <id>              Show one item
  closet wardrobe update [flags] <id>    Update an item
    Note: flags must come before the item ID
  closet wardrobe delete <id>            Delete an item (synced on next sync)

OUTFIT COMMANDS:
  closet outfits add        Compose an outfit
    --name <name>             Outfit name (required)
    --image <url>             Image URL
    --items <ids>             Comma-separated clothing item IDs

  closet outfits list                    List outfits
  closet outfits show <id>               Show an outfit and its items
  closet outfits update [flags] <id>     Update an outfit
    Note: flags must come before the outfit ID
  closet outfits delete <id>             Delete an outfit

SYNC COMMANDS:
  closet sync               Run a full two-way sync (same as 'sync now')
  closet sync status        Show pending local changes
  closet sync init          Create the device identity without syncing

ENVIRONMENT:
  CLOSET_API_URL         Remote service base URL (default: http://localhost:5000/api)
  CLOSET_DATA_DIR        Data directory
  CLOSET_HTTP_TIMEOUT    HTTP timeout (default: 30s)
  CLOSET_LOG_LEVEL       Log level (default: info)
  CLOSET_DEVICE_ID       Override the persisted device identity

EXAMPLES:
  # Add a shirt
  closet wardrobe add --name "Blue Oxford" --category TOP --color blue --seasons SPRING,AUTUMN

  # Compose an outfit from two items
  closet outfits add --name "Office Monday" --items 3f2a...,b81c...

  # Sync with the cloud
  closet sync

`, version)
}
