// ABOUTME: Sync CLI commands
// ABOUTME: Runs the two-way sync, reports pending changes, and initializes device identity
package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/harperreed/closet/storage"
	"github.com/harperreed/closet/syncer"
)

// SyncCommand runs a full two-way sync with the remote service.
func SyncCommand(engine *syncer.Engine, args []string) error {
	fs := flag.NewFlagSet("sync", flag.ExitOnError)
	_ = fs.Parse(args)

	res := engine.SyncUser(context.Background())
	if !res.Synced() {
		return fmt.Errorf("%s", res.Message)
	}

	fmt.Printf("✓ %s\n", res.Message)
	fmt.Printf("  Pushed:     %d\n", len(res.Partition.LocalOnly))
	fmt.Printf("  Pulled:     %d\n", len(res.Partition.CloudOnly))
	fmt.Printf("  Reconciled: %d\n", len(res.Partition.BothSources))
	return nil
}

// SyncStatusCommand reports local changes waiting for the next sync.
func SyncStatusCommand(store *storage.Store, resolveDevice syncer.DeviceResolver, args []string) error {
	fs := flag.NewFlagSet("sync-status", flag.ExitOnError)
	_ = fs.Parse(args)

	deviceID, err := resolveDevice()
	if err != nil {
		return fmt.Errorf("failed to resolve device identity: %w", err)
	}

	var pending, tombstones int
	for _, item := range store.GetAll(true) {
		switch {
		case item.IsDeleted:
			tombstones++
		case !item.IsSynced:
			pending++
		}
	}

	fmt.Printf("Device:           %s\n", deviceID)
	fmt.Printf("Pending changes:  %d\n", pending)
	fmt.Printf("Pending deletes:  %d\n", tombstones)
	if pending == 0 && tombstones == 0 {
		fmt.Println("Everything is up to date")
	}
	return nil
}

// InitCommand creates the device identity if it does not exist yet and
// prints it. Running it twice is harmless.
func InitCommand(resolveDevice syncer.DeviceResolver, args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	_ = fs.Parse(args)

	deviceID, err := resolveDevice()
	if err != nil {
		return fmt.Errorf("failed to initialize device identity: %w", err)
	}

	fmt.Printf("✓ Device ready: %s\n", deviceID)
	return nil
}
