// ABOUTME: Stable per-device identity for anonymous sync
// ABOUTME: Generates a ULID once and persists it alongside the local database
package identity

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
)

// deviceRecord is the on-disk shape of the device identity file.
type deviceRecord struct {
	DeviceID  string    `json:"device_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Resolve returns the device's stable identifier. An explicit override (from
// configuration) wins; otherwise the identifier is read from path, generated
// and persisted on first use. Failing to persist is fatal: without a stable
// ID every sync would register a fresh user.
func Resolve(path, override string) (string, error) {
	if override != "" {
		return override, nil
	}

	data, err := os.ReadFile(path)
	if err == nil {
		var rec deviceRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return "", fmt.Errorf("failed to decode device identity: %w", err)
		}
		if rec.DeviceID == "" {
			return "", fmt.Errorf("device identity file %s has no device_id", path)
		}
		return rec.DeviceID, nil
	}
	if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to read device identity: %w", err)
	}

	rec := deviceRecord{DeviceID: generateDeviceID(), CreatedAt: time.Now()}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return "", fmt.Errorf("failed to create identity directory: %w", err)
	}
	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode device identity: %w", err)
	}
	if err := os.WriteFile(path, out, 0600); err != nil {
		return "", fmt.Errorf("failed to persist device identity: %w", err)
	}
	return rec.DeviceID, nil
}

// generateDeviceID generates a new ULID for device identification.
func generateDeviceID() string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
