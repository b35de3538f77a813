// ABOUTME: User-level sync orchestration keyed by device identity
// ABOUTME: Resolves the device user, runs a clothing pass, and notifies listeners
package syncer

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/harperreed/closet/events"
	"github.com/harperreed/closet/models"
	"github.com/harperreed/closet/remote"
)

// User-facing sync status messages.
const (
	MessageSynced     = "Synchronized"
	MessageSyncFailed = "Sync error"
)

// Result is what the UI layer gets back from SyncUser. A failed sync
// carries only the failure message; no structured error reaches the caller.
type Result struct {
	Message   string
	User      *models.User
	Partition Partition
}

// Synced reports whether the sync pass completed.
func (r Result) Synced() bool {
	return r.Message == MessageSynced
}

// deviceUser resolves the device identity and fetches or registers the
// matching user record.
func (e *Engine) deviceUser(ctx context.Context) (*models.User, error) {
	deviceID, err := e.resolveDevice()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve device identity: %w", err)
	}

	user, err := e.gateway.GetUser(ctx, deviceID)
	if errors.Is(err, remote.ErrNotFound) {
		user, err = e.gateway.CreateUser(ctx, deviceID)
		if err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		e.log.Info("registered device user", zap.String("deviceId", deviceID), zap.String("userId", user.ID))
		return user, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// SyncUser is the user-triggered entry point: resolve identity, get or
// create the remote user, synchronize clothing, and publish
// events.ClothesUpdated on success so lists can refresh. Any failure at any
// stage collapses into a single opaque failure message.
func (e *Engine) SyncUser(ctx context.Context) Result {
	user, err := e.deviceUser(ctx)
	if err != nil {
		e.log.Warn("user sync failed", zap.Error(err))
		return Result{Message: MessageSyncFailed}
	}

	part, err := e.SyncClothing(ctx, user)
	if err != nil {
		e.log.Warn("clothing sync failed", zap.Error(err))
		return Result{Message: MessageSyncFailed}
	}

	if e.bus != nil {
		e.bus.Emit(events.ClothesUpdated)
	}
	return Result{Message: MessageSynced, User: user, Partition: part}
}
