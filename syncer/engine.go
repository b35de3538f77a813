// ABOUTME: Two-way last-write-wins synchronization engine for clothing
// ABOUTME: Pushes local-only items, pulls cloud-only items honoring tombstones, reconciles divergence
package syncer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/harperreed/closet/events"
	"github.com/harperreed/closet/models"
)

// ErrSyncInProgress is returned when a sync pass is requested while another
// is still running. Overlapping passes would invalidate each other's
// partition.
var ErrSyncInProgress = errors.New("sync already in progress")

// defaultPushConcurrency bounds the parallel create calls in the push pass.
const defaultPushConcurrency = 4

// LocalStore is the slice of the local item store the engine consumes.
// GetByID must surface tombstones so delete propagation can complete.
type LocalStore interface {
	GetAll(includeDeleted bool) []models.Clothing
	GetByID(clientID string) *models.Clothing
	Insert(item models.Clothing) error
	ApplyRemote(item models.Clothing) (*models.Clothing, error)
	HardDelete(clientID string) bool
}

// Gateway is the remote service surface the engine consumes. GetUser
// returns an error matching remote.ErrNotFound when no user exists for the
// device. CreateClothing must upsert idempotently by clientId.
type Gateway interface {
	ListClothing(ctx context.Context, userID string) ([]models.Clothing, error)
	CreateClothing(ctx context.Context, userID string, item models.Clothing) error
	UpdateClothing(ctx context.Context, userID, clientID string, item models.Clothing) error
	DeleteClothing(ctx context.Context, userID, clientID string) error
	GetUser(ctx context.Context, deviceID string) (*models.User, error)
	CreateUser(ctx context.Context, deviceID string) (*models.User, error)
}

// DeviceResolver yields the stable per-device identifier.
type DeviceResolver func() (string, error)

// Engine reconciles the local store against the remote service.
type Engine struct {
	store           LocalStore
	gateway         Gateway
	bus             *events.Bus
	resolveDevice   DeviceResolver
	log             *zap.Logger
	pushConcurrency int
	inFlight        atomic.Bool
}

// New creates an Engine. A nil logger disables logging.
func New(store LocalStore, gateway Gateway, bus *events.Bus, resolver DeviceResolver, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		store:           store,
		gateway:         gateway,
		bus:             bus,
		resolveDevice:   resolver,
		log:             log,
		pushConcurrency: defaultPushConcurrency,
	}
}

// SyncClothing runs one full reconciliation pass for the user: fetch both
// collections, partition, push local-only, pull cloud-only, reconcile
// divergent pairs, then purge fully-propagated tombstones. The partition is
// returned for observability. Only one pass may run at a time.
//
// Per-item failures in any pass do not abort sibling items; they are
// aggregated into the returned error. There is no rollback across the local
// store and the remote service.
func (e *Engine) SyncClothing(ctx context.Context, user *models.User) (Partition, error) {
	if !e.inFlight.CompareAndSwap(false, true) {
		return Partition{}, ErrSyncInProgress
	}
	defer e.inFlight.Store(false)

	cloud, err := e.gateway.ListClothing(ctx, user.ID)
	if err != nil {
		return Partition{}, fmt.Errorf("failed to list remote clothing: %w", err)
	}
	// Tombstones stay out of the local set so their cloud counterparts
	// surface as cloud-only and the pull pass can finish the delete.
	local := e.store.GetAll(false)

	part := ComputePartition(local, cloud)
	e.log.Info("computed sync partition",
		zap.Int("localOnly", len(part.LocalOnly)),
		zap.Int("cloudOnly", len(part.CloudOnly)),
		zap.Int("bothSources", len(part.BothSources)),
	)

	var errs []error
	if err := e.pushToRemote(ctx, user, part.LocalOnly); err != nil {
		errs = append(errs, err)
	}
	if err := e.pullFromRemote(ctx, user, part.CloudOnly); err != nil {
		errs = append(errs, err)
	}
	if err := e.reconcile(ctx, user, part.BothSources); err != nil {
		errs = append(errs, err)
	}
	e.purgeTombstones(cloud)

	return part, errors.Join(errs...)
}

// pushToRemote creates every local-only item remotely. Pushes run
// concurrently but the pass waits for all of them to settle; one item's
// failure never blocks the others and succeeded pushes stay in place. The
// local store is not modified here: the next pass matches by clientId, so a
// pushed item simply shows up in BothSources.
func (e *Engine) pushToRemote(ctx context.Context, user *models.User, items []models.Clothing) error {
	if len(items) == 0 {
		return nil
	}

	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs []error
	)
	g.SetLimit(e.pushConcurrency)
	for _, item := range items {
		item := item
		g.Go(func() error {
			if err := e.gateway.CreateClothing(ctx, user.ID, item); err != nil {
				e.log.Warn("failed to push clothing",
					zap.String("clientId", item.ClientID), zap.Error(err))
				mu.Lock()
				errs = append(errs, fmt.Errorf("push %s: %w", item.ClientID, err))
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
	return errors.Join(errs...)
}

// pullFromRemote copies cloud-only items into the local store. An item
// whose clientId matches a local tombstone is not resurrected: the pending
// deletion is propagated remotely instead and the tombstone is dropped.
func (e *Engine) pullFromRemote(ctx context.Context, user *models.User, items []models.Clothing) error {
	if len(items) == 0 {
		return nil
	}

	var errs []error
	for _, item := range items {
		if err := e.pullOne(ctx, user, item); err != nil {
			e.log.Warn("failed to pull clothing",
				zap.String("clientId", item.ClientID), zap.Error(err))
			errs = append(errs, fmt.Errorf("pull %s: %w", item.ClientID, err))
		}
	}
	return errors.Join(errs...)
}

func (e *Engine) pullOne(ctx context.Context, user *models.User, cloudItem models.Clothing) error {
	if cloudItem.ClientID == "" {
		return fmt.Errorf("cloud item %q has no clientId", cloudItem.Name)
	}

	if existing := e.store.GetByID(cloudItem.ClientID); existing != nil && existing.IsDeleted {
		// The item was deleted here before the delete reached the remote
		// side. Finish the propagation: remote delete first, so a failure
		// leaves the tombstone in place rather than resurrecting the item
		// on the next pass.
		if err := e.gateway.DeleteClothing(ctx, user.ID, cloudItem.ClientID); err != nil {
			return fmt.Errorf("failed to propagate delete: %w", err)
		}
		e.store.HardDelete(cloudItem.ClientID)
		return nil
	}

	local := cloudItem
	local.RemoteID = "" // server-only field
	local.IsSynced = true
	local.IsDeleted = false
	return e.store.Insert(local)
}

// reconcile resolves items present on both sides by last-write-wins on
// UpdatedAt. Equal instants mean the pair is already consistent and nothing
// is touched, which is what makes a repeat sync a no-op.
func (e *Engine) reconcile(ctx context.Context, user *models.User, pairs []Pair) error {
	if len(pairs) == 0 {
		return nil
	}

	var errs []error
	for _, pair := range pairs {
		var err error
		switch {
		case pair.Local.UpdatedAt.After(pair.Cloud.UpdatedAt):
			err = e.gateway.UpdateClothing(ctx, user.ID, pair.Local.ClientID, pair.Local)
		case pair.Local.UpdatedAt.Before(pair.Cloud.UpdatedAt):
			applied := pair.Cloud
			applied.RemoteID = ""
			_, err = e.store.ApplyRemote(applied)
		}
		if err != nil {
			e.log.Warn("failed to reconcile clothing",
				zap.String("clientId", pair.Local.ClientID), zap.Error(err))
			errs = append(errs, fmt.Errorf("reconcile %s: %w", pair.Local.ClientID, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("cannot sync both sources: %w", errors.Join(errs...))
	}
	return nil
}

// purgeTombstones hard-removes local tombstones whose clientId no longer
// exists remotely: the deletion has nothing left to propagate.
func (e *Engine) purgeTombstones(cloud []models.Clothing) {
	cloudIDs := make(map[string]struct{}, len(cloud))
	for _, c := range cloud {
		cloudIDs[c.ClientID] = struct{}{}
	}
	for _, item := range e.store.GetAll(true) {
		if !item.IsDeleted {
			continue
		}
		if _, stillRemote := cloudIDs[item.ClientID]; !stillRemote {
			e.store.HardDelete(item.ClientID)
			e.log.Debug("purged tombstone", zap.String("clientId", item.ClientID))
		}
	}
}
