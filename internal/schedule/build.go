package schedule

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"stagedoor/internal/events"
	"stagedoor/internal/metrics"
	"stagedoor/internal/model"
)

// DataSource is the read contract against the remote data store.
type DataSource interface {
	EventsByMonth(ctx context.Context, year int, month time.Month) ([]model.Event, error)
	Stores(ctx context.Context) ([]model.Store, error)
	BusinessHoursSettings(ctx context.Context, storeIDs []string) ([]model.BusinessHoursSetting, error)
}

// Builder rebuilds snapshots from bulk fetches and swaps them in
// atomically. Builds are tagged with a monotonically increasing id; a slow
// stale build can never overwrite a newer one (last requested wins).
type Builder struct {
	source DataSource
	bus    *events.Bus
	logger *zerolog.Logger

	policy  atomic.Pointer[Policy]
	seq     atomic.Uint64
	current atomic.Pointer[Snapshot]
}

// NewBuilder wires a builder. bus may be nil.
func NewBuilder(source DataSource, bus *events.Bus, logger *zerolog.Logger) *Builder {
	b := &Builder{source: source, bus: bus, logger: logger}
	b.policy.Store(DefaultPolicy())
	return b
}

// SetPolicy installs a new slot policy. Snapshots built before the change
// keep the policy they were built with; the next rebuild picks it up.
func (b *Builder) SetPolicy(p *Policy) {
	if p == nil {
		return
	}
	b.policy.Store(p)
	if b.bus != nil {
		b.bus.Publish(events.Event{Type: events.TopicPolicyReloaded})
	}
}

// Policy returns the slot policy the next rebuild will use.
func (b *Builder) Policy() *Policy {
	return b.policy.Load()
}

// Current returns the latest snapshot, or nil before the first rebuild
// completes. Callers treat nil as unavailable.
func (b *Builder) Current() *Snapshot {
	return b.current.Load()
}

// Rebuild fetches the window (months calendar months starting at from) and
// assembles a fresh snapshot. Fetch failures degrade: a failed source is
// logged and left empty, and a failed event fetch marks the snapshot so
// the gate fails closed. Rebuild never patches the previous snapshot.
func (b *Builder) Rebuild(ctx context.Context, from time.Time, months int) (*Snapshot, error) {
	id := b.seq.Add(1)
	policy := b.policy.Load()
	if months <= 0 {
		months = 1
	}

	stores, err := b.source.Stores(ctx)
	if err != nil {
		metrics.IncFetchError("stores")
		b.logger.Error().Err(err).Msg("stores fetch failed; degrading to empty set")
		stores = nil
	}

	storeIDs := make([]string, 0, len(stores))
	for _, s := range stores {
		if s.Bookable() {
			storeIDs = append(storeIDs, s.ID)
		}
	}

	settings := make(map[string]*model.BusinessHoursSetting, len(storeIDs))
	if len(storeIDs) > 0 {
		list, err := b.source.BusinessHoursSettings(ctx, storeIDs)
		if err != nil {
			// Missing hours are a defined fallback, never an error state.
			metrics.IncFetchError("business_hours")
			b.logger.Warn().Err(err).Msg("business hours fetch failed; default policy applies")
		}
		for i := range list {
			setting := list[i]
			settings[setting.StoreID] = &setting
		}
	}

	// Per-month event fetches fan out and join before indexing.
	var (
		mu        sync.Mutex
		wg        sync.WaitGroup
		allEvents []model.Event
		failed    bool
	)
	first := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, from.Location())
	for i := 0; i < months; i++ {
		month := first.AddDate(0, i, 0)
		wg.Add(1)
		go func(year int, m time.Month) {
			defer wg.Done()
			evs, err := b.source.EventsByMonth(ctx, year, m)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				metrics.IncFetchError("events")
				b.logger.Error().Err(err).Int("year", year).Int("month", int(m)).Msg("event fetch failed")
				failed = true
				return
			}
			allEvents = append(allEvents, evs...)
		}(month.Year(), month.Month())
	}
	wg.Wait()

	snap := NewSnapshot(id, policy, stores, settings, allEvents, !failed)
	if !b.install(snap) {
		b.logger.Warn().Uint64("build_id", id).Msg("stale snapshot discarded")
		return snap, nil
	}

	outcome := "ok"
	if failed {
		outcome = "degraded"
	}
	metrics.IncSnapshotRebuild(outcome)
	b.logger.Info().
		Uint64("build_id", id).
		Int("stores", len(snap.Stores())).
		Int("events", snap.Events().Len()).
		Bool("events_loaded", snap.EventsLoaded).
		Msg("snapshot rebuilt")

	if b.bus != nil {
		b.bus.Publish(events.Event{Type: events.TopicSnapshotRebuilt, BuildID: id, Degraded: failed})
	}
	return snap, nil
}

// install swaps the snapshot in unless a newer build already landed.
func (b *Builder) install(snap *Snapshot) bool {
	for {
		cur := b.current.Load()
		if cur != nil && cur.BuildID >= snap.BuildID {
			return false
		}
		if b.current.CompareAndSwap(cur, snap) {
			return true
		}
	}
}
