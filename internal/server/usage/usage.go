// Package usage tracks per-key API consumption against plan quotas.
//
// The store keeps a sliding one-minute window of request timestamps plus a
// monthly counter per API key. Counters live in memory, which is suitable
// for a single instance; a multi-node deployment would need shared storage
// behind the same methods.
package usage

import (
	"fmt"
	"sync"
	"time"
)

// Plan describes the quota attached to an API key.
type Plan struct {
	LimitPerMinute int    `json:"limit_per_minute"`
	LimitPerMonth  int    `json:"limit_per_month"`
	DisplayName    string `json:"display_name"`
}

// DefaultPlans returns the built-in plan table.
func DefaultPlans() map[string]Plan {
	return map[string]Plan{
		"free": {LimitPerMinute: 60, LimitPerMonth: 1000, DisplayName: "Free (Beta)"},
		"pro":  {LimitPerMinute: 600, LimitPerMonth: 100000, DisplayName: "Pro"},
	}
}

// Increment reports a key's counters after a recorded request. It is
// embedded in parse responses for client-side dashboards.
type Increment struct {
	UsedMinute int    `json:"used_minute"`
	UsedMonth  int    `json:"used_month"`
	Plan       string `json:"plan"`
}

// Snapshot is the public view of one key's consumption.
type Snapshot struct {
	APIKey          string `json:"api_key"`
	Plan            string `json:"plan"`
	PlanDisplayName string `json:"plan_display_name"`
	LimitPerMinute  int    `json:"limit_per_minute"`
	LimitPerMonth   int    `json:"limit_per_month"`
	UsedMinute      int    `json:"used_minute"`
	UsedMonth       int    `json:"used_month"`
	RemainingMinute int    `json:"remaining_minute"`
	RemainingMonth  int    `json:"remaining_month"`
}

type record struct {
	minuteStamps []time.Time
	monthCount   int
	plan         string
	lastMonth    time.Month
}

// Store is an in-memory usage tracker keyed by API key.
type Store struct {
	mu      sync.Mutex
	records map[string]*record
	plans   map[string]Plan
	now     func() time.Time
}

// NewStore creates a store with the default plan table.
func NewStore() *Store {
	return &Store{
		records: make(map[string]*record),
		plans:   DefaultPlans(),
		now:     time.Now,
	}
}

// Record counts one request against a key's quotas. When either the minute
// or the month limit is already spent the request is not counted and ok is
// false; the returned counters and plan still describe the key so callers
// can build limit headers either way.
func (s *Store) Record(key string) (ok bool, inc Increment, plan Plan) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.ensure(key)
	s.rollMonth(rec)
	s.prune(rec)

	plan = s.planFor(rec.plan)
	inc = Increment{
		UsedMinute: len(rec.minuteStamps),
		UsedMonth:  rec.monthCount,
		Plan:       rec.plan,
	}

	if len(rec.minuteStamps) >= plan.LimitPerMinute || rec.monthCount >= plan.LimitPerMonth {
		return false, inc, plan
	}

	rec.minuteStamps = append(rec.minuteStamps, s.now())
	rec.monthCount++
	inc.UsedMinute = len(rec.minuteStamps)
	inc.UsedMonth = rec.monthCount
	return true, inc, plan
}

// Snapshot reports a key's current consumption. Unknown keys read as a
// fresh record on the free plan.
func (s *Store) Snapshot(key string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.ensure(key)
	s.rollMonth(rec)
	s.prune(rec)
	return s.snapshotLocked(key, rec)
}

// SetPlan assigns a plan to a key, creating the key if needed.
func (s *Store) SetPlan(key, plan string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, known := s.plans[plan]; !known {
		return fmt.Errorf("unknown plan: %s", plan)
	}
	rec := s.ensure(key)
	rec.plan = plan
	return nil
}

// Reset clears a key's counters and reports whether the key was known. The
// key keeps its plan assignment.
func (s *Store) Reset(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, exists := s.records[key]
	if !exists {
		return false
	}
	rec.minuteStamps = nil
	rec.monthCount = 0
	return true
}

// Dump snapshots every tracked key for the admin usage endpoint.
func (s *Store) Dump() map[string]Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]Snapshot, len(s.records))
	for key, rec := range s.records {
		s.rollMonth(rec)
		s.prune(rec)
		out[key] = s.snapshotLocked(key, rec)
	}
	return out
}

// Plans returns a copy of the plan table.
func (s *Store) Plans() map[string]Plan {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]Plan, len(s.plans))
	for name, plan := range s.plans {
		out[name] = plan
	}
	return out
}

// ensure returns the record for a key, creating it on the free plan.
// Callers must hold mu.
func (s *Store) ensure(key string) *record {
	rec, exists := s.records[key]
	if !exists {
		rec = &record{
			plan:      "free",
			lastMonth: s.now().Month(),
		}
		s.records[key] = rec
	}
	return rec
}

// rollMonth zeroes the monthly counter when the calendar month changes.
// Callers must hold mu.
func (s *Store) rollMonth(rec *record) {
	month := s.now().Month()
	if rec.lastMonth != month {
		rec.monthCount = 0
		rec.lastMonth = month
	}
}

// prune drops minute timestamps older than the sliding window.
// Callers must hold mu.
func (s *Store) prune(rec *record) {
	windowStart := s.now().Add(-time.Minute)
	kept := rec.minuteStamps[:0]
	for _, ts := range rec.minuteStamps {
		if !ts.Before(windowStart) {
			kept = append(kept, ts)
		}
	}
	rec.minuteStamps = kept
}

func (s *Store) planFor(name string) Plan {
	if plan, known := s.plans[name]; known {
		return plan
	}
	return s.plans["free"]
}

func (s *Store) snapshotLocked(key string, rec *record) Snapshot {
	plan := s.planFor(rec.plan)
	return Snapshot{
		APIKey:          key,
		Plan:            rec.plan,
		PlanDisplayName: plan.DisplayName,
		LimitPerMinute:  plan.LimitPerMinute,
		LimitPerMonth:   plan.LimitPerMonth,
		UsedMinute:      len(rec.minuteStamps),
		UsedMonth:       rec.monthCount,
		RemainingMinute: max(plan.LimitPerMinute-len(rec.minuteStamps), 0),
		RemainingMonth:  max(plan.LimitPerMonth-rec.monthCount, 0),
	}
}
