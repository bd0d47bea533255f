package newsportal

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"
)

const (
	HideAllKey      = "innonews_hide_all_until"
	ClosedPopupsKey = "innonews_closed_popups_data"

	PopupDismissWindow = 24 * time.Hour
	hideAllDays        = 7
)

// KeyValue is the persistent string store popup suppression lives in.
// Get reports false for a missing key.
type KeyValue interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// PopupState is the suppression data of one visitor.
type PopupState struct {
	HideAllUntil time.Time
	Dismissed    map[string]time.Time
}

func (s PopupState) globallyHidden(now time.Time) bool {
	return !s.HideAllUntil.IsZero() && now.Before(s.HideAllUntil)
}

func (s PopupState) dismissed(id string, now time.Time) bool {
	at, ok := s.Dismissed[id]
	return ok && now.Before(at.Add(PopupDismissWindow))
}

// EligiblePopups returns visible popup ads that are neither globally hidden
// nor dismissed in the last 24 hours, in collection order.
func EligiblePopups(ads []AdConfig, state PopupState, now time.Time) []AdConfig {
	out := make([]AdConfig, 0)
	if state.globallyHidden(now) {
		return out
	}

	for _, ad := range ads {
		if ad.Type != AdPopup || !ad.IsVisible {
			continue
		}
		if state.dismissed(ad.ID, now) {
			continue
		}
		out = append(out, ad)
	}
	return out
}

// DismissResult says what the popup layer shows after a dismissal.
type DismissResult struct {
	Next   *AdConfig
	Closed bool
}

// Popups evaluates and records popup suppression for visitors. Keys are
// prefixed with the visitor id so one KeyValue can serve many visitors.
type Popups struct {
	kv  KeyValue
	now func() time.Time
}

func NewPopups(kv KeyValue, now func() time.Time) *Popups {
	if now == nil {
		now = time.Now
	}
	return &Popups{kv: kv, now: now}
}

func visitorKey(visitor, key string) string {
	if visitor == "" {
		return key
	}
	return visitor + ":" + key
}

// State loads a visitor's suppression data. A corrupt dismissal map is reported
// as an error, not repaired.
func (p *Popups) State(ctx context.Context, visitor string) (PopupState, error) {
	state := PopupState{Dismissed: map[string]time.Time{}}

	raw, ok, err := p.kv.Get(ctx, visitorKey(visitor, HideAllKey))
	if err != nil {
		return state, fmt.Errorf("get %s: %w", HideAllKey, err)
	}
	if ok && raw != "" {
		ms, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return state, fmt.Errorf("parse %s: %w", HideAllKey, err)
		}
		state.HideAllUntil = time.UnixMilli(ms)
	}

	raw, ok, err = p.kv.Get(ctx, visitorKey(visitor, ClosedPopupsKey))
	if err != nil {
		return state, fmt.Errorf("get %s: %w", ClosedPopupsKey, err)
	}
	if ok && raw != "" {
		var closed map[string]int64
		if err := json.Unmarshal([]byte(raw), &closed); err != nil {
			return state, fmt.Errorf("decode %s: %w", ClosedPopupsKey, err)
		}
		for id, ms := range closed {
			state.Dismissed[id] = time.UnixMilli(ms)
		}
	}

	return state, nil
}

func (p *Popups) Eligible(ctx context.Context, visitor string, ads []AdConfig) ([]AdConfig, error) {
	state, err := p.State(ctx, visitor)
	if err != nil {
		return nil, err
	}
	return EligiblePopups(ads, state, p.now()), nil
}

// Dismiss closes popup adID for visitor. With hideWeek every popup is hidden
// for seven days and the layer closes at once. Otherwise only adID is hidden
// for a day and the next eligible popup, if any, is returned.
func (p *Popups) Dismiss(ctx context.Context, visitor, adID string, hideWeek bool, ads []AdConfig) (DismissResult, error) {
	now := p.now()

	if hideWeek {
		until := now.AddDate(0, 0, hideAllDays)
		value := strconv.FormatInt(until.UnixMilli(), 10)
		if err := p.kv.Set(ctx, visitorKey(visitor, HideAllKey), value); err != nil {
			return DismissResult{}, fmt.Errorf("set %s: %w", HideAllKey, err)
		}
		return DismissResult{Closed: true}, nil
	}

	state, err := p.State(ctx, visitor)
	if err != nil {
		return DismissResult{}, err
	}

	state.Dismissed[adID] = now
	closed := make(map[string]int64, len(state.Dismissed))
	for id, at := range state.Dismissed {
		closed[id] = at.UnixMilli()
	}

	data, err := json.Marshal(closed)
	if err != nil {
		return DismissResult{}, fmt.Errorf("encode %s: %w", ClosedPopupsKey, err)
	}
	if err := p.kv.Set(ctx, visitorKey(visitor, ClosedPopupsKey), string(data)); err != nil {
		return DismissResult{}, fmt.Errorf("set %s: %w", ClosedPopupsKey, err)
	}

	remaining := EligiblePopups(ads, state, now)
	if len(remaining) == 0 {
		return DismissResult{Closed: true}, nil
	}
	return DismissResult{Next: &remaining[0]}, nil
}

// MemoryKV is a KeyValue kept in process memory.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: map[string]string{}}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
