package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownTier = errors.New("unknown cache tier")

// Tier selects one of the cache stores. Each tier has its own eviction policy and capacity.
type Tier string

const (
	// Hot is an LRU store for recently used data.
	Hot Tier = "hot"
	// Session is a TTL store for data that must disappear after a fixed lifetime.
	Session Tier = "session"
	// Forever is an LFU store for long-lived, frequently requested data.
	Forever Tier = "forever"
)

// Tiers lists every tier in lock order.
var Tiers = [...]Tier{Hot, Session, Forever}

func (t Tier) String() string { return string(t) }

func (t Tier) Valid() bool {
	switch t {
	case Hot, Session, Forever:
		return true
	default:
		return false
	}
}

// ParseTier is the strict counterpart of the cache's tier resolution: it rejects
// unknown names instead of falling back to Hot.
func ParseTier(s string) (Tier, error) {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTier, s)
	}
	return t, nil
}
