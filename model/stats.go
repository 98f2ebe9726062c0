package model

// TierStats is a point-in-time view of one tier. Counters are cumulative.
type TierStats struct {
	Tier        Tier
	Entries     int64
	Capacity    int64
	Hits        int64
	Misses      int64
	Sets        int64
	Evictions   int64
	Expirations int64
}
