package model

// MinerStanding is one leaderboard row: a block author aggregated over a
// time window, joined with the latest known identity for that author.
type MinerStanding struct {
	Author        string
	Discord       *string
	Display       *string
	Blocks        uint64
	TotalReward   uint64
	LastBlockTime int64
}

// NetworkStats summarizes the indexed chain state.
type NetworkStats struct {
	TotalBlocks     uint64
	MaxHeight       uint64
	LatestTimestamp int64
	DistinctAuthors uint64
}
