// Package model defines domain models for chain ingestion.
package model

// BlockRecord is one finalized block's persisted metadata, keyed by height.
// Height is globally unique and immutable once finalized; records are never
// updated after insert.
type BlockRecord struct {
	Height          uint64
	Timestamp       int64
	Author          string
	AuthorPublicKey string
	BlockHash       string
	// Difficulty is nil when the chain lookup failed; enrichment only.
	Difficulty   *uint64
	RewardAmount uint64
}

// BatchResult reports the outcome of a transactional batch insert.
type BatchResult struct {
	Inserted int
	Skipped  int
}
