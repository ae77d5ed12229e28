package domain

// Document is an open-schema record. Product and order bodies are persisted
// verbatim, whatever structured fields the caller supplies.
type Document map[string]any

// InsertResult identifies a newly created document.
type InsertResult struct {
	InsertedID string `json:"inserted_id"`
}

// UpdateResult reports how many documents an update matched and modified.
// A zero MatchedCount means the target did not exist; that is not an error
// here, callers inspect the counts.
type UpdateResult struct {
	MatchedCount  int64 `json:"matched_count"`
	ModifiedCount int64 `json:"modified_count"`
}
