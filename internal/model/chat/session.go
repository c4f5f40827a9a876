package chat

// Snapshot is a read-only view of a conversation at one point in time.
type Snapshot struct {
	ID       string    `json:"id"`
	Pending  bool      `json:"pending"`
	Messages []Message `json:"messages"`
}
