package history

import "time"

// Record is the metadata kept for one analysis request. The analysis
// payload itself is never stored; only enough to show a request log.
type Record struct {
	ID         string    `json:"id"`
	ClientID   string    `json:"-"`
	TargetRole string    `json:"targetRole"`
	FileName   string    `json:"fileName"`
	MimeType   string    `json:"mimeType"`
	Source     string    `json:"source"`
	Status     string    `json:"status"`
	DurationMs int64     `json:"durationMs"`
	CreatedAt  time.Time `json:"createdAt"`
}
