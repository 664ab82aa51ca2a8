package ws

import (
	"encoding/json"
	"time"

	"career-match/internal/domain/job"
)

const EventJobPosted = "job_posted"

type JobPostedEvent struct {
	Type      string `json:"type"`
	JobID     string `json:"job_id"`
	Title     string `json:"title"`
	Company   string `json:"company"`
	Location  string `json:"location"`
	Timestamp string `json:"timestamp"`
}

// Notifier turns domain events into hub broadcasts.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) JobPosted(p job.Posting) {
	if n == nil || n.hub == nil {
		return
	}
	b, err := json.Marshal(JobPostedEvent{
		Type:      EventJobPosted,
		JobID:     p.ID,
		Title:     p.Title,
		Company:   p.Company,
		Location:  p.Location,
		Timestamp: p.CreatedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
