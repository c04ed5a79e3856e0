package entities

import "time"

// Event is a scheduled hackathon activity. Events are written by the
// registration platform; the bot only reads them.
type Event struct {
	ID          int64
	Name        string
	Description string
	Location    string
	Type        string
	Start       time.Time
	End         time.Time
}
