package journal

import (
	"time"
)

// Run is one execution of a replay scenario.
type Run struct {
	ID        string `gorm:"primaryKey;size:36"`
	Scenario  string `gorm:"index"`
	ChainID   string
	Height    int64
	AppHash   string
	Failures  int
	CreatedAt time.Time
	Entries   []Entry `gorm:"foreignKey:RunID"`
}

// Entry is a single dispatched call and its result.
type Entry struct {
	ID       uint   `gorm:"primaryKey"`
	RunID    string `gorm:"index;size:36"`
	Step     int    `gorm:"index"`
	Height   int64
	Kind     string `gorm:"index"`
	Signer   string
	Request  string
	Response string
	// Error is empty when the call succeeded.
	Error    string
	Expected bool
	Events   []Event `gorm:"foreignKey:EntryID"`
}

// Event is one event emitted by an entry, attributes kept as a JSON object.
type Event struct {
	ID         uint `gorm:"primaryKey"`
	EntryID    uint `gorm:"index"`
	Position   int
	Type       string `gorm:"index"`
	Attributes string
}

// Failed reports whether the call returned an error.
func (e Entry) Failed() bool {
	return e.Error != ""
}
