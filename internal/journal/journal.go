// Package journal persists replayed fixedswap calls and their events in SQLite.
package journal

import (
	"context"
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Journal is a gorm-backed store of replay runs.
type Journal struct {
	db *gorm.DB
}

// Open connects to the SQLite database at dsn and migrates the schema.
func Open(dsn string) (*Journal, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to journal: %w", err)
	}

	if err := db.AutoMigrate(&Run{}, &Entry{}, &Event{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate journal: %w", err)
	}

	return &Journal{db: db}, nil
}

// Close releases the underlying connection pool.
func (j *Journal) Close() error {
	sqlDB, err := j.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// BeginRun creates a run row with a fresh id.
func (j *Journal) BeginRun(ctx context.Context, scenario, chainID string) (*Run, error) {
	run := &Run{
		ID:       uuid.NewString(),
		Scenario: scenario,
		ChainID:  chainID,
	}
	if err := j.db.WithContext(ctx).Create(run).Error; err != nil {
		return nil, fmt.Errorf("failed to begin run for %s: %w", scenario, err)
	}
	return run, nil
}

// Record stores an entry and its events under the run.
func (j *Journal) Record(ctx context.Context, runID string, entry *Entry) error {
	entry.RunID = runID
	if err := j.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to record step %d: %w", entry.Step, err)
	}
	return nil
}

// FinishRun stores the final height, app hash and failure count of the run.
func (j *Journal) FinishRun(ctx context.Context, run *Run) error {
	err := j.db.WithContext(ctx).Model(&Run{}).Where("id = ?", run.ID).Updates(map[string]interface{}{
		"height":   run.Height,
		"app_hash": run.AppHash,
		"failures": run.Failures,
	}).Error
	if err != nil {
		return fmt.Errorf("failed to finish run %s: %w", run.ID, err)
	}
	return nil
}

// GetRun loads a run with its entries and events in execution order.
func (j *Journal) GetRun(ctx context.Context, id string) (*Run, error) {
	var run Run
	err := j.db.WithContext(ctx).
		Preload("Entries", func(db *gorm.DB) *gorm.DB { return db.Order("step") }).
		Preload("Entries.Events", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&run, "id = ?", id).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load run %s: %w", id, err)
	}
	return &run, nil
}

// Runs lists the runs of a scenario, oldest first, without their entries.
func (j *Journal) Runs(ctx context.Context, scenario string) ([]Run, error) {
	var runs []Run
	if err := j.db.WithContext(ctx).Where("scenario = ?", scenario).Order("created_at").Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to list runs of %s: %w", scenario, err)
	}
	return runs, nil
}

// CountEvents returns how many events of the given type were journaled in a run.
func (j *Journal) CountEvents(ctx context.Context, runID, eventType string) (int64, error) {
	var n int64
	err := j.db.WithContext(ctx).Model(&Event{}).
		Joins("JOIN entries ON entries.id = events.entry_id").
		Where("entries.run_id = ? AND events.type = ?", runID, eventType).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count %s events: %w", eventType, err)
	}
	return n, nil
}

// FromSDKEvents flattens emitted events into journal rows.
func FromSDKEvents(events sdk.Events) ([]Event, error) {
	out := make([]Event, 0, len(events))
	for i, ev := range events {
		attrs := make(map[string]string, len(ev.Attributes))
		for _, attr := range ev.Attributes {
			attrs[attr.Key] = attr.Value
		}
		bz, err := json.Marshal(attrs)
		if err != nil {
			return nil, err
		}
		out = append(out, Event{Position: i, Type: ev.Type, Attributes: string(bz)})
	}
	return out, nil
}

// AttributeMap decodes the attributes of a journaled event.
func (e Event) AttributeMap() (map[string]string, error) {
	attrs := map[string]string{}
	if e.Attributes == "" {
		return attrs, nil
	}
	if err := json.Unmarshal([]byte(e.Attributes), &attrs); err != nil {
		return nil, err
	}
	return attrs, nil
}
