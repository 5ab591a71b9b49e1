package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// counterDayFormat is the day-scope key, the server-local calendar day.
const counterDayFormat = "2006-01-02"

// CounterDTO represents one day's order number counter.
type CounterDTO struct {
	Day   string `gorm:"primaryKey;column:day"`
	Value int64  `gorm:"column:value"`
}

// TableName specifies the database table name for daily order counters.
func (CounterDTO) TableName() string {
	return "order_counters"
}

// GormOrderNumberSequencer implements ports.OrderNumberSequencer on top of a
// per-day counter row. The upsert increments and reads the counter in one
// statement, so concurrent claims in the same day scope serialize on the row
// and can never observe the same number.
type GormOrderNumberSequencer struct {
	db *gorm.DB
}

// NewGormOrderNumberSequencer creates a sequencer bound to the given
// connection or transaction.
func NewGormOrderNumberSequencer(db *gorm.DB) *GormOrderNumberSequencer {
	return &GormOrderNumberSequencer{db: db}
}

// Next claims the next number for the day of the given time, formatted as a
// 3-digit zero-padded decimal starting at "001". Numbers past 999 widen
// naturally.
func (s *GormOrderNumberSequencer) Next(ctx context.Context, day time.Time) (string, error) {
	var value int64
	err := s.db.WithContext(ctx).Raw(`
		INSERT INTO order_counters (day, value)
		VALUES (?, 1)
		ON CONFLICT (day) DO UPDATE SET value = order_counters.value + 1
		RETURNING value
	`, day.Format(counterDayFormat)).Scan(&value).Error
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%03d", value), nil
}

// PurgeBefore removes counter rows for day scopes older than cutoff.
func (s *GormOrderNumberSequencer) PurgeBefore(ctx context.Context, cutoff time.Time) error {
	return s.db.WithContext(ctx).
		Where("day < ?", cutoff.Format(counterDayFormat)).
		Delete(&CounterDTO{}).Error
}
