package repository

import (
	"context"

	"gorm.io/gorm"
)

// EventRepository computes plate-appearance reports
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// HeadToHead counts each outcome between a batter and a pitcher
func (r *EventRepository) HeadToHead(ctx context.Context, batterID, pitcherID string) ([]OutcomeCount, error) {
	var rows []OutcomeCount
	q := HeadToHeadQuery(batterID, pitcherID)
	err := r.db.WithContext(ctx).Raw(q.SQL, q.Args).Scan(&rows).Error
	return rows, err
}

// PlayerSplit totals a player's plate appearances for the given role. A
// player with no qualifying events gets all-zero totals.
func (r *EventRepository) PlayerSplit(ctx context.Context, role Role, filter SplitFilter) (*OutcomeTotals, error) {
	var totals OutcomeTotals
	q := PlayerSplitQuery(role, filter)
	if err := r.db.WithContext(ctx).Raw(q.SQL, q.Args).Scan(&totals).Error; err != nil {
		return nil, err
	}
	return &totals, nil
}

// Leaders totals every player of the given role against the opposing team
func (r *EventRepository) Leaders(ctx context.Context, role Role, filter LeaderFilter) ([]LeaderRow, error) {
	var rows []LeaderRow
	q := LeadersQuery(role, filter)
	err := r.db.WithContext(ctx).Raw(q.SQL, q.Args).Scan(&rows).Error
	return rows, err
}
