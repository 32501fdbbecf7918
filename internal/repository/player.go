package repository

import (
	"context"
	"strings"

	"baseball-stats-backend/internal/database/models"

	"gorm.io/gorm"
)

// PlayerRepository handles database operations for players
type PlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// GetByID retrieves a player by ID
func (r *PlayerRepository) GetByID(ctx context.Context, id string) (*models.Player, error) {
	var player models.Player
	err := r.db.WithContext(ctx).First(&player, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// ListBatters retrieves every player who appears as a batter in an event
func (r *PlayerRepository) ListBatters(ctx context.Context) ([]models.Player, error) {
	return r.listByEventColumn(ctx, "batter")
}

// ListPitchers retrieves every player who appears as a pitcher in an event
func (r *PlayerRepository) ListPitchers(ctx context.Context) ([]models.Player, error) {
	return r.listByEventColumn(ctx, "pitcher")
}

func (r *PlayerRepository) listByEventColumn(ctx context.Context, column string) ([]models.Player, error) {
	var players []models.Player
	db := r.db.WithContext(ctx)
	err := db.
		Where("id IN (?)", db.Model(&models.Event{}).Distinct(column)).
		Order("last_name, first_name, id").
		Find(&players).Error
	return players, err
}

// Search retrieves the players matching every non-zero filter field. The
// total is counted before Limit/Offset are applied.
func (r *PlayerRepository) Search(ctx context.Context, filter PlayerSearchFilter) ([]models.Player, int64, error) {
	var players []models.Player
	var total int64

	if err := applyPlayerFilters(r.db.WithContext(ctx).Model(&models.Player{}), filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := applyPlayerFilters(r.db.WithContext(ctx), filter).Order("last_name, first_name, id")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}
	if err := query.Find(&players).Error; err != nil {
		return nil, 0, err
	}

	return players, total, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// applyPlayerFilters adds one bound condition per set filter field
func applyPlayerFilters(query *gorm.DB, f PlayerSearchFilter) *gorm.DB {
	if name := strings.TrimSpace(f.Name); name != "" {
		query = query.Where("(first_name || ' ' || last_name) ILIKE ?", "%"+likeEscaper.Replace(name)+"%")
	}
	if f.BirthCountry != "" {
		query = query.Where("birth_country = ?", f.BirthCountry)
	}
	if f.BornBefore != nil {
		query = query.Where("birth_date < ?", *f.BornBefore)
	}
	if f.BornAfter != nil {
		query = query.Where("birth_date > ?", *f.BornAfter)
	}
	if f.DebutBefore != nil {
		query = query.Where("debut_date < ?", *f.DebutBefore)
	}
	if f.DebutAfter != nil {
		query = query.Where("debut_date > ?", *f.DebutAfter)
	}
	if f.MinHeight != nil {
		query = query.Where("height >= ?", *f.MinHeight)
	}
	if f.MaxHeight != nil {
		query = query.Where("height <= ?", *f.MaxHeight)
	}
	if f.MinWeight != nil {
		query = query.Where("weight >= ?", *f.MinWeight)
	}
	if f.MaxWeight != nil {
		query = query.Where("weight <= ?", *f.MaxWeight)
	}
	if f.Bats != "" {
		query = query.Where("bats = ?", f.Bats)
	}
	if f.Throws != "" {
		query = query.Where("throws = ?", f.Throws)
	}
	return query
}
