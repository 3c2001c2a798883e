package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/seguro-calcio/team-manager/models"
)

var ErrMatchNotFound = errors.New("match not found")

type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	GetByID(ctx context.Context, id int) (*models.Match, error)
	List(ctx context.Context) ([]models.Match, error)
	Update(ctx context.Context, match *models.Match) error
	UpdateEvents(ctx context.Context, id int, events models.EventList) error
	UpdateMinutes(ctx context.Context, id int, minutes models.MinutesMap) error
	Delete(ctx context.Context, id int) error
}

type gormMatchRepository struct {
	db *gorm.DB
}

func NewGormMatchRepository(db *gorm.DB) MatchRepository {
	return &gormMatchRepository{db: db}
}

func (r *gormMatchRepository) Create(ctx context.Context, match *models.Match) error {
	if match.Events == nil {
		match.Events = models.EventList{}
	}
	return r.db.WithContext(ctx).Create(match).Error
}

func (r *gormMatchRepository) GetByID(ctx context.Context, id int) (*models.Match, error) {
	var match models.Match
	if err := r.db.WithContext(ctx).First(&match, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *gormMatchRepository) List(ctx context.Context) ([]models.Match, error) {
	var matches []models.Match
	if err := r.db.WithContext(ctx).Order("round asc, date asc").Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *gormMatchRepository) Update(ctx context.Context, match *models.Match) error {
	result := r.db.WithContext(ctx).Model(&models.Match{ID: match.ID}).Updates(map[string]interface{}{
		"round":   match.Round,
		"date":    match.Date,
		"time":    match.Time,
		"home":    match.Home,
		"away":    match.Away,
		"address": match.Address,
		"city":    match.City,
		"result":  match.Result,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMatchNotFound
	}
	return nil
}

// UpdateEvents replaces the whole ledger column. The ledger is small (one
// match's events) and order matters, so it is always written atomically as a
// unit.
func (r *gormMatchRepository) UpdateEvents(ctx context.Context, id int, events models.EventList) error {
	if events == nil {
		events = models.EventList{}
	}
	result := r.db.WithContext(ctx).Model(&models.Match{ID: id}).Update("events", events)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMatchNotFound
	}
	return nil
}

func (r *gormMatchRepository) UpdateMinutes(ctx context.Context, id int, minutes models.MinutesMap) error {
	result := r.db.WithContext(ctx).Model(&models.Match{ID: id}).Update("minutes", minutes)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMatchNotFound
	}
	return nil
}

func (r *gormMatchRepository) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&models.Match{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMatchNotFound
	}
	return nil
}
