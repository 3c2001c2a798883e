package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/seguro-calcio/team-manager/models"
)

var ErrPlayerNotFound = errors.New("player not found")

// PlayerStatsUpdate carries the aggregated match tallies for one roster row.
type PlayerStatsUpdate struct {
	PlayerID    int
	Goals       int
	YellowCards int
	RedCards    int
}

type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, id int) (*models.Player, error)
	List(ctx context.Context) ([]models.Player, error)
	Update(ctx context.Context, player *models.Player) error
	Delete(ctx context.Context, id int) error
	UpdateStatsBatch(ctx context.Context, updates []PlayerStatsUpdate) error
}

type gormPlayerRepository struct {
	db *gorm.DB
}

func NewGormPlayerRepository(db *gorm.DB) PlayerRepository {
	return &gormPlayerRepository{db: db}
}

func (r *gormPlayerRepository) Create(ctx context.Context, player *models.Player) error {
	return r.db.WithContext(ctx).Create(player).Error
}

func (r *gormPlayerRepository) GetByID(ctx context.Context, id int) (*models.Player, error) {
	var player models.Player
	if err := r.db.WithContext(ctx).First(&player, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return &player, nil
}

func (r *gormPlayerRepository) List(ctx context.Context) ([]models.Player, error) {
	var players []models.Player
	if err := r.db.WithContext(ctx).Order("number asc").Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

func (r *gormPlayerRepository) Update(ctx context.Context, player *models.Player) error {
	result := r.db.WithContext(ctx).Model(&models.Player{ID: player.ID}).Updates(map[string]interface{}{
		"number":     player.Number,
		"first_name": player.FirstName,
		"last_name":  player.LastName,
		"position":   player.Position,
		"birth_year": player.BirthYear,
		"presences":  player.Presences,
		"photo_key":  player.PhotoKey,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

func (r *gormPlayerRepository) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&models.Player{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

// UpdateStatsBatch writes the aggregated match totals back onto the roster
// rows in one transaction, so a failure partway leaves every row untouched.
func (r *gormPlayerRepository) UpdateStatsBatch(ctx context.Context, updates []PlayerStatsUpdate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			result := tx.Model(&models.Player{ID: u.PlayerID}).Updates(map[string]interface{}{
				"goals":        u.Goals,
				"yellow_cards": u.YellowCards,
				"red_cards":    u.RedCards,
			})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrPlayerNotFound
			}
		}
		return nil
	})
}
