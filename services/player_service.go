package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/seguro-calcio/team-manager/cache"
	"github.com/seguro-calcio/team-manager/models"
	"github.com/seguro-calcio/team-manager/repositories"
	"github.com/seguro-calcio/team-manager/storage"
)

type PlayerService interface {
	Create(ctx context.Context, input PlayerInput) (*models.Player, error)
	GetByID(ctx context.Context, id int) (*models.Player, error)
	List(ctx context.Context) ([]models.Player, error)
	Search(ctx context.Context, query string) ([]models.Player, error)
	Update(ctx context.Context, id int, input PlayerInput) (*models.Player, error)
	Delete(ctx context.Context, id int) error
	UploadPhoto(ctx context.Context, id int, filename, contentType string, file io.Reader) (*models.Player, error)
}

type PlayerInput struct {
	Number    int    `json:"number"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Position  string `json:"position"`
	BirthYear int    `json:"birthYear"`
	Presences int    `json:"presences"`
}

type playerService struct {
	playerRepo repositories.PlayerRepository
	uploader   storage.FileUploader
	kv         cache.KVStore
	logger     *slog.Logger
}

// NewPlayerService wires the roster service. uploader may be nil, in which
// case photo uploads are rejected with ErrPhotoStorageUnavailable.
func NewPlayerService(playerRepo repositories.PlayerRepository, uploader storage.FileUploader, kv cache.KVStore, logger *slog.Logger) PlayerService {
	return &playerService{playerRepo: playerRepo, uploader: uploader, kv: kv, logger: logger}
}

func (s *playerService) Create(ctx context.Context, input PlayerInput) (*models.Player, error) {
	if err := validatePlayerInput(input); err != nil {
		return nil, err
	}
	player := &models.Player{
		Number:    input.Number,
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Position:  input.Position,
		BirthYear: input.BirthYear,
		Presences: input.Presences,
	}
	if err := s.playerRepo.Create(ctx, player); err != nil {
		return nil, fmt.Errorf("creating player: %w", err)
	}
	s.invalidateStats()
	s.decorate(player)
	return player, nil
}

func (s *playerService) GetByID(ctx context.Context, id int) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.decorate(player)
	return player, nil
}

func (s *playerService) List(ctx context.Context) ([]models.Player, error) {
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range players {
		s.decorate(&players[i])
	}
	return players, nil
}

// Search fuzzy-matches the query against player names, so partial and
// slightly misspelled names still find the right kid.
func (s *playerService) Search(ctx context.Context, query string) ([]models.Player, error) {
	players, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return players, nil
	}

	matched := make([]models.Player, 0)
	for _, p := range players {
		if fuzzy.MatchNormalizedFold(query, p.FullName()) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (s *playerService) Update(ctx context.Context, id int, input PlayerInput) (*models.Player, error) {
	if err := validatePlayerInput(input); err != nil {
		return nil, err
	}
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	player.Number = input.Number
	player.FirstName = strings.TrimSpace(input.FirstName)
	player.LastName = strings.TrimSpace(input.LastName)
	player.Position = input.Position
	player.BirthYear = input.BirthYear
	player.Presences = input.Presences
	if err := s.playerRepo.Update(ctx, player); err != nil {
		return nil, fmt.Errorf("updating player %d: %w", id, err)
	}
	s.decorate(player)
	return player, nil
}

func (s *playerService) Delete(ctx context.Context, id int) error {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.playerRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateStats()
	if s.uploader != nil && player.PhotoKey != nil {
		if err := s.uploader.Delete(ctx, *player.PhotoKey); err != nil {
			s.logger.Warn("failed to delete player photo",
				slog.Int("player_id", id), slog.Any("error", err))
		}
	}
	return nil
}

func (s *playerService) UploadPhoto(ctx context.Context, id int, filename, contentType string, file io.Reader) (*models.Player, error) {
	if s.uploader == nil {
		return nil, ErrPhotoStorageUnavailable
	}
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ext := path.Ext(filename)
	if ext == "" {
		if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
			ext = exts[0]
		}
	}
	key := fmt.Sprintf("players/%d/%s%s", id, uuid.NewString(), ext)

	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("uploading photo for player %d: %w", id, err)
	}

	oldKey := player.PhotoKey
	player.PhotoKey = &result.Key
	if err := s.playerRepo.Update(ctx, player); err != nil {
		return nil, fmt.Errorf("storing photo key for player %d: %w", id, err)
	}
	if oldKey != nil && *oldKey != result.Key {
		if err := s.uploader.Delete(ctx, *oldKey); err != nil {
			s.logger.Warn("failed to delete replaced photo",
				slog.Int("player_id", id), slog.Any("error", err))
		}
	}
	s.decorate(player)
	return player, nil
}

// invalidateStats drops the cached aggregation whenever roster membership
// changes, so new players show up with zero entries and deleted players
// disappear without waiting for a ledger mutation.
func (s *playerService) invalidateStats() {
	if s.kv == nil {
		return
	}
	if err := s.kv.Delete(PlayerStatsCacheKey); err != nil {
		s.logger.Warn("failed to invalidate stats cache", slog.Any("error", err))
	}
}

func (s *playerService) decorate(player *models.Player) {
	if s.uploader != nil && player.PhotoKey != nil {
		player.PhotoURL = s.uploader.GetPublicURL(*player.PhotoKey)
	}
}

func validatePlayerInput(input PlayerInput) error {
	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" {
		return fmt.Errorf("%w: first and last name are required", ErrValidation)
	}
	if input.Number <= 0 {
		return fmt.Errorf("%w: shirt number must be positive", ErrValidation)
	}
	return nil
}
