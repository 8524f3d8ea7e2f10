package services

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Flame02op/multiplayer-bingo-app/models"
)

// Archive writes finished rounds to the database, when one is configured.
// The live game never reads from it; losing the archive loses history only.
type Archive struct {
	db *gorm.DB
}

func NewArchive(db *gorm.DB) *Archive {
	return &Archive{db: db}
}

func (a *Archive) Enabled() bool {
	return a != nil && a.db != nil
}

// SaveRound records one finished run of a session.
func (a *Archive) SaveRound(s *models.Session, startedAt, endedAt time.Time) error {
	if !a.Enabled() {
		return nil
	}

	numbers, err := json.Marshal(s.DrawnNumbers)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(s.Winners))
	for _, w := range s.Winners {
		names = append(names, w.Name)
	}
	winners, err := json.Marshal(names)
	if err != nil {
		return err
	}

	round := models.Round{
		SessionCode:  s.Code,
		NumbersJSON:  datatypes.JSON(numbers),
		WinnersJSON:  datatypes.JSON(winners),
		NumbersDrawn: len(s.DrawnNumbers),
		PlayerCount:  len(s.Players),
		StartedAt:    startedAt,
		EndedAt:      endedAt,
	}
	return a.db.Create(&round).Error
}

// RecentRounds lists the latest archived rounds, newest first.
func (a *Archive) RecentRounds(limit int) ([]models.Round, error) {
	if !a.Enabled() {
		return []models.Round{}, nil
	}
	var rounds []models.Round
	err := a.db.Order("ended_at DESC").Limit(limit).Find(&rounds).Error
	return rounds, err
}
