package repo

import (
	"time"

	"ieltsim/backend/app/models"

	"gorm.io/gorm"
)

type ResultRepository struct{ db *gorm.DB }

func NewResultRepository(db *gorm.DB) *ResultRepository { return &ResultRepository{db: db} }

func (r *ResultRepository) Create(res *models.Result) error { return r.db.Create(res).Error }

func (r *ResultRepository) ListByUser(userID uint) ([]models.Result, error) {
	results := []models.Result{}
	err := r.db.Where("user_id = ?", userID).Order("test_date DESC").Find(&results).Error
	return results, err
}

func (r *ResultRepository) Count() (int64, error) {
	var count int64
	return count, r.db.Model(&models.Result{}).Count(&count).Error
}

func (r *ResultRepository) AverageBand() (float64, error) {
	var avg *float64
	err := r.db.Model(&models.Result{}).Select("AVG(band_score)").Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}

// LeaderboardRow is one ranked entry: a user's best submission.
type LeaderboardRow struct {
	Username     string    `json:"username"`
	HighestScore int       `json:"highestScore"`
	HighestBand  float64   `json:"highestBand"`
	TestDate     time.Time `json:"date"`
}

// Leaderboard selects each user's best result row (highest score, earliest
// submission among equals) and ranks by score DESC, date ASC. The NOT EXISTS
// anti-join runs unchanged on both mysql and sqlite.
func (r *ResultRepository) Leaderboard(limit int) ([]LeaderboardRow, error) {
	if limit <= 0 {
		limit = 10
	}
	rows := []LeaderboardRow{}
	err := r.db.Raw(`
		SELECT u.username AS username,
		       res.score AS highest_score,
		       res.band_score AS highest_band,
		       res.test_date AS test_date
		FROM results res
		JOIN users u ON u.id = res.user_id
		WHERE NOT EXISTS (
			SELECT 1 FROM results r2
			WHERE r2.user_id = res.user_id
			  AND (r2.score > res.score
			       OR (r2.score = res.score AND r2.test_date < res.test_date)
			       OR (r2.score = res.score AND r2.test_date = res.test_date AND r2.id < res.id))
		)
		ORDER BY res.score DESC, res.test_date ASC
		LIMIT ?`, limit).Scan(&rows).Error
	return rows, err
}
