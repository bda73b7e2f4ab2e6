package services

import (
	"ieltsim/backend/app/cache"
	"ieltsim/backend/app/models"
	"ieltsim/backend/app/repo"
	"ieltsim/backend/app/scoring"
)

type ResultService struct {
	results *repo.ResultRepository
	cache   *cache.Cache
}

func NewResultService(results *repo.ResultRepository, c *cache.Cache) *ResultService {
	return &ResultService{results: results, cache: c}
}

// Submit grades the answers and persists the result for userID. The band is
// derived here and nowhere else.
func (s *ResultService) Submit(userID uint, answers []int) (*models.Result, error) {
	score := scoring.Score(answers)
	res := models.Result{
		UserID:    userID,
		Score:     score,
		BandScore: scoring.Band(score),
	}
	if err := s.results.Create(&res); err != nil {
		return nil, err
	}
	s.cache.Invalidate(cache.KeyLeaderboard, cache.KeyStats)
	return &res, nil
}

func (s *ResultService) History(userID uint) ([]models.Result, error) {
	return s.results.ListByUser(userID)
}
