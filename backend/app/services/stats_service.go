package services

import (
	"math"

	"ieltsim/backend/app/cache"
	"ieltsim/backend/app/dto"
	"ieltsim/backend/app/models"
	"ieltsim/backend/app/repo"
)

type StatsService struct {
	users   *repo.UserRepository
	results *repo.ResultRepository
	cache   *cache.Cache
}

func NewStatsService(users *repo.UserRepository, results *repo.ResultRepository, c *cache.Cache) *StatsService {
	return &StatsService{users: users, results: results, cache: c}
}

// Stats counts regular users (admins excluded), total tests, and the mean
// band across every result, rounded to one decimal. Zero results means a
// zero average.
func (s *StatsService) Stats() (dto.StatsResponse, error) {
	var out dto.StatsResponse
	if s.cache.GetJSON(cache.KeyStats, &out) {
		return out, nil
	}
	userCount, err := s.users.CountByRole(models.RoleUser)
	if err != nil {
		return out, err
	}
	testCount, err := s.results.Count()
	if err != nil {
		return out, err
	}
	avg := 0.0
	if testCount > 0 {
		avg, err = s.results.AverageBand()
		if err != nil {
			return out, err
		}
		avg = math.Round(avg*10) / 10
	}
	out = dto.StatsResponse{TotalUsers: userCount, TotalTests: testCount, AverageBandScore: avg}
	s.cache.SetJSON(cache.KeyStats, out)
	return out, nil
}

func (s *StatsService) Leaderboard(limit int) ([]repo.LeaderboardRow, error) {
	var rows []repo.LeaderboardRow
	if s.cache.GetJSON(cache.KeyLeaderboard, &rows) {
		return rows, nil
	}
	rows, err := s.results.Leaderboard(limit)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(cache.KeyLeaderboard, rows)
	return rows, nil
}
