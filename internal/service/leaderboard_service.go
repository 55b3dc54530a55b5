package service

import (
	"log"
	"time"

	"github.com/mcasfest/fest-api/internal/domain/entity"
	"github.com/mcasfest/fest-api/internal/domain/repository"
	"github.com/mcasfest/fest-api/internal/websocket"
)

const (
	leaderboardCacheKey = "leaderboard:standings"
	leaderboardCacheTTL = 30 * time.Second
)

// LeaderboardEntry is one row of the public standings.
type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	TeamID      uint   `json:"team_id"`
	Name        string `json:"name"`
	TotalPoints int    `json:"total_points"`
	Gold        int    `json:"gold"`
	Silver      int    `json:"silver"`
	Bronze      int    `json:"bronze"`
}

// LeaderboardService serves the cached standings and pushes fresh standings
// to websocket subscribers whenever aggregates change. Public clients
// subscribe to the stream instead of re-fetching on a timer.
type LeaderboardService struct {
	teamRepo  repository.TeamRepository
	cacheRepo repository.CacheRepository
	wsManager *websocket.Manager
}

// NewLeaderboardService creates a new leaderboard service
func NewLeaderboardService(
	teamRepo repository.TeamRepository,
	cacheRepo repository.CacheRepository,
	wsManager *websocket.Manager,
) *LeaderboardService {
	return &LeaderboardService{
		teamRepo:  teamRepo,
		cacheRepo: cacheRepo,
		wsManager: wsManager,
	}
}

// Get returns the standings, from cache when fresh.
func (s *LeaderboardService) Get() ([]LeaderboardEntry, error) {
	if s.cacheRepo != nil {
		var cached []LeaderboardEntry
		if err := s.cacheRepo.GetJSON(leaderboardCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	entries, err := s.load()
	if err != nil {
		return nil, err
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.SetJSON(leaderboardCacheKey, entries, leaderboardCacheTTL); err != nil {
			log.Printf("[Leaderboard] Failed to cache standings: %v", err)
		}
	}
	return entries, nil
}

// StandingsChanged implements StandingsNotifier. It drops the cached
// snapshot and pushes the fresh standings to all subscribers. Failures are
// logged, never propagated: the write that triggered the change has
// already committed.
func (s *LeaderboardService) StandingsChanged() {
	if s.cacheRepo != nil {
		if err := s.cacheRepo.Delete(leaderboardCacheKey); err != nil {
			log.Printf("[Leaderboard] Failed to invalidate cache: %v", err)
		}
	}

	entries, err := s.load()
	if err != nil {
		log.Printf("[Leaderboard] Failed to load standings for broadcast: %v", err)
		return
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.SetJSON(leaderboardCacheKey, entries, leaderboardCacheTTL); err != nil {
			log.Printf("[Leaderboard] Failed to cache standings: %v", err)
		}
	}
	if s.wsManager != nil {
		s.wsManager.BroadcastEvent(websocket.EventLeaderboardUpdate, entries)
	}
}

// ResultRecorded pushes a newly recorded placement to subscribers, ahead of
// the standings refresh that follows it.
func (s *LeaderboardService) ResultRecorded(result *entity.Result) {
	if s.wsManager != nil {
		s.wsManager.BroadcastEvent(websocket.EventResultRecorded, result)
	}
}

// ResultDeleted pushes a removed placement to subscribers.
func (s *LeaderboardService) ResultDeleted(result *entity.Result) {
	if s.wsManager != nil {
		s.wsManager.BroadcastEvent(websocket.EventResultDeleted, result)
	}
}

func (s *LeaderboardService) load() ([]LeaderboardEntry, error) {
	teams, err := s.teamRepo.Leaderboard()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(teams))
	for i, team := range teams {
		entries = append(entries, LeaderboardEntry{
			Rank:        i + 1,
			TeamID:      team.ID,
			Name:        team.Name,
			TotalPoints: team.TotalPoints,
			Gold:        team.Gold,
			Silver:      team.Silver,
			Bronze:      team.Bronze,
		})
	}
	return entries, nil
}
