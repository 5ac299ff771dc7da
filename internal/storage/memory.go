package storage

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps results for the lifetime of the process. It is used
// when no database is configured.
type MemoryStore struct {
	mu    sync.Mutex
	games map[string]CompletedGame
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{games: make(map[string]CompletedGame)}
}

func (m *MemoryStore) SaveGame(_ context.Context, game CompletedGame) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[game.ID]; !ok {
		m.games[game.ID] = game
	}
	return nil
}

func (m *MemoryStore) Standings(_ context.Context, limit int) (Standings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var res Standings
	all := make([]CompletedGame, 0, len(m.games))
	for _, g := range m.games {
		res.add(g.Outcome, 1)
		all = append(all, g)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].EndedAt.After(all[j].EndedAt) })
	if limit >= 0 && len(all) > limit {
		all = all[:limit]
	}
	res.Recent = all
	return res, nil
}
