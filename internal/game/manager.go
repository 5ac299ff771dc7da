package game

import "log"

// Tally counts how the games of one session ended.
type Tally struct {
	PlayerOneWins int
	PlayerTwoWins int
	Draws         int
	Abandoned     int
}

func (t Tally) Played() int {
	return t.PlayerOneWins + t.PlayerTwoWins + t.Draws + t.Abandoned
}

// Hooks are called synchronously after state changes. Either may be nil.
type Hooks struct {
	OnMove   func(*GameState, MoveResult)
	OnFinish func(*GameState)
}

// Manager runs the games of a session one after another. Every game gets a
// fresh board; only the tally survives between games.
type Manager struct {
	rules   Rules
	hooks   Hooks
	current *GameState
	tally   Tally
}

func NewManager(rules Rules, hooks Hooks) (*Manager, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return &Manager{rules: rules, hooks: hooks}, nil
}

func (m *Manager) Rules() Rules { return m.rules }
func (m *Manager) Tally() Tally { return m.tally }

// Current returns the live game, or nil before the first NewGame.
func (m *Manager) Current() *GameState { return m.current }

// NewGame starts a new game. A previous unfinished game is abandoned.
func (m *Manager) NewGame() *GameState {
	if m.current != nil && !m.current.Finished() {
		if _, err := m.Handle(Quit()); err != nil {
			log.Printf("abandon game %s: %v", m.current.ID, err)
		}
	}
	g, err := NewGameState(m.rules)
	if err != nil {
		// rules were validated in NewManager
		panic(err)
	}
	m.current = g
	return g
}

// Handle applies cmd to the live game and fires the hooks.
func (m *Manager) Handle(cmd Command) (MoveResult, error) {
	g := m.current
	if g == nil {
		return MoveResult{}, ErrGameFinished
	}
	res, err := g.Apply(cmd)
	if err != nil {
		return res, err
	}
	if res.Consumed && m.hooks.OnMove != nil {
		m.hooks.OnMove(g, res)
	}
	if res.Finished {
		m.record(g)
		if m.hooks.OnFinish != nil {
			m.hooks.OnFinish(g)
		}
	}
	return res, nil
}

func (m *Manager) record(g *GameState) {
	switch g.Outcome() {
	case PlayerOneWins:
		m.tally.PlayerOneWins++
	case PlayerTwoWins:
		m.tally.PlayerTwoWins++
	case Draw:
		m.tally.Draws++
	default:
		m.tally.Abandoned++
	}
}
