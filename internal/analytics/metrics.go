package analytics

import (
	"log"
	"sync"
	"time"
)

// Metrics aggregates consumed events. It is safe for concurrent use so the
// consumer loop and the periodic reporter can share it.
type Metrics struct {
	mu            sync.Mutex
	totalGames    int
	totalMoves    int
	outcomeCounts map[string]int
	actionCounts  map[string]int
	gameDurations []float64
	gamesPerDay   map[string]int
	gamesPerHour  map[string]int
	boardSizes    map[int]int
}

type Summary struct {
	TotalGames      int
	TotalMoves      int
	AverageDuration float64
	Outcomes        map[string]int
	Actions         map[string]int
	GamesPerDay     map[string]int
	GamesPerHour    map[string]int
	BoardSizes      map[int]int
}

func NewMetrics() *Metrics {
	return &Metrics{
		outcomeCounts: make(map[string]int),
		actionCounts:  make(map[string]int),
		gameDurations: make([]float64, 0),
		gamesPerDay:   make(map[string]int),
		gamesPerHour:  make(map[string]int),
		boardSizes:    make(map[int]int),
	}
}

func (m *Metrics) Record(e Event) {
	switch e.Event {
	case EventMovePlayed:
		m.recordMove(e.Payload)
	case EventGameFinished:
		m.recordGameFinished(e.Payload, e.Timestamp)
	}
}

func (m *Metrics) recordMove(payload map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalMoves++
	if action, ok := payload["action"].(string); ok {
		m.actionCounts[action]++
	}
}

func (m *Metrics) recordGameFinished(payload map[string]any, timestamp time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalGames++

	if outcome, ok := payload["outcome"].(string); ok && outcome != "" {
		m.outcomeCounts[outcome]++
	}

	if duration, ok := payload["duration"].(float64); ok {
		m.gameDurations = append(m.gameDurations, duration)
	}

	// JSON numbers decode as float64
	if size, ok := payload["boardSize"].(float64); ok {
		m.boardSizes[int(size)]++
	}

	dayKey := timestamp.Format("2006-01-02")
	hourKey := timestamp.Format("2006-01-02 15:00")
	m.gamesPerDay[dayKey]++
	m.gamesPerHour[hourKey]++
}

func (m *Metrics) Summary() Summary {
	m.mu.Lock()
	defer m.mu.Unlock()

	avgDuration := 0.0
	if len(m.gameDurations) > 0 {
		sum := 0.0
		for _, d := range m.gameDurations {
			sum += d
		}
		avgDuration = sum / float64(len(m.gameDurations))
	}
	return Summary{
		TotalGames:      m.totalGames,
		TotalMoves:      m.totalMoves,
		AverageDuration: avgDuration,
		Outcomes:        copyCounts(m.outcomeCounts),
		Actions:         copyCounts(m.actionCounts),
		GamesPerDay:     copyCounts(m.gamesPerDay),
		GamesPerHour:    copyCounts(m.gamesPerHour),
		BoardSizes:      copyCounts(m.boardSizes),
	}
}

func (m *Metrics) PrintStats() {
	s := m.Summary()
	log.Printf("=== ANALYTICS SUMMARY ===")
	log.Printf("Total Games: %d", s.TotalGames)
	log.Printf("Total Moves: %d", s.TotalMoves)
	log.Printf("Average Game Duration: %.2f seconds", s.AverageDuration)
	log.Printf("Outcomes: %v", s.Outcomes)
	log.Printf("Moves By Action: %v", s.Actions)
	log.Printf("Board Sizes: %v", s.BoardSizes)
	log.Printf("Games Per Day: %v", s.GamesPerDay)
	log.Printf("Games Per Hour: %v", s.GamesPerHour)
	log.Printf("========================")
}

func copyCounts[K comparable](src map[K]int) map[K]int {
	dst := make(map[K]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
