package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ayross-237/Connect4/internal/game"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestNewProducerDisabledWithoutBrokers(t *testing.T) {
	assert.Nil(t, NewProducer(nil, "game-events"))
	assert.Nil(t, NewProducer([]string{"localhost:9092"}, ""))

	var p *Producer
	p.Publish(context.Background(), EventMovePlayed, nil)
	p.Close()
}

func TestPublishEncodesEvent(t *testing.T) {
	w := &fakeWriter{}
	p := newProducer(w)
	at := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	p.now = func() time.Time { return at }

	p.Publish(context.Background(), EventGameFinished, map[string]any{"gameId": "g-1", "outcome": "draw"})
	require.Len(t, w.msgs, 1)
	assert.Equal(t, []byte("g-1"), w.msgs[0].Key)

	var e Event
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &e))
	assert.Equal(t, EventGameFinished, e.Event)
	assert.Equal(t, "draw", e.Payload["outcome"])
	assert.True(t, at.Equal(e.Timestamp))

	p.Close()
	assert.True(t, w.closed)
}

func TestPublishSwallowsWriteErrors(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker down")}
	p := newProducer(w)
	p.Publish(context.Background(), EventMovePlayed, map[string]any{"gameId": "g-2"})
	assert.Empty(t, w.msgs)
}

func TestPayloads(t *testing.T) {
	g, err := game.NewGameState(game.Rules{Size: 5, RequiredLength: 2})
	require.NoError(t, err)

	res, err := g.Apply(game.Drop(2))
	require.NoError(t, err)
	move := MovePayload(g, res)
	assert.Equal(t, g.ID, move["gameId"])
	assert.Equal(t, "drop", move["action"])
	assert.Equal(t, 3, move["column"])
	assert.Equal(t, "X", move["piece"])
	assert.Equal(t, "no_result", move["outcome"])

	_, err = g.Apply(game.Drop(0))
	require.NoError(t, err)
	_, err = g.Apply(game.Drop(2))
	require.NoError(t, err)
	fin := FinishedPayload(g)
	assert.Equal(t, "player_one_wins", fin["outcome"])
	assert.Equal(t, "X", fin["winner"])
	assert.Equal(t, 3, fin["moves"])
	assert.Equal(t, 5, fin["boardSize"])
}

func TestMetricsFromEncodedEvents(t *testing.T) {
	w := &fakeWriter{}
	p := newProducer(w)
	day := time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)
	p.now = func() time.Time { return day }

	ctx := context.Background()
	p.Publish(ctx, EventMovePlayed, map[string]any{"gameId": "a", "action": "drop"})
	p.Publish(ctx, EventMovePlayed, map[string]any{"gameId": "a", "action": "remove"})
	p.Publish(ctx, EventMovePlayed, map[string]any{"gameId": "a", "action": "drop"})
	p.Publish(ctx, EventGameFinished, map[string]any{"gameId": "a", "outcome": "draw", "duration": 10.0, "boardSize": 8})
	p.Publish(ctx, EventGameFinished, map[string]any{"gameId": "b", "outcome": "player_two_wins", "duration": 30.0, "boardSize": 8})
	p.Publish(ctx, "unknown", map[string]any{"gameId": "c"})

	m := NewMetrics()
	for _, msg := range w.msgs {
		var e Event
		require.NoError(t, json.Unmarshal(msg.Value, &e))
		m.Record(e)
	}

	s := m.Summary()
	assert.Equal(t, 2, s.TotalGames)
	assert.Equal(t, 3, s.TotalMoves)
	assert.InDelta(t, 20.0, s.AverageDuration, 1e-9)
	assert.Equal(t, map[string]int{"draw": 1, "player_two_wins": 1}, s.Outcomes)
	assert.Equal(t, map[string]int{"drop": 2, "remove": 1}, s.Actions)
	assert.Equal(t, map[int]int{8: 2}, s.BoardSizes)
	assert.Equal(t, map[string]int{"2026-10-15": 2}, s.GamesPerDay)
	assert.Equal(t, map[string]int{"2026-10-15 09:00": 2}, s.GamesPerHour)

	s.Outcomes["draw"] = 99
	assert.Equal(t, 1, m.Summary().Outcomes["draw"], "summary maps are copies")
}
