package metrics

import (
	"sync"
	"time"

	"perfectplay/game"
	"perfectplay/searcher"

	"github.com/google/uuid"
)

// AgentConfig describes one contestant of an experiment.
type AgentConfig struct {
	ID         int
	Engine     string // recursive, iterative or random
	Seed       uint64
	Goroutines int
	MaxDepth   int
}

type MoveMetric struct {
	Step     int
	Player   game.Player
	Move     string
	Duration time.Duration
	Search   searcher.SearchMetric // Zero unless the strategy reports its searches
}

type GameMetric struct {
	RunID          uuid.UUID
	StartingPlayer game.Player
	Winner         game.Player // NoPlayer on a draw or an unfinished game
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID of the agent playing p1
	Agent2 int // AgentConfig.ID of the agent playing p2
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// Collector numbers finished games and accumulates their records.
type Collector struct {
	mu    sync.Mutex
	games []GameRecord
	moves []MoveRecord
}

func NewCollector() *Collector {
	return &Collector{}
}

// Add records a game between agent1 and agent2 and returns its ID.
func (c *Collector) Add(agent1, agent2 int, metric GameMetric, moves []MoveMetric) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := len(c.games) + 1
	c.games = append(c.games, GameRecord{ID: id, Agent1: agent1, Agent2: agent2, GameMetric: metric})
	for _, move := range moves {
		c.moves = append(c.moves, MoveRecord{Game: id, MoveMetric: move})
	}
	return id
}

func (c *Collector) GameRecords() []GameRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]GameRecord(nil), c.games...)
}

func (c *Collector) MoveRecords() []MoveRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]MoveRecord(nil), c.moves...)
}

// Wins counts the games each agent won.
func (c *Collector) Wins() map[int]int {
	c.mu.Lock()
	defer c.mu.Unlock()

	wins := map[int]int{}
	for _, record := range c.games {
		switch record.Winner {
		case game.P1:
			wins[record.Agent1]++
		case game.P2:
			wins[record.Agent2]++
		}
	}
	return wins
}
