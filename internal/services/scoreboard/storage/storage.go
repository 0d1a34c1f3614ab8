// Package storage defines the durable projection of scoreboard state and the
// store contract the engine reads at startup and writes after each change.
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	platformerrors "github.com/louisbranch/tantoak/internal/platform/errors"
	"github.com/louisbranch/tantoak/internal/services/scoreboard/domain"
)

// ErrNotFound indicates nothing has been saved yet.
var ErrNotFound = platformerrors.New(platformerrors.CodeNotFound, "snapshot not found")

// ErrSnapshotCorrupt matches any saved record that cannot be decoded.
var ErrSnapshotCorrupt = platformerrors.New(platformerrors.CodeSnapshotCorrupt, "snapshot corrupt")

// Record keys. Each key is stored as an independent record.
const (
	KeyScore     = "score"
	KeyGameScore = "gameScore"
	KeyMaxScore  = "maxScore"
)

// Keys lists every record key in write order.
var Keys = []string{KeyScore, KeyGameScore, KeyMaxScore}

// Snapshot is the persisted projection of domain.State.
type Snapshot struct {
	Score     [domain.TeamCount]int
	GameScore [domain.TeamCount]int
	MaxScore  int
}

// SnapshotStore persists scoreboard snapshots.
type SnapshotStore interface {
	// Load returns the last saved snapshot, or ErrNotFound when none exists.
	Load(ctx context.Context) (Snapshot, error)
	// Save replaces the stored snapshot.
	Save(ctx context.Context, snapshot Snapshot) error
}

// FromState projects state into a snapshot.
func FromState(state domain.State) Snapshot {
	return Snapshot{
		Score:     state.Score,
		GameScore: state.GameScore,
		MaxScore:  state.Ceiling,
	}
}

// State converts the snapshot back into a domain state. The result is not
// repaired; callers apply domain.State.Repair.
func (s Snapshot) State() domain.State {
	return domain.State{
		Score:     s.Score,
		GameScore: s.GameScore,
		Ceiling:   s.MaxScore,
	}
}

type scoreRecord struct {
	Score [domain.TeamCount]int `json:"score"`
}

type gameScoreRecord struct {
	GameScore [domain.TeamCount]int `json:"gameScore"`
}

type maxScoreRecord struct {
	MaxScore int `json:"maxScore"`
}

// EncodeRecords renders a snapshot as one JSON payload per key.
func EncodeRecords(snapshot Snapshot) (map[string][]byte, error) {
	score, err := json.Marshal(scoreRecord{Score: snapshot.Score})
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", KeyScore, err)
	}
	gameScore, err := json.Marshal(gameScoreRecord{GameScore: snapshot.GameScore})
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", KeyGameScore, err)
	}
	maxScore, err := json.Marshal(maxScoreRecord{MaxScore: snapshot.MaxScore})
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", KeyMaxScore, err)
	}
	return map[string][]byte{
		KeyScore:     score,
		KeyGameScore: gameScore,
		KeyMaxScore:  maxScore,
	}, nil
}

// DecodeRecords rebuilds a snapshot from keyed payloads. Keys missing from
// records keep the value from defaults, since the records are written
// independently and older installs may lack some of them. An empty map yields
// ErrNotFound.
func DecodeRecords(records map[string][]byte, defaults Snapshot) (Snapshot, error) {
	if len(records) == 0 {
		return Snapshot{}, ErrNotFound
	}
	snapshot := defaults
	if payload, ok := records[KeyScore]; ok {
		var record scoreRecord
		if err := json.Unmarshal(payload, &record); err != nil {
			return Snapshot{}, platformerrors.Wrap(platformerrors.CodeSnapshotCorrupt, "unmarshal "+KeyScore, err)
		}
		snapshot.Score = record.Score
	}
	if payload, ok := records[KeyGameScore]; ok {
		var record gameScoreRecord
		if err := json.Unmarshal(payload, &record); err != nil {
			return Snapshot{}, platformerrors.Wrap(platformerrors.CodeSnapshotCorrupt, "unmarshal "+KeyGameScore, err)
		}
		snapshot.GameScore = record.GameScore
	}
	if payload, ok := records[KeyMaxScore]; ok {
		var record maxScoreRecord
		if err := json.Unmarshal(payload, &record); err != nil {
			return Snapshot{}, platformerrors.Wrap(platformerrors.CodeSnapshotCorrupt, "unmarshal "+KeyMaxScore, err)
		}
		snapshot.MaxScore = record.MaxScore
	}
	return snapshot, nil
}

// DefaultSnapshot is the snapshot used to fill keys that were never saved.
// MaxScore stays 0 so the loader's configured default ceiling applies
// through domain.State.Repair.
func DefaultSnapshot() Snapshot {
	return Snapshot{}
}
