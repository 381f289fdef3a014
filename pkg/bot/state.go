// Package bot is the Telegram front end: long polling, the middleware
// chain, the per-chat conversation state machine, and the upload
// pipeline that feeds the analysis queue.
package bot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sevrusik/turthsnapbot/pkg/models"
)

// stateTTL bounds how long an abandoned conversation keeps its state.
const stateTTL = time.Hour

// StateKind names a position in the conversation flow.
type StateKind string

const (
	StateSelectingScenario       StateKind = "selecting_scenario"
	StateAdultWaitingForEvidence StateKind = "adult_waiting_for_evidence"
	StateTeenagerStopShown       StateKind = "teenager_stop_shown"
	StateTeenagerWaitingForPhoto StateKind = "teenager_waiting_for_photo"
	StateAnalysisInFlight        StateKind = "analysis_in_flight"
	StateReviewingResult         StateKind = "reviewing_result"
)

// State is one user's position in one chat. Only the fields relevant
// to the kind are set.
type State struct {
	Kind StateKind `json:"kind"`

	// Scenario chosen for the current flow.
	Scenario models.Scenario `json:"scenario,omitempty"`

	// JobID and ProgressMessageID are set while an analysis is running.
	JobID             string `json:"job_id,omitempty"`
	ProgressMessageID int64  `json:"progress_msg_id,omitempty"`

	// AnalysisID is set while the user reviews a delivered result.
	AnalysisID string `json:"analysis_id,omitempty"`
}

// UploadScenario is the scenario an image arriving in this state is
// analyzed under. Uploads with no prior selection run as general.
func (s *State) UploadScenario() models.Scenario {
	if s == nil {
		return models.ScenarioGeneral
	}
	switch s.Kind {
	case StateAdultWaitingForEvidence:
		return models.ScenarioAdultBlackmail
	case StateTeenagerStopShown, StateTeenagerWaitingForPhoto:
		return models.ScenarioTeenagerSOS
	default:
		if s.Scenario != "" {
			return s.Scenario
		}
		return models.ScenarioGeneral
	}
}

// StateStore keeps conversation state in Redis so every bot replica
// sees the same flow position.
type StateStore struct {
	rdb *redis.Client
}

// NewStateStore creates a StateStore.
func NewStateStore(rdb *redis.Client) *StateStore {
	return &StateStore{rdb: rdb}
}

func stateKey(chatID, userID int64) string {
	return fmt.Sprintf("state:%d:%d", chatID, userID)
}

// Get loads the state for one user in one chat. Absent state returns
// (nil, nil).
func (s *StateStore) Get(ctx context.Context, chatID, userID int64) (*State, error) {
	raw, err := s.rdb.Get(ctx, stateKey(chatID, userID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation state: %w", err)
	}

	var st State
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return nil, fmt.Errorf("corrupt conversation state: %w", err)
	}
	return &st, nil
}

// Set stores the state and refreshes its TTL.
func (s *StateStore) Set(ctx context.Context, chatID, userID int64, st *State) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to encode conversation state: %w", err)
	}
	if err := s.rdb.Set(ctx, stateKey(chatID, userID), raw, stateTTL).Err(); err != nil {
		return fmt.Errorf("failed to store conversation state: %w", err)
	}
	return nil
}

// RecordResultDelivered moves the conversation to ReviewingResult.
// Called by the notifier when a worker delivers a final message; the
// transition is best-effort because the state may have been reset by
// /start in the meantime, which wins.
func (s *StateStore) RecordResultDelivered(ctx context.Context, chatID, userID int64, scenario models.Scenario, analysisID string) {
	current, err := s.Get(ctx, chatID, userID)
	if err == nil && current != nil && current.Kind != StateAnalysisInFlight {
		return
	}
	if err := s.Set(ctx, chatID, userID, &State{
		Kind:       StateReviewingResult,
		Scenario:   scenario,
		AnalysisID: analysisID,
	}); err != nil {
		slog.Warn("Failed to record delivered result state", "component", "bot", "error", err)
	}
}

// Clear removes the state, returning the conversation to its initial
// position.
func (s *StateStore) Clear(ctx context.Context, chatID, userID int64) error {
	if err := s.rdb.Del(ctx, stateKey(chatID, userID)).Err(); err != nil {
		return fmt.Errorf("failed to clear conversation state: %w", err)
	}
	return nil
}
