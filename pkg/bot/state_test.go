package bot

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevrusik/turthsnapbot/pkg/models"
)

func newTestStateStore(t *testing.T) (*StateStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewStateStore(rdb), mr
}

func TestStateRoundTrip(t *testing.T) {
	store, _ := newTestStateStore(t)
	ctx := context.Background()

	st, err := store.Get(ctx, 100, 42)
	require.NoError(t, err)
	assert.Nil(t, st)

	err = store.Set(ctx, 100, 42, &State{
		Kind:              StateAnalysisInFlight,
		Scenario:          models.ScenarioAdultBlackmail,
		JobID:             "job-1",
		ProgressMessageID: 555,
	})
	require.NoError(t, err)

	st, err = store.Get(ctx, 100, 42)
	require.NoError(t, err)
	require.NotNil(t, st)
	assert.Equal(t, StateAnalysisInFlight, st.Kind)
	assert.Equal(t, models.ScenarioAdultBlackmail, st.Scenario)
	assert.Equal(t, "job-1", st.JobID)
	assert.Equal(t, int64(555), st.ProgressMessageID)
}

func TestStateIsScopedPerChatAndUser(t *testing.T) {
	store, _ := newTestStateStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, 100, 42, &State{Kind: StateAdultWaitingForEvidence}))

	st, err := store.Get(ctx, 100, 43)
	require.NoError(t, err)
	assert.Nil(t, st)

	st, err = store.Get(ctx, 101, 42)
	require.NoError(t, err)
	assert.Nil(t, st)
}

func TestStateClear(t *testing.T) {
	store, _ := newTestStateStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, 100, 42, &State{Kind: StateTeenagerStopShown}))
	require.NoError(t, store.Clear(ctx, 100, 42))

	st, err := store.Get(ctx, 100, 42)
	require.NoError(t, err)
	assert.Nil(t, st)
}

func TestStateExpires(t *testing.T) {
	store, mr := newTestStateStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, 100, 42, &State{Kind: StateSelectingScenario}))
	mr.FastForward(stateTTL + time.Minute)

	st, err := store.Get(ctx, 100, 42)
	require.NoError(t, err)
	assert.Nil(t, st)
}

func TestUploadScenario(t *testing.T) {
	tests := []struct {
		name     string
		state    *State
		expected models.Scenario
	}{
		{"nil state runs general", nil, models.ScenarioGeneral},
		{"adult waiting", &State{Kind: StateAdultWaitingForEvidence}, models.ScenarioAdultBlackmail},
		{"teen stop shown accepts early photo", &State{Kind: StateTeenagerStopShown}, models.ScenarioTeenagerSOS},
		{"teen waiting", &State{Kind: StateTeenagerWaitingForPhoto}, models.ScenarioTeenagerSOS},
		{"selecting falls back to general", &State{Kind: StateSelectingScenario}, models.ScenarioGeneral},
		{
			"reviewing keeps prior scenario",
			&State{Kind: StateReviewingResult, Scenario: models.ScenarioTeenagerSOS},
			models.ScenarioTeenagerSOS,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.UploadScenario())
		})
	}
}

func TestRecordResultDelivered(t *testing.T) {
	store, _ := newTestStateStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, 100, 42, &State{
		Kind:  StateAnalysisInFlight,
		JobID: "job-1",
	}))

	store.RecordResultDelivered(ctx, 100, 42, models.ScenarioGeneral, "ANL-20260824-0a1b2c3d")

	st, err := store.Get(ctx, 100, 42)
	require.NoError(t, err)
	require.NotNil(t, st)
	assert.Equal(t, StateReviewingResult, st.Kind)
	assert.Equal(t, "ANL-20260824-0a1b2c3d", st.AnalysisID)
}

func TestRecordResultDelivered_DoesNotOverrideReset(t *testing.T) {
	store, _ := newTestStateStore(t)
	ctx := context.Background()

	// /start during the analysis resets the flow; the late delivery
	// must not drag the user back.
	require.NoError(t, store.Set(ctx, 100, 42, &State{Kind: StateSelectingScenario}))

	store.RecordResultDelivered(ctx, 100, 42, models.ScenarioGeneral, "ANL-20260824-0a1b2c3d")

	st, err := store.Get(ctx, 100, 42)
	require.NoError(t, err)
	require.NotNil(t, st)
	assert.Equal(t, StateSelectingScenario, st.Kind)
}
