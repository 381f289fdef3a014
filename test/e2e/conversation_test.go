package e2e

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevrusik/turthsnapbot/pkg/bot"
	"github.com/sevrusik/turthsnapbot/pkg/models"
	"github.com/sevrusik/turthsnapbot/pkg/notify"
)

func TestStartShowsScenarioSelection(t *testing.T) {
	h := newHarness(t)

	h.sendMessage(42, 42, "/start")

	call := h.waitForCall("sendMessage", "Choose your scenario")
	assert.NotNil(t, call.Body["reply_markup"], "welcome must carry the scenario keyboard")

	st, err := h.States.Get(context.Background(), 42, 42)
	require.NoError(t, err)
	require.NotNil(t, st)
	assert.Equal(t, bot.StateSelectingScenario, st.Kind)
}

func TestAdultBlackmailScenarioFlow(t *testing.T) {
	h := newHarness(t)

	h.sendMessage(42, 42, "/start")
	h.waitForCall("sendMessage", "Choose your scenario")

	h.pressButton(42, 42, 1, notify.CallbackScenarioAdult)
	h.waitForCall("editMessageText", "Legal evidence")

	st, err := h.States.Get(context.Background(), 42, 42)
	require.NoError(t, err)
	require.NotNil(t, st)
	assert.Equal(t, bot.StateAdultWaitingForEvidence, st.Kind)
	assert.Equal(t, models.ScenarioAdultBlackmail, st.Scenario)

	assert.GreaterOrEqual(t, h.answeredCallbacks(), 1)
}

func TestTeenagerSOSScenarioFlow(t *testing.T) {
	h := newHarness(t)

	h.sendMessage(42, 42, "/start")
	h.waitForCall("sendMessage", "Choose your scenario")

	// The calming page comes first; the photo is only requested once
	// the user confirms they are ready.
	h.pressButton(42, 42, 1, notify.CallbackScenarioTeenager)
	h.waitForCall("editMessageText", "You're Safe")

	st, err := h.States.Get(context.Background(), 42, 42)
	require.NoError(t, err)
	require.NotNil(t, st)
	assert.Equal(t, bot.StateTeenagerStopShown, st.Kind)

	h.pressButton(42, 42, 1, notify.CallbackTeenReady)
	h.waitForCall("editMessageText", "Send the photo now")

	st, err = h.States.Get(context.Background(), 42, 42)
	require.NoError(t, err)
	require.NotNil(t, st)
	assert.Equal(t, bot.StateTeenagerWaitingForPhoto, st.Kind)
	assert.Equal(t, models.ScenarioTeenagerSOS, st.Scenario)
}

func TestStatusCommandReportsQuota(t *testing.T) {
	h := newHarness(t)

	h.sendMessage(42, 42, "/status")

	call := h.waitForCall("sendMessage", "Checks left today")
	assert.Contains(t, call.Text(), "Free")
	assert.Contains(t, call.Text(), "3")
}

func TestTextWhileWaitingForPhotoNudges(t *testing.T) {
	h := newHarness(t)

	h.sendMessage(42, 42, "/start")
	h.waitForCall("sendMessage", "Choose your scenario")
	h.pressButton(42, 42, 1, notify.CallbackScenarioAdult)
	h.waitForCall("editMessageText", "Legal evidence")

	h.sendMessage(42, 42, "here is my story, it is long")
	h.waitForCall("sendMessage", "Please send the photo")
}
