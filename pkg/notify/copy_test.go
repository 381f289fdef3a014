package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The register of each scenario's copy is part of the product contract
// and pinned with canonical substrings.

func TestAdultCopyIsClinical(t *testing.T) {
	assert.Contains(t, AdultIntroMessage, "Legal evidence")
	assert.Contains(t, AdultIntroMessage, "SHA-256 Hash for legal proof")
	assert.NotContains(t, AdultIntroMessage, "not your fault")

	assert.Contains(t, SafeResponseMessage, "18 U.S.C.")
	assert.Contains(t, SafeResponseMessage, "law enforcement")
}

func TestTeenagerCopyIsReassuring(t *testing.T) {
	assert.Contains(t, TeenIntroMessage, "not your fault")
	assert.Contains(t, TeenIntroMessage, "You're Safe")

	assert.Contains(t, TeenEducationMessage, "It's not your fault")
	assert.Contains(t, TellParentsMessage, "you're not alone")
	assert.Contains(t, ConversationScriptMessage, "trusted adult")
}

func TestGeneralCopyIsEducational(t *testing.T) {
	assert.Contains(t, WhatIsAIMessage, "AI image generators")
	assert.Contains(t, SpotFakesMessage, "Reverse image search")
	assert.Contains(t, KnowledgeBaseMessage, "probabilistic, not definitive proof")
	assert.NotContains(t, WhatIsAIMessage, "blackmailer")
}

func TestCounterMeasuresNeverAdvisesPayment(t *testing.T) {
	assert.Contains(t, CounterMeasuresMessage, "Never pay a blackmailer")
	assert.Contains(t, StopSpreadMessage, "Do NOT pay the blackmailer")
}

func TestParameterizedCopy(t *testing.T) {
	assert.Equal(t, "⏳ Too many requests, wait 7 seconds", RateLimitedMessage(7))

	dup := DuplicateMessage("ANL-20260824-0a1b2c3d")
	assert.Contains(t, dup, "ANL-20260824-0a1b2c3d")
	assert.Contains(t, dup, "No check was charged")

	assert.Contains(t, TooLargeMessage(10), "10 MB")
	assert.Contains(t, UnsupportedMediaMessage("Animated stickers are not supported"), "JPEG, PNG, WebP")
}

func TestScenarioSelectionKeyboard(t *testing.T) {
	texts := buttonTexts(ScenarioSelectionKeyboard())
	assert.Contains(t, texts, "👤 I'm being blackmailed")
	assert.Contains(t, texts, "🆘 I need help (Teenager)")
	assert.Contains(t, texts, "📚 Knowledge Base")
}

func TestCounterMeasuresKeyboardLinks(t *testing.T) {
	kb := CounterMeasuresKeyboard("ANL-1")
	var urls []string
	for _, row := range kb.InlineKeyboard {
		for _, btn := range row {
			if btn.URL != "" {
				urls = append(urls, btn.URL)
			}
		}
	}
	assert.Contains(t, urls, "https://stopncii.org/")
	assert.Contains(t, urls, "https://www.ic3.gov/Home/ComplaintChoice/default.aspx")
}

func TestStopSpreadKeyboardLinks(t *testing.T) {
	kb := StopSpreadKeyboard()
	var urls []string
	for _, row := range kb.InlineKeyboard {
		for _, btn := range row {
			if btn.URL != "" {
				urls = append(urls, btn.URL)
			}
		}
	}
	assert.Contains(t, urls, "https://takeitdown.ncmec.org/")
	assert.Contains(t, urls, "https://report.cybertip.org")
}
