package notify

import (
	"github.com/sevrusik/turthsnapbot/pkg/models"
	"github.com/sevrusik/turthsnapbot/pkg/telegram"
)

// Callback data values routed by the dispatcher. Scenario-scoped
// actions carry their scenario as the prefix.
const (
	CallbackScenarioSelect   = "scenario:select"
	CallbackScenarioAdult    = "scenario:adult_blackmail"
	CallbackScenarioTeenager = "scenario:teenager_sos"
	CallbackKnowledgeBase    = "scenario:knowledge_base"

	CallbackAdultCounterMeasures = "adult:counter_measures"
	CallbackAdultBackToAnalysis  = "adult:back_to_analysis"
	CallbackCounterSafeResponse  = "counter:safe_response"

	CallbackTeenReady        = "teen:ready"
	CallbackTeenTellParents  = "teen:tell_parents"
	CallbackTeenStopSpread   = "teen:stop_spread"
	CallbackTeenEducation    = "teen:education"
	CallbackTeenScript       = "teen:conversation_script"
	CallbackTeenBackToResult = "teen:back_to_analysis"

	CallbackGeneralWhatIsAI  = "general:what_is_ai"
	CallbackGeneralSpotFakes = "general:spot_fakes"

	// PDFReportPrefix is followed by the analysis ID.
	PDFReportPrefix = "pdf_report:"
)

// PDFCallback builds the callback data for a PDF report request.
func PDFCallback(analysisID string) string {
	return PDFReportPrefix + analysisID
}

var mainMenuRow = telegram.Row(telegram.CallbackButton("🔙 Back to Main Menu", CallbackScenarioSelect))

// ScenarioSelectionKeyboard is shown with the welcome message.
func ScenarioSelectionKeyboard() *telegram.InlineKeyboardMarkup {
	return telegram.Keyboard(
		telegram.Row(telegram.CallbackButton("👤 I'm being blackmailed", CallbackScenarioAdult)),
		telegram.Row(telegram.CallbackButton("🆘 I need help (Teenager)", CallbackScenarioTeenager)),
		telegram.Row(telegram.CallbackButton("📚 Knowledge Base", CallbackKnowledgeBase)),
	)
}

// ResultKeyboard is attached to the final verdict message. Every
// scenario carries its own follow-up actions.
func ResultKeyboard(scenario models.Scenario, analysisID, verdictLabel string) *telegram.InlineKeyboardMarkup {
	switch scenario {
	case models.ScenarioAdultBlackmail:
		return telegram.Keyboard(
			telegram.Row(telegram.CallbackButton("📄 Get Forensic PDF", PDFCallback(analysisID))),
			telegram.Row(telegram.CallbackButton("🛡️ Counter-measures", CallbackAdultCounterMeasures)),
			mainMenuRow,
		)
	case models.ScenarioTeenagerSOS:
		return telegram.Keyboard(
			telegram.Row(telegram.CallbackButton("📄 Get PDF Report", PDFCallback(analysisID))),
			telegram.Row(telegram.CallbackButton("🤝 How to tell my parents", CallbackTeenTellParents)),
			telegram.Row(telegram.CallbackButton("🚫 Stop the Spread", CallbackTeenStopSpread)),
			telegram.Row(telegram.CallbackButton("📚 What is sextortion?", CallbackTeenEducation)),
			mainMenuRow,
		)
	default:
		return telegram.Keyboard(
			telegram.Row(telegram.CallbackButton("🤖 What is AI-generated content?", CallbackGeneralWhatIsAI)),
			telegram.Row(telegram.CallbackButton("🔍 How to spot fake images", CallbackGeneralSpotFakes)),
			telegram.Row(telegram.CallbackButton("📄 Get PDF Report", PDFCallback(analysisID))),
			telegram.Row(telegram.ShareButton("📤 Share Result", "Analysis: "+verdictLabel)),
			mainMenuRow,
		)
	}
}

// TeenIntroKeyboard is shown with the teenager intro page.
func TeenIntroKeyboard() *telegram.InlineKeyboardMarkup {
	return telegram.Keyboard(
		telegram.Row(telegram.CallbackButton("📸 I'm ready to send the photo", CallbackTeenReady)),
		mainMenuRow,
	)
}

// CounterMeasuresKeyboard lists the adult-scenario response options.
func CounterMeasuresKeyboard(analysisID string) *telegram.InlineKeyboardMarkup {
	return telegram.Keyboard(
		telegram.Row(telegram.CallbackButton("💬 Generate Safe Response", CallbackCounterSafeResponse)),
		telegram.Row(telegram.URLButton("🚫 Report to StopNCII", "https://stopncii.org/")),
		telegram.Row(telegram.URLButton("🚨 Report to FBI IC3", "https://www.ic3.gov/Home/ComplaintChoice/default.aspx")),
		telegram.Row(telegram.CallbackButton("📄 Download PDF Report", PDFCallback(analysisID))),
		telegram.Row(telegram.CallbackButton("🔙 Back", CallbackAdultBackToAnalysis)),
	)
}

// StopSpreadKeyboard links the teenager emergency resources.
func StopSpreadKeyboard() *telegram.InlineKeyboardMarkup {
	return telegram.Keyboard(
		telegram.Row(telegram.URLButton("🔗 Take It Down (Anonymous Removal)", "https://takeitdown.ncmec.org/")),
		telegram.Row(telegram.URLButton("📱 FBI Tips for Teens", "https://www.fbi.gov/video-repository/newss-sextortion-know-the-warning-signs/view")),
		telegram.Row(telegram.URLButton("🚨 Report to NCMEC", "https://report.cybertip.org")),
		telegram.Row(telegram.CallbackButton("🔙 Back", CallbackTeenBackToResult)),
		telegram.Row(telegram.CallbackButton("🏠 Main Menu", CallbackScenarioSelect)),
	)
}

// TellParentsKeyboard offers the evidence flow for the parent talk.
func TellParentsKeyboard(analysisID string) *telegram.InlineKeyboardMarkup {
	return telegram.Keyboard(
		telegram.Row(telegram.CallbackButton("📄 Get PDF Report (Show to parents)", PDFCallback(analysisID))),
		telegram.Row(telegram.CallbackButton("💬 See conversation script", CallbackTeenScript)),
		telegram.Row(telegram.CallbackButton("🔙 Back", CallbackTeenBackToResult)),
	)
}

// BackAndMenuKeyboard is the common footer for informational pages.
func BackAndMenuKeyboard(backCallback string) *telegram.InlineKeyboardMarkup {
	return telegram.Keyboard(
		telegram.Row(telegram.CallbackButton("🔙 Back", backCallback)),
		telegram.Row(telegram.CallbackButton("🏠 Main Menu", CallbackScenarioSelect)),
	)
}

// MainMenuOnlyKeyboard closes pages that have no parent view.
func MainMenuOnlyKeyboard() *telegram.InlineKeyboardMarkup {
	return telegram.Keyboard(
		telegram.Row(telegram.CallbackButton("🏠 Main Menu", CallbackScenarioSelect)),
	)
}
