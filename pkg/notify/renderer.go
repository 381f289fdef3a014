package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sevrusik/turthsnapbot/pkg/models"
	"github.com/sevrusik/turthsnapbot/pkg/telegram"
	"github.com/sevrusik/turthsnapbot/pkg/verdict"
)

// maxRedFlags caps the red-flag block so the message stays scannable.
const maxRedFlags = 2

var verdictEmoji = map[models.Verdict]string{
	models.VerdictReal:         "✅",
	models.VerdictAIGenerated:  "🤖",
	models.VerdictManipulated:  "⚠️",
	models.VerdictInconclusive: "❓",
}

var verdictLabels = map[models.Verdict]string{
	models.VerdictReal:         "REAL PHOTO",
	models.VerdictAIGenerated:  "AI-GENERATED",
	models.VerdictManipulated:  "MANIPULATED",
	models.VerdictInconclusive: "INCONCLUSIVE",
}

// VerdictEmoji returns the display emoji for a verdict.
func VerdictEmoji(v models.Verdict) string {
	if emoji, ok := verdictEmoji[v]; ok {
		return emoji
	}
	return "❓"
}

// VerdictLabel returns the display label for a verdict.
func VerdictLabel(v models.Verdict) string {
	if label, ok := verdictLabels[v]; ok {
		return label
	}
	return strings.ToUpper(string(v))
}

// Renderer builds the final result message body and its keyboard.
type Renderer struct {
	geocoder *Geocoder
}

// NewRenderer creates a Renderer.
func NewRenderer(geocoder *Geocoder) *Renderer {
	return &Renderer{geocoder: geocoder}
}

// RenderResult builds the full forensic body for one analysis. Every
// user receives the same body; the keyboard varies by scenario.
func (r *Renderer) RenderResult(
	ctx context.Context,
	scenario models.Scenario,
	analysisID string,
	fused verdict.Result,
	det *models.DetectionResult,
) (string, *telegram.InlineKeyboardMarkup) {
	var b strings.Builder

	emoji := verdictEmoji[fused.Verdict]
	fmt.Fprintf(&b, "%s <b>%s (%.1f%%)</b>\n\n", emoji, VerdictLabel(fused.Verdict), fused.Confidence*100)
	fmt.Fprintf(&b, "⏱ <b>Analysis time:</b> %.1fs\n\n", float64(det.ProcessingTimeMs)/1000)

	r.writeFootprint(ctx, &b, fused.Verdict, det)
	writeRedFlags(&b, det)
	writeWhatToDo(&b, fused.Verdict, scenario)

	fmt.Fprintf(&b, "\n📄 <b>Analysis ID:</b> <code>%s</code>", analysisID)

	return b.String(), ResultKeyboard(scenario, analysisID, VerdictLabel(fused.Verdict))
}

func (r *Renderer) writeFootprint(ctx context.Context, b *strings.Builder, v models.Verdict, det *models.DetectionResult) {
	d := det.Details
	b.WriteString("🗂 <b>DIGITAL FOOTPRINT:</b>\n")

	if d.CaptureTimestamp != nil && *d.CaptureTimestamp != "" {
		fmt.Fprintf(b, "📅 <b>Captured:</b> %s\n", FormatExifDatetime(*d.CaptureTimestamp))
	} else {
		b.WriteString("📅 <b>Captured:</b> <i>No timestamp (suspicious)</i>\n")
	}

	var cameraMake, cameraModel string
	if d.CameraMake != nil {
		cameraMake = *d.CameraMake
	}
	if d.CameraModel != nil {
		cameraModel = *d.CameraModel
	}

	software := ""
	if d.Software != nil && *d.Software != "" {
		software = *d.Software
	} else if d.CreatorTool != nil {
		software = *d.CreatorTool
	}
	if software != "" {
		name := FormatSoftwareName(software, cameraMake, cameraModel)
		if isAISoftware(name) {
			fmt.Fprintf(b, "🛠 <b>Created with:</b> %s ⚠️ <i>(AI Signature)</i>\n", name)
		} else {
			fmt.Fprintf(b, "🛠 <b>Created with:</b> %s\n", name)
		}
	} else {
		b.WriteString("🛠 <b>Created with:</b> <i>Unknown/Stripped</i>\n")
	}

	if cameraMake != "" || cameraModel != "" {
		fmt.Fprintf(b, "📱 <b>Device:</b> %s\n", FormatCameraName(cameraMake, cameraModel))
	} else if v == models.VerdictAIGenerated {
		b.WriteString("📱 <b>Device:</b> <i>No Camera Data (AI Signature)</i>\n")
	} else {
		b.WriteString("📱 <b>Device:</b> <i>Not available</i>\n")
	}

	if gps := d.GPS; gps != nil {
		mapsURL := MapsURL(gps.Lat, gps.Lon)
		coords := fmt.Sprintf("%.4f, %.4f", gps.Lat, gps.Lon)

		geoCtx, cancel := context.WithTimeout(ctx, geocodeTimeout)
		place, ok := r.geocoder.ReverseGeocode(geoCtx, gps.Lat, gps.Lon)
		cancel()

		if ok {
			fmt.Fprintf(b, "📍 <b>GPS:</b> %s (<a href=%q>%s</a>)\n", place, mapsURL, coords)
		} else {
			fmt.Fprintf(b, "📍 <b>GPS:</b> <a href=%q>%s</a>\n", mapsURL, coords)
		}
	} else {
		b.WriteString("📍 <b>GPS:</b> <i>None Detected</i>\n")
	}

	b.WriteString("\n")
}

// writeRedFlags renders at most maxRedFlags findings, strongest first.
func writeRedFlags(b *strings.Builder, det *models.DetectionResult) {
	d := det.Details
	var flags []string

	if wm := d.VisualWatermark; wm != nil {
		flags = append(flags, fmt.Sprintf("<b>Visual Mark:</b> %q (%s)", wm.Text, wm.Generator))
	}
	switch {
	case d.AIDetectionScore > 0.7:
		flags = append(flags, "<b>AI Pattern:</b> Strong (GAN/Diffusion)")
	case d.AIDetectionScore > 0.5:
		flags = append(flags, "<b>AI Pattern:</b> Moderate")
	}
	switch {
	case d.MetadataFraudScore >= 80:
		flags = append(flags, fmt.Sprintf("<b>Metadata:</b> Stripped/Manipulated (%.0f/100)", d.MetadataFraudScore))
	case d.MetadataFraudScore >= 50:
		flags = append(flags, fmt.Sprintf("<b>Metadata:</b> Suspicious (%.0f/100)", d.MetadataFraudScore))
	}
	for _, f := range d.RedFlags {
		if f.Severity == "bonus" {
			continue
		}
		if reason := strings.ReplaceAll(f.Reason, "EXIF", "Metadata"); reason != "" {
			flags = append(flags, reason)
		}
	}
	if d.FFTScore > 0.6 {
		flags = append(flags, "<b>Frequency Analysis:</b> AI artifacts detected")
	}
	if d.FaceSwapScore > 0.5 {
		flags = append(flags, "<b>Face Integrity:</b> Artifacts detected")
	}
	if det.WatermarkDetected && d.VisualWatermark == nil {
		flags = append(flags, "<b>Watermark:</b> Embedded signature detected")
	}

	if len(flags) == 0 {
		return
	}
	if len(flags) > maxRedFlags {
		flags = flags[:maxRedFlags]
	}

	b.WriteString("⚠️ <b>RED FLAGS:</b>\n")
	for _, f := range flags {
		b.WriteString("• " + f + "\n")
	}
	b.WriteString("\n")
}

// writeWhatToDo renders the advice block in the scenario's register.
func writeWhatToDo(b *strings.Builder, v models.Verdict, scenario models.Scenario) {
	b.WriteString("🛡 <b>WHAT TO DO:</b>\n")

	if scenario == models.ScenarioTeenagerSOS {
		switch v {
		case models.VerdictAIGenerated:
			b.WriteString(
				"• This photo is fake, and it's not your fault\n" +
					"• Save this analysis, it's your proof\n" +
					"• Tell a trusted adult, they can help\n" +
					"• Block the blackmailer, don't reply\n\n" +
					"<i>The technical evidence shows strong AI generation signatures.</i>")
		case models.VerdictManipulated:
			b.WriteString(
				"• This photo was altered, it's not your fault\n" +
					"• Do NOT pay or send anything\n" +
					"• Save this analysis and tell a trusted adult\n\n" +
					"<i>Detected manipulation/editing patterns.</i>")
		case models.VerdictReal:
			b.WriteString(
				"• Whatever this photo shows, you still have options\n" +
					"• Do NOT pay the blackmailer, it never stops them\n" +
					"• Tell a trusted adult and report it together\n\n" +
					"<i>You are not alone, and this is not your fault.</i>")
		default:
			b.WriteString(
				"• The analysis couldn't decide, and that's okay\n" +
					"• Talk to a trusted adult either way\n" +
					"• Report if you're being threatened\n\n" +
					"<i>Unable to determine with high confidence.</i>")
		}
		return
	}

	switch v {
	case models.VerdictAIGenerated:
		b.WriteString(
			"• <b>DO NOT</b> pay the blackmailer\n" +
				"• Save this analysis as evidence\n" +
				"• Report to authorities immediately\n" +
				"• Block the sender\n\n" +
				"<i>This image shows strong AI generation signatures.</i>")
	case models.VerdictManipulated:
		b.WriteString(
			"• This image has been altered\n" +
				"• <b>DO NOT</b> pay if being blackmailed\n" +
				"• Save as evidence and report\n\n" +
				"<i>Detected manipulation/editing patterns.</i>")
	case models.VerdictReal:
		b.WriteString(
			"• This appears to be an authentic photo\n" +
				"• Consider context and source\n" +
				"• If threatened, still report to authorities\n\n" +
				"<i>No AI or manipulation detected.</i>")
	default:
		b.WriteString(
			"• Analysis inconclusive\n" +
				"• Request manual review\n" +
				"• Report if being threatened\n\n" +
				"<i>Unable to determine with high confidence.</i>")
	}
}

var aiSoftwareIndicators = []string{
	"midjourney", "dall-e", "stable diffusion", "gemini",
	"imagen", "firefly", "generative",
}

func isAISoftware(name string) bool {
	lower := strings.ToLower(name)
	for _, ind := range aiSoftwareIndicators {
		if strings.Contains(lower, ind) {
			return true
		}
	}
	return false
}

// RenderFailure returns the body for a failed analysis, worded by
// failure kind.
func RenderFailure(kind models.FailureKind) string {
	var detail string
	switch kind {
	case models.FailureTimeout:
		detail = "The analysis took too long and was stopped."
	case models.FailureUnavailable:
		detail = "The analysis service is temporarily unavailable."
	default:
		detail = "Something went wrong while processing your image."
	}
	return "❌ <b>Analysis Failed</b>\n\n" +
		detail + "\n" +
		"Your check was not charged.\n\n" +
		"Please try again or contact support: /support"
}

// PDFCaption builds the caption attached to a forensic PDF document.
func PDFCaption(analysisID string, v models.Verdict, confidence float64, generated time.Time) string {
	return fmt.Sprintf(
		"📄 Forensic Analysis Report\n"+
			"Analysis ID: %s\n"+
			"Verdict: %s\n"+
			"Confidence: %.1f%%\n"+
			"Generated: %s",
		analysisID, VerdictLabel(v), confidence*100, generated.UTC().Format("2006-01-02 15:04 UTC"))
}
