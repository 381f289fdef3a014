package notify

import "fmt"

// Static HTML bodies for commands and scenario pages. Tone is part of
// the product: adult pages are clinical and legal, teenager pages are
// reassuring and age-appropriate, general pages are educational.

const divider = "━━━━━━━━━━━━━━━━━━━━━━\n"

const WelcomeMessage = "👋 <b>Welcome to TruthSnap</b>\n\n" +
	"🛡️ <b>AI Deepfake Detection & Blackmail Protection</b>\n\n" +
	divider +
	"🚨 <b>If you're being blackmailed:</b>\n" +
	"• Get instant photo verification\n" +
	"• Generate forensic proof for authorities\n" +
	"• Access counter-measure strategies\n\n" +
	"✅ 127,453 photos verified this month\n" +
	"✅ 89% detected as AI-generated\n" +
	"✅ Trusted by victims in 47 countries\n" +
	divider + "\n" +
	"<b>Choose your scenario:</b>"

const WelcomeShortMessage = "👋 <b>Welcome to TruthSnap</b>\n\n" +
	"🛡️ <b>AI Deepfake Detection & Blackmail Protection</b>\n\n" +
	divider +
	"<b>Choose your scenario:</b>"

const HelpMessage = "<b>📖 How to use TruthSnap:</b>\n\n" +
	"1. Send any photo to verify\n" +
	"2. Wait 20-30 seconds for analysis\n" +
	"3. Receive verdict + confidence score\n\n" +
	"<b>Commands:</b>\n" +
	"/start - Start bot\n" +
	"/help - Show this help\n" +
	"/status - Check your plan\n\n" +
	"<b>Free Tier:</b>\n" +
	"• 3 checks per day\n" +
	"• Basic verdict\n\n" +
	"<b>Pro Tier:</b>\n" +
	"• Unlimited checks\n" +
	"• Detailed forensic reports\n" +
	"• PDF downloads\n" +
	"• Priority processing\n\n" +
	"Need help? Contact: /support"

const SupportMessage = "<b>🆘 Support</b>\n\n" +
	"Need help? Contact us:\n\n" +
	"📧 Email: support@truthsnap.ai\n" +
	"🐦 Twitter: @TruthSnapBot\n" +
	"💬 Telegram: @TruthSnapSupport\n\n" +
	"Response time: &lt; 24 hours"

// AdultIntroMessage opens the adult blackmail flow. Clinical register.
const AdultIntroMessage = "👤 <b>Digital Blackmail - Adult/General</b>\n\n" +
	"🎯 <b>Objective:</b> Legal evidence & blackmailer blocking\n\n" +
	divider +
	"<b>Step 1: Evidence Analysis</b>\n\n" +
	"📸 Please send the blackmail photo NOW\n\n" +
	"You will receive:\n" +
	"• AI Detection Score (0-100%)\n" +
	"• Manipulation Status (AUTHENTIC/MANIPULATED)\n" +
	"• SHA-256 Hash for legal proof\n" +
	"• Report ID for authorities\n\n" +
	"💡 <b>Best accuracy:</b> Send as FILE (not photo)\n" +
	"   → Preserves all metadata for forensic analysis"

// TeenIntroMessage opens the teenager flow. Reassuring register.
const TeenIntroMessage = "🆘 <b>I Need Help (Teenager Support)</b>\n\n" +
	divider +
	"<b>Step 1: Breathe. You're Safe.</b>\n\n" +
	"This happens to many people, and <b>it's not your fault</b>.\n\n" +
	"Let's look at the facts together:\n\n" +
	"1️⃣ Most blackmail photos are AI-generated fakes\n" +
	"2️⃣ You have rights and legal protection\n" +
	"3️⃣ Telling a trusted adult makes this easier\n" +
	"4️⃣ We can help you stop the spread\n\n" +
	divider +
	"📸 <b>Next step:</b> Send the photo\n\n" +
	"I'll analyze it and show you the technical proof\n" +
	"that it's likely fake."

const TeenIntroToast = "You're safe. Let's take this step by step."

const TeenReadyMessage = "📸 <b>Send the photo now</b>\n\n" +
	"I'll analyze it and show you the technical proof.\n\n" +
	"Remember: whatever it shows, none of this is your fault.\n\n" +
	"💡 Tip: sending it as a FILE keeps all the hidden data\n" +
	"that makes the strongest evidence."

const CounterMeasuresMessage = "🛡️ <b>Counter-Measures</b>\n\n" +
	"<b>Available strategies:</b>\n\n" +
	"💬 <b>Safe Response Generator</b>\n" +
	"   → AI-crafted responses that cite your forensic evidence\n\n" +
	"🚫 <b>StopNCII</b>\n" +
	"   → Report intimate images to prevent online spread\n" +
	"   → Works with major platforms (Facebook, Instagram, etc.)\n\n" +
	"🚨 <b>FBI IC3</b>\n" +
	"   → Official Internet Crime Complaint Center\n" +
	"   → For US-based incidents\n\n" +
	"📄 <b>Forensic PDF</b>\n" +
	"   → Legal-grade report with SHA-256 hash\n" +
	"   → Acceptable as supporting evidence in court\n\n" +
	divider +
	"⚠️ <b>Important:</b> Never pay a blackmailer.\n" +
	"Payment increases demands and funds criminal networks."

const TellParentsMessage = "🤝 <b>How to Tell Your Parents</b>\n\n" +
	divider + "\n" +
	"<b>Why tell them?</b>\n\n" +
	"• They can help you report this\n" +
	"• They can contact the police if needed\n" +
	"• You don't have to handle this alone\n" +
	"• It's easier when you have proof\n\n" +
	divider + "\n" +
	"<b>What to say:</b>\n\n" +
	"\"I need to show you something serious. " +
	"Someone sent me a fake photo and is trying to blackmail me with it. " +
	"I got it analyzed by TruthSnap, and here's the proof it's AI-generated.\"\n\n" +
	"Then show them the PDF report.\n\n" +
	divider + "\n" +
	"<b>Remember:</b>\n" +
	"• Your parents will probably be shocked at first\n" +
	"• They might be angry at the blackmailer, not you\n" +
	"• Having the report makes this conversation much easier\n" +
	"• This happens to thousands of people - you're not alone\n\n" +
	"📄 Click below to get the PDF report to show them."

const StopSpreadMessage = "🚫 <b>Stop the Spread</b>\n\n" +
	divider + "\n" +
	"<b>What is Take It Down?</b>\n\n" +
	"Take It Down is a FREE service by NCMEC (National Center for Missing & Exploited Children).\n\n" +
	"It helps remove intimate images from Facebook, Instagram, TikTok, Snapchat, and 20+ other platforms.\n\n" +
	divider + "\n" +
	"<b>How does it work?</b>\n\n" +
	"1. You create a \"hash\" of the image (a unique fingerprint)\n" +
	"2. NCMEC shares that hash with platforms\n" +
	"3. Platforms automatically block it from being uploaded\n\n" +
	"<b>Important:</b> You DON'T upload the actual photo!\n" +
	"The hash is created on YOUR device, privately.\n\n" +
	divider + "\n" +
	"<b>Is it anonymous?</b>\n\n" +
	"Yes! You can use it WITHOUT giving your name, showing your face, or filing a police report.\n\n" +
	divider + "\n" +
	"⚠️ <b>Important:</b>\n" +
	"• Do NOT pay the blackmailer\n" +
	"• Do NOT send more photos\n" +
	"• Block them on all platforms\n" +
	"• Save screenshots of their messages (evidence)\n\n" +
	"You're taking control by using these tools. 💪"

const TeenEducationMessage = "📚 <b>What is Sextortion?</b>\n\n" +
	divider + "\n" +
	"<b>Definition:</b>\n\n" +
	"Sextortion = Sexual + Extortion\n\n" +
	"It's when someone threatens to share intimate photos/videos " +
	"unless you send them money, more photos, or do what they want.\n\n" +
	divider + "\n" +
	"<b>The truth about sextortion:</b>\n\n" +
	"• <b>89% of blackmail photos are AI-generated fakes</b>\n" +
	"• Scammers use this on THOUSANDS of people\n" +
	"• Paying doesn't stop them - it proves you're a target\n\n" +
	divider + "\n" +
	"<b>Why you shouldn't feel ashamed:</b>\n\n" +
	"1. <b>It's not your fault.</b> Scammers are professionals.\n" +
	"2. <b>It happens to everyone.</b> FBI reports 7,000+ cases/year\n" +
	"3. <b>The photo is probably fake.</b> TruthSnap proves this\n\n" +
	divider + "\n" +
	"✅ <b>DO:</b> tell a trusted adult, save screenshots, block the blackmailer, report to FBI/NCMEC\n" +
	"❌ <b>DON'T:</b> pay money, send more photos, keep it secret\n\n" +
	"💙 <b>You're going to be okay.</b>"

const ConversationScriptMessage = "💬 <b>Conversation Script</b>\n\n" +
	divider + "\n" +
	"<b>Step 1: Choose the right time</b>\n\n" +
	"• When they're not busy or stressed\n" +
	"• In private (not in front of siblings)\n\n" +
	"<b>Step 2: Opening line</b>\n\n" +
	"\"Mom/Dad, I need to talk to you about something serious. " +
	"I'm okay, but I need your help with something.\"\n\n" +
	"<b>Step 3: Explain what happened</b>\n\n" +
	"\"Someone online created a fake photo of me and is trying to " +
	"blackmail me. I didn't do anything wrong, but I'm scared.\"\n\n" +
	"<b>Step 4: Show the evidence</b>\n\n" +
	"\"I used TruthSnap to analyze the photo. " +
	"Here's the report - it proves the photo is AI-generated.\"\n\n" +
	divider + "\n" +
	"💡 <b>Final tip:</b> If you absolutely can't tell your parents, " +
	"talk to another trusted adult: a school counselor, teacher, " +
	"older sibling, or coach.\n\n" +
	"You don't have to do this alone."

const KnowledgeBaseMessage = "📚 <b>Knowledge Base</b>\n\n" +
	divider + "\n" +
	"<b>🤖 How AI Deepfakes Work</b>\n\n" +
	"Deepfakes use neural networks to:\n" +
	"• Swap faces in photos/videos\n" +
	"• Generate realistic but fake images\n\n" +
	"Common techniques:\n" +
	"- GAN (Generative Adversarial Networks)\n" +
	"- Face-swap models (DeepFaceLab, FaceSwap)\n" +
	"- Stable Diffusion / Midjourney for full synthesis\n\n" +
	divider + "\n" +
	"<b>🔍 Detection Methods</b>\n\n" +
	"Our analysis uses:\n" +
	"1. <b>EXIF metadata</b> - Camera fingerprints\n" +
	"2. <b>FFT analysis</b> - Frequency patterns\n" +
	"3. <b>Face-swap detection</b> - Geometric inconsistencies\n" +
	"4. <b>AI watermarks</b> - Hidden signatures\n\n" +
	divider + "\n" +
	"<b>⚠️ Why Professional Editing Matters</b>\n\n" +
	"Edited photos may show false positives because:\n" +
	"• Filters alter frequency patterns\n" +
	"• Cropping removes EXIF data\n" +
	"• Compression changes artifacts\n\n" +
	"This is why our disclaimer states:\n" +
	"\"<i>This analysis is probabilistic, not definitive proof</i>\"\n\n" +
	divider + "\n" +
	"<b>🚨 Where to Report</b>\n\n" +
	"• <b>FBI IC3:</b> ic3.gov\n" +
	"• <b>StopNCII:</b> stopncii.org\n" +
	"• <b>NCMEC (under 18):</b> cybertip.org\n" +
	"• <b>Local police:</b> Bring forensic report"

const WhatIsAIMessage = "🤖 <b>What is AI-generated content?</b>\n\n" +
	divider + "\n" +
	"AI image generators (Stable Diffusion, Midjourney, DALL-E, Imagen) " +
	"create photorealistic pictures from text prompts. Face-swap tools " +
	"graft one person's face onto another body.\n\n" +
	"Telltale technical traces:\n" +
	"• No camera metadata (a real photo records make, model, settings)\n" +
	"• Generator watermarks, visible or embedded\n" +
	"• Frequency patterns no camera sensor produces\n" +
	"• Geometry errors around ears, teeth, and hands\n\n" +
	"TruthSnap checks all of these and scores the combined evidence."

const SpotFakesMessage = "🔍 <b>How to spot fake images</b>\n\n" +
	divider + "\n" +
	"Quick checks you can do yourself:\n\n" +
	"1. <b>Zoom into details</b> - hands, teeth, jewelry, text in the background\n" +
	"2. <b>Check lighting</b> - shadows pointing in different directions\n" +
	"3. <b>Look for watermarks</b> - small logos in corners\n" +
	"4. <b>Reverse image search</b> - the \"original\" may already exist\n" +
	"5. <b>Ask for the file</b> - a real photo has camera metadata; " +
	"screenshots and re-exports don't\n\n" +
	"When in doubt, send it here and get a forensic answer."

const SafeResponseMessage = "<b>💬 Safe Response Templates</b>\n\n" +
	"Copy and customize these responses:\n\n" +
	divider + "\n" +
	"<b>1. Professional - Forensic Evidence</b>\n\n" +
	"<code>I have submitted your image to professional forensic analysis. " +
	"The report confirms it is AI-generated with a confidence score of [X]%. " +
	"I have documented this incident with:\n\n" +
	"• SHA-256 hash: [HASH]\n" +
	"• Report ID: [ID]\n" +
	"• Timestamp: [TIME]\n\n" +
	"This has been reported to cybercrime authorities. " +
	"Any further contact will be forwarded to law enforcement.</code>\n\n" +
	divider + "\n" +
	"<b>2. Legal Notice</b>\n\n" +
	"<code>This constitutes formal notice:\n\n" +
	"1. I have forensic proof this image is fabricated\n" +
	"2. All communications have been logged and preserved\n" +
	"3. This incident has been reported to the FBI Internet Crime " +
	"Complaint Center (IC3)\n\n" +
	"Extortion is a federal crime under 18 U.S.C. § 875.\n" +
	"Cease all contact immediately.</code>\n\n" +
	divider + "\n" +
	"<b>3. Brief - No Negotiation</b>\n\n" +
	"<code>I have proof this is AI-generated.\n" +
	"Forensic report filed with authorities.\n" +
	"Do not contact me again.</code>\n\n" +
	divider + "\n" +
	"⚠️ <b>Usage notes:</b>\n" +
	"• Replace [X], [HASH], [ID], [TIME] with actual data from your report\n" +
	"• Send ONCE, then block the blackmailer\n" +
	"• Do not engage in conversation\n" +
	"• Save all communications as evidence"

// User-facing middleware and pipeline refusals.

const QuotaExhaustedMessage = "🚫 <b>Daily limit reached</b>\n\n" +
	"You've used all 3 free checks today.\n" +
	"Your quota resets at midnight UTC.\n\n" +
	"💎 Pro accounts get unlimited checks."

const OverloadedMessage = "⏳ <b>Temporarily overloaded</b>\n\n" +
	"Too many analyses are queued right now.\n" +
	"Nothing was charged. Please try again in a few minutes."

const UploadFailedMessage = "❌ Upload failed. Please try again."

// RateLimitedMessage tells the user how long to wait.
func RateLimitedMessage(waitSeconds int) string {
	return fmt.Sprintf("⏳ Too many requests, wait %d seconds", waitSeconds)
}

// DuplicateMessage references the prior analysis for a repeated upload.
func DuplicateMessage(analysisID string) string {
	return fmt.Sprintf(
		"♻️ <b>Duplicate detected</b>\n\n"+
			"You already analyzed this image recently.\n"+
			"Reusing prior analysis <code>%s</code>.\n\n"+
			"No check was charged.", analysisID)
}

// UnsupportedMediaMessage explains a rejected upload.
func UnsupportedMediaMessage(reason string) string {
	return fmt.Sprintf("❌ %s\n\nPlease send JPEG, PNG, WebP, HEIC, or MPO images only.", reason)
}

// TooLargeMessage explains the size rejection.
func TooLargeMessage(maxMB int) string {
	return fmt.Sprintf("❌ Image is too large. The limit is %d MB.\n\n"+
		"Try sending it as a compressed photo instead of a file.", maxMB)
}
