package models

// Verdict is the final classification of an analyzed image.
type Verdict string

const (
	VerdictReal         Verdict = "real"
	VerdictAIGenerated  Verdict = "ai_generated"
	VerdictManipulated  Verdict = "manipulated"
	VerdictInconclusive Verdict = "inconclusive"
)

// String implements fmt.Stringer.
func (v Verdict) String() string {
	return string(v)
}

// Tier is a user's subscription tier.
type Tier string

const (
	TierFree Tier = "free"
	TierPro  Tier = "pro"
)

// Priority orders jobs inside the queue. Workers always drain higher
// priorities first.
type Priority string

const (
	PriorityHigh    Priority = "high"
	PriorityDefault Priority = "default"
	PriorityLow     Priority = "low"
)

// PriorityForTier maps a subscription tier to its queue priority.
func PriorityForTier(tier Tier) Priority {
	if tier == TierPro {
		return PriorityHigh
	}
	return PriorityDefault
}
