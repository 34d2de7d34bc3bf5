package model

// Delivery channels for outbound communication. Templates may additionally
// target both channels at once.
const (
	ChannelEmail    = "email"
	ChannelLinkedIn = "linkedin"
	ChannelBoth     = "both"
)

// Template categories.
const (
	CategoryFollowUp     = "follow-up"
	CategoryIntroduction = "introduction"
	CategoryProposal     = "proposal"
	CategoryCheckIn      = "check-in"
)

// Follow-up priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)
