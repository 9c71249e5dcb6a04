package domain

// Gender values as stored on profiles. Anything else disables the
// opposite-gender rule during matching.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// InterestStatus is the lifecycle state of a connection request.
type InterestStatus string

const (
	InterestPending  InterestStatus = "pending"
	InterestAccepted InterestStatus = "accepted"
	InterestRejected InterestStatus = "rejected"
)

// Notification event types emitted by the dispatcher.
const (
	NotifInterestReceived = "interest_received"
	NotifInterestAccepted = "interest_accepted"
	NotifFavorited        = "favorited"
	NotifNewMessage       = "new_message"
)

// Notifiable kinds for the weak {kind, id} reference on notifications.
const (
	NotifiableInterest     = "interest"
	NotifiableFavorite     = "favorite"
	NotifiableMessage      = "message"
	NotifiableConversation = "conversation"
)

// Audit actions.
const (
	AuditInterestCancelled = "INTEREST_CANCELLED"
	AuditReportCreated     = "REPORT_CREATED"
)
