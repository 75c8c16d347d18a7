package checkout

// StepStatus classifies the outcome of one pipeline step. The fatal vs.
// degraded distinction is the contract: degraded steps never change the
// checkout's reported outcome.
type StepStatus int

const (
	StepOK StepStatus = iota
	StepDegraded
	StepFatal
)

const (
	StepPersistItems      = "persist_items"
	StepCreateFulfillment = "create_fulfillment"
	StepMarkFulfilled     = "mark_fulfilled"
	StepNotificationEmail = "notification_email"
	StepConfirmationEmail = "confirmation_email"
)

type StepResult struct {
	Name   string
	Status StepStatus
	Err    error
}
