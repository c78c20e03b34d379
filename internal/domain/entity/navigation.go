package entity

// GateState is a state of the redirection gate.
type GateState string

const (
	GateCheckingAuth    GateState = "checking_auth"
	GateAuthenticated   GateState = "authenticated"
	GateUnauthenticated GateState = "unauthenticated"
	// GateManualFallback is terminal: automatic navigation gave up and the user must follow the link.
	GateManualFallback GateState = "manual_fallback"
)

// GateDecision is where the gate wants the user to be.
type GateDecision struct {
	State   GateState
	Target  string
	Tenant  TenantID
	Profile *UserProfile
}

// NavigationAttempt records one try of one navigation primitive.
type NavigationAttempt struct {
	Primitive string
	Arrived   bool
	Err       error
}

// NavigationResult is the outcome of driving a decision to completion.
type NavigationResult struct {
	State    GateState
	Target   string
	Attempts []NavigationAttempt
}
