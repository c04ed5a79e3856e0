package domain

// User roles as stored by the registration platform.
const (
	RoleHacker    = "HACKER"
	RoleAdmin     = "ADMIN"
	RoleOrganizer = "ORGANIZER"
)

// Registration statuses. Only the ones the bot branches on are listed;
// the platform also stores APPLIED, ACCEPTED, REJECTED, WAITLISTED, DECLINED.
const (
	StatusCreated   = "CREATED"
	StatusVerified  = "VERIFIED"
	StatusConfirmed = "CONFIRMED"
)

// VerificationOutcome is the result of feeding one email candidate to a
// verification dialogue.
type VerificationOutcome int

const (
	// OutcomeInvalidEmail: the candidate does not look like an email address.
	// The dialogue stays open and re-prompts.
	OutcomeInvalidEmail VerificationOutcome = iota
	// OutcomeUnknownEmail: well-formed but no matching registration.
	// The dialogue stays open and re-prompts.
	OutcomeUnknownEmail
	// OutcomeIneligible: a hacker who has not confirmed attendance. Terminal,
	// no role is granted.
	OutcomeIneligible
	// OutcomeGranted: roles assigned. Terminal.
	OutcomeGranted
)

// Terminal reports whether the outcome ends the dialogue.
func (o VerificationOutcome) Terminal() bool {
	return o == OutcomeIneligible || o == OutcomeGranted
}
