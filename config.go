package depot

import "github.com/rs/zerolog"

// LateRegistration selects what Register does once entities exist.
type LateRegistration int

const (
	// LateRegistrationBackfill gives every existing entity an empty slot in the new column.
	LateRegistrationBackfill LateRegistration = iota
	// LateRegistrationReject fails with LateRegistrationError.
	LateRegistrationReject
)

// Config holds global configuration applied to storages when they are created
var Config config = config{
	logger: zerolog.Nop(),
}

type config struct {
	logger           zerolog.Logger
	lateRegistration LateRegistration
}

// SetLogger sets the logger new storages write debug events to
func (c *config) SetLogger(logger zerolog.Logger) {
	c.logger = logger
}

// SetLateRegistration configures the late registration policy for new storages
func (c *config) SetLateRegistration(policy LateRegistration) {
	c.lateRegistration = policy
}

// Reset restores the defaults.
func (c *config) Reset() {
	c.logger = zerolog.Nop()
	c.lateRegistration = LateRegistrationBackfill
}
