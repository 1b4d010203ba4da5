package availability

import "errors"

// ErrContractViolation is the value panicked with when the engine is called with arguments no valid
// caller can produce: non-positive duration or granularity, malformed business hours, an invalid
// candidate time or a reservation with an inverted interval. Use cases validate input before calling.
var ErrContractViolation = errors.New("availability: contract violation")
