package constants

// Calculator defaults. The UI used to re-derive these per screen; every
// engine call site must read them from here so the cost aggregator and the
// labor allocator never disagree.
const (
	// OwnerWorkerID is the distinguished worker that always exists and cannot
	// be deleted. Every dangling assignment falls back to it.
	OwnerWorkerID = "owner"

	// MachineTimeKey is the time-breakdown entry costed as machine time
	// instead of labor.
	MachineTimeKey = "machine"

	// WeeksPerMonth converts weekly hours to monthly and back.
	WeeksPerMonth = 4.33

	// DefaultMachineHourlyRate applies when a product has no machine rate,
	// so machine time is never free.
	DefaultMachineHourlyRate = 5.0

	// DefaultHourlyRate is the last step of the rate fallback chain
	// (product assignment -> global rate -> owner rate -> this).
	DefaultHourlyRate = 25.0
)
