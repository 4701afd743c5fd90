package config

// Layout constants.
const (
	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 60

	// TargetNameWidth is the preferred width for member names.
	TargetNameWidth = 30

	// MinNameWidth is the minimum width for member names.
	MinNameWidth = 10
)

// Display limits.
const (
	// MaxVisibleRows limits list rows shown per view before scrolling.
	MaxVisibleRows = 15
)

// Input constraints.
const (
	// MaxNameLength is the maximum member name length.
	MaxNameLength = 100
)
