package config

import "os"

// WindowMode controls how multiple availability windows on the same weekday
// are turned into slots.
type WindowMode string

const (
	// WindowsIndependent enumerates each window on its own and concatenates
	// the results in time order.
	WindowsIndependent WindowMode = "independent"
	// WindowsMerged merges overlapping or touching windows into single spans
	// before enumeration.
	WindowsMerged WindowMode = "merged"
)

// SlotWindowMode reads SLOT_WINDOW_MODE, defaulting to independent
// enumeration. Unknown values fall back to the default.
func SlotWindowMode() WindowMode {
	if os.Getenv("SLOT_WINDOW_MODE") == string(WindowsMerged) {
		return WindowsMerged
	}
	return WindowsIndependent
}

// RemindersEnabled reports whether the SMS reminder scheduler should run.
func RemindersEnabled() bool {
	return os.Getenv("REMINDERS_ENABLED") == "true"
}
