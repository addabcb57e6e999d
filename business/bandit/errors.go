package bandit

import "errors"

var (
	// ErrEmptyHistory is returned when an allocation is requested over
	// historical info with no sampled arms.
	ErrEmptyHistory = errors.New("historical info has no sampled arms")

	// ErrInvalidAllocation signals a broken contract between AllocateArms and
	// ChooseArm: the allocation is empty or its values do not sum to ~1.
	ErrInvalidAllocation = errors.New("allocation is empty or does not sum to 1")

	// ErrUnknownSubtype is returned when no strategy is registered for the
	// requested subtype tag.
	ErrUnknownSubtype = errors.New("unknown bandit subtype")

	// ErrInvalidHyperparameters is returned when hyperparameter_info fields
	// are out of range or of the wrong type.
	ErrInvalidHyperparameters = errors.New("invalid hyperparameters")
)
