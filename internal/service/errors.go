package service

// InvalidStatusError reports a status-update request whose value is not a
// member of the entity's status set. Transitions between members stay
// unrestricted; only membership is enforced.
type InvalidStatusError struct {
	Status string
}

func (e *InvalidStatusError) Error() string {
	return "invalid status: " + e.Status
}
