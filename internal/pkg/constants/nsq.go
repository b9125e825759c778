package constants

// NSQ topics
const (
	// TopicAvailabilityUpdates carries provider availability toggles
	TopicAvailabilityUpdates = "availability_updates"
)
