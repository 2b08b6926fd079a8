package kafka

const (
	// TopicAnalysisEvents is the default topic; config kafka.topic overrides it.
	TopicAnalysisEvents = "spyglass.analysis.events"

	EventTypeAnalysisCompleted = "analysis.completed"
)
