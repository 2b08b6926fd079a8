package rabbitmq

const (
	RoutingKeyVideoJob = "media.video.generate"
	ConsumerTagVideo   = "spyglass-video-worker"

	DefaultPrefetchCount = 2

	// Malformed jobs are dead-lettered to "<exchange>.dlx" and parked in
	// "<queue>.dead" for inspection.
	DeadLetterExchangeSuffix = ".dlx"
	DeadLetterQueueSuffix    = ".dead"
)
