package consumer

import (
	"spyglass-srv/internal/media"
	rabbitDelivery "spyglass-srv/internal/media/delivery/rabbitmq"
)

func toVideoJobTask(m rabbitDelivery.VideoJobMessage) media.VideoJobTask {
	return media.VideoJobTask{
		JobID:       m.JobID,
		Owner:       m.Owner,
		Prompt:      m.Prompt,
		ImageObject: m.ImageObject,
		MimeType:    m.MimeType,
		AspectRatio: m.AspectRatio,
	}
}
