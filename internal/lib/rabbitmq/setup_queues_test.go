package rabbitmq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetNotificationQueues(t *testing.T) {
	queues := GetNotificationQueues()

	assert.NotEmpty(t, queues)
	assert.Equal(t, "notification.renewal", queues[0].QueueName)
	assert.Equal(t, "renewal", queues[0].RoutingKey)
}
