package rabbitmq

// QueueConfig описывает очередь и ключ маршрутизации для её привязки.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// GetNotificationQueues возвращает конфигурацию очередей уведомлений.
func GetNotificationQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: "notification.renewal", RoutingKey: "renewal"},
		// при необходимости дополнительные очереди для других воркеров
	}
}
