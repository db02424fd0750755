package communication

// QueueDeclarationConfig contains the parameters to declare a RabbitMQ queue
type QueueDeclarationConfig struct {
	Name             string `yaml:"name"`
	Durable          bool   `yaml:"durable"`
	DeleteWhenUnused bool   `yaml:"delete_when_unused"`
	Exclusive        bool   `yaml:"exclusive"`
	NoWait           bool   `yaml:"no_wait"`
}

// PublishingConfig config use it for publishing messages in a RabbitMQ queue
type PublishingConfig struct {
	Mandatory  bool `yaml:"mandatory"`
	Immediate  bool `yaml:"immediate"`
	Persistent bool `yaml:"persistent"`
}
