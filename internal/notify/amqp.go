package notify

import "github.com/bhanu75/Event-booking/pkg/rabbitmq"

// AMQPSink hands jobs to RabbitMQ so an external mailer can consume them.
type AMQPSink struct {
	pub *rabbitmq.Publisher
}

func NewAMQPSink(pub *rabbitmq.Publisher) *AMQPSink {
	return &AMQPSink{pub: pub}
}

func (s *AMQPSink) Deliver(job Job) error {
	return s.pub.Publish("notify."+string(job.Kind), job)
}
