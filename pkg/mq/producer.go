package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/rabbitmq/amqp091-go"
)

type Producer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewProducer(rabbitmqURL string) (*Producer, error) {
	conn, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	producer := &Producer{
		conn:    conn,
		channel: ch,
	}

	// 声明exchange和queue
	if err := producer.setupTopology(); err != nil {
		producer.Close()
		return nil, fmt.Errorf("failed to setup topology: %w", err)
	}

	return producer, nil
}

func (p *Producer) setupTopology() error {
	err := p.channel.ExchangeDeclare(
		VideoViewExchange,
		"direct",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare video view exchange: %w", err)
	}

	_, err = p.channel.QueueDeclare(
		VideoViewQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare video view queue: %w", err)
	}

	err = p.channel.QueueBind(
		VideoViewQueue,
		"",
		VideoViewExchange,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to bind video view queue: %w", err)
	}

	return nil
}

func (p *Producer) PublishVideoView(ctx context.Context, event *VideoViewEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal video view event: %w", err)
	}

	err = p.channel.PublishWithContext(
		ctx,
		VideoViewExchange,
		"",    // routing key
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish video view event: %w", err)
	}

	hlog.Debugf("Published video view event: video_id=%d user_id=%d", event.VideoId, event.UserId)
	return nil
}

func (p *Producer) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}

// GlobalProducer 全局生产者实例
var GlobalProducer *Producer

func InitProducer(rabbitmqURL string) error {
	producer, err := NewProducer(rabbitmqURL)
	if err != nil {
		return err
	}
	GlobalProducer = producer
	return nil
}
