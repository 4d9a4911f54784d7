package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/rabbitmq/amqp091-go"
)

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

type VideoViewEventHandler interface {
	HandleVideoViewEvent(ctx context.Context, event *VideoViewEvent) error
}

func NewConsumer(rabbitmqURL string) (*Consumer, error) {
	conn, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	// 设置QoS 限制未确认消息数量
	err = ch.Qos(
		10,    // prefetch count
		0,     // prefetch size
		false, // global
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}

	consumer := &Consumer{
		conn:    conn,
		channel: ch,
	}

	return consumer, nil
}

func (c *Consumer) ConsumeVideoViewEvents(ctx context.Context, handler VideoViewEventHandler) error {
	msgs, err := c.channel.Consume(
		VideoViewQueue,
		"",    // consumer
		false, // auto-ack (手动确认)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("failed to register a consumer: %w", err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				hlog.Info("Video view event consumer context cancelled")
				return
			case d, ok := <-msgs:
				if !ok {
					hlog.Info("Video view event consumer channel closed")
					return
				}

				// 播放数与观看历史的更新失败只记录日志 不影响请求链路
				if err := applyVideoViewEvent(ctx, handler, d.Body); err != nil {
					hlog.Errorf("Failed to process video view event: %v", err)
					d.Nack(false, false) // 拒绝消息 不重新入队
					continue
				}
				d.Ack(false)
			}
		}
	}()

	return nil
}

// applyVideoViewEvent 解码消息体并交给处理器 解码失败的消息不可恢复 不重新入队
func applyVideoViewEvent(ctx context.Context, handler VideoViewEventHandler, body []byte) error {
	var event VideoViewEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("failed to unmarshal video view event: %w", err)
	}
	return handler.HandleVideoViewEvent(ctx, &event)
}

func (c *Consumer) Close() {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
}
