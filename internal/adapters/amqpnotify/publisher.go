package amqpnotify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"

	"github.com/pocketmoney/pocket_money_app/internal/core/domain"
	portssvc "github.com/pocketmoney/pocket_money_app/internal/core/ports/services"
)

// routingKey tags maturity events on the exchange.
const routingKey = "deposit.matured"

// DepositMaturedMessage is the event published when a deposit's total return
// is credited to the balance. Consumers (e.g. a push-notification worker) use
// it to tell the family the money is ready to collect.
type DepositMaturedMessage struct {
	DepositID   string          `json:"depositId"`
	Amount      decimal.Decimal `json:"amount"`
	TotalReturn decimal.Decimal `json:"totalReturn"`
	TermMonths  decimal.Decimal `json:"termMonths"`
	MaturedAt   time.Time       `json:"maturedAt"`
}

// Publisher emits deposit maturity events to a durable direct exchange.
type Publisher struct {
	conn         *amqp091.Connection
	channel      *amqp091.Channel
	exchangeName string
	queueName    string
}

// NewPublisher dials the broker and declares the exchange, queue and binding.
func NewPublisher(url, exchangeName, queueName string) (*Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	p := &Publisher{
		conn:         conn,
		channel:      channel,
		exchangeName: exchangeName,
		queueName:    queueName,
	}

	if err := p.setup(); err != nil {
		p.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}
	return p, nil
}

func (p *Publisher) setup() error {
	err := p.channel.ExchangeDeclare(
		p.exchangeName,
		"direct",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	_, err = p.channel.QueueDeclare(
		p.queueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	if err := p.channel.QueueBind(p.queueName, routingKey, p.exchangeName, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

var _ portssvc.MaturityNotifier = (*Publisher)(nil)

// DepositMatured publishes one maturity event as a persistent JSON message.
func (p *Publisher) DepositMatured(ctx context.Context, deposit domain.FixedDeposit) error {
	msg := DepositMaturedMessage{
		DepositID:   deposit.ID,
		Amount:      deposit.Amount,
		TotalReturn: deposit.TotalReturn,
		TermMonths:  deposit.TermMonths,
		MaturedAt:   time.Now(),
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode maturity message: %w", err)
	}

	err = p.channel.PublishWithContext(ctx,
		p.exchangeName,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		})
	if err != nil {
		return fmt.Errorf("publish maturity message: %w", err)
	}
	return nil
}

// Close releases the channel and connection.
func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
