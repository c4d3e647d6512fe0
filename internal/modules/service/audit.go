package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/staffdesk-io/staffdesk/internal/config"
	mq "github.com/staffdesk-io/staffdesk/internal/infra/queue"
	"github.com/staffdesk-io/staffdesk/internal/modules/model"
	"github.com/staffdesk-io/staffdesk/internal/modules/repo"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// AuditEvent is the queued form of one committed mutation.
type AuditEvent struct {
	Table   string                 `json:"table"`
	Action  string                 `json:"action"`
	RowID   uuid.UUID              `json:"row_id"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

// publishAudit queues a mutation record for the audit worker. Best effort: a
// queue failure is logged and never fails the mutation itself.
func publishAudit(ctx context.Context, conn *amqp.Connection, queueName string, log *zap.Logger, ev AuditEvent) {
	if conn == nil {
		return
	}
	p, err := mq.NewPublisher(conn, queueName, log)
	if err != nil {
		log.Sugar().Warnw("create audit publisher", "err", err)
		return
	}
	defer p.Close()
	if err := p.PublishJSON(ctx, ev); err != nil {
		log.Sugar().Warnw("publish audit event", "err", err)
	}
}

// AuditWorker drains the audit queue into the audit_entries table.
type AuditWorker struct {
	conn     *amqp.Connection
	r        repo.AuditRepo
	queue    string
	prefetch int
	log      *zap.Logger
}

func NewAuditWorker(cfg *config.Config, conn *amqp.Connection, r repo.AuditRepo, log *zap.Logger) *AuditWorker {
	return &AuditWorker{
		conn:     conn,
		r:        r,
		queue:    cfg.RabbitMQ.Queue,
		prefetch: cfg.RabbitMQ.Prefetch,
		log:      log,
	}
}

// Run consumes until ctx is cancelled.
func (w *AuditWorker) Run(ctx context.Context) error {
	if w.conn == nil {
		return nil
	}
	c, err := mq.NewConsumer(w.conn, w.queue, w.prefetch, w.log)
	if err != nil {
		return fmt.Errorf("create audit consumer: %w", err)
	}
	return c.Consume(ctx, func(ctx context.Context, body []byte) error {
		var ev AuditEvent
		if err := json.Unmarshal(body, &ev); err != nil {
			return fmt.Errorf("decode audit event: %w", err)
		}
		return w.r.Create(ctx, &model.AuditEntry{
			Table:   ev.Table,
			Action:  ev.Action,
			RowID:   ev.RowID,
			Payload: datatypes.JSONMap(ev.Payload),
		})
	})
}
