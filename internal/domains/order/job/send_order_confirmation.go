package job

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"autocart-backend/internal/domains/order/model"
	"autocart-backend/internal/shared/utils"
	"autocart-backend/pkg/logger"
)

// SendOrderConfirmationHandler delivers order confirmation emails. Delivery
// is simulated by a log line; the task payload carries everything a real
// mailer would need.
type SendOrderConfirmationHandler struct{}

func NewSendOrderConfirmationHandler() *SendOrderConfirmationHandler {
	return &SendOrderConfirmationHandler{}
}

func (h *SendOrderConfirmationHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload model.SendOrderConfirmationPayload
	if err := utils.UnmarshalTask(t, &payload); err != nil {
		return fmt.Errorf("failed to decode order confirmation payload: %w", err)
	}

	logger.Info("order confirmation sent", map[string]interface{}{
		"order_number": payload.OrderNumber,
		"user_id":      payload.UserID.String(),
		"email":        payload.Email,
	})
	return nil
}
