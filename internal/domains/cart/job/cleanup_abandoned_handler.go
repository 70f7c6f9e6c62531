package job

import (
	"context"
	"fmt"

	"autocart-backend/internal/domains/cart/model"
	repo "autocart-backend/internal/domains/cart/repository"
	"autocart-backend/internal/shared/utils"
	"autocart-backend/pkg/logger"

	"github.com/hibiken/asynq"
)

// CleanupAbandonedCartHandler drops anonymous session carts whose delayed
// cleanup task has come due without a checkout in between.
type CleanupAbandonedCartHandler struct {
	repository repo.RepositoryInterface
}

func NewCleanupAbandonedCartHandler(repository repo.RepositoryInterface) *CleanupAbandonedCartHandler {
	return &CleanupAbandonedCartHandler{repository: repository}
}

func (h *CleanupAbandonedCartHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload model.CleanupAbandonedCartPayload
	if err := utils.UnmarshalTask(t, &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	if err := h.repository.Delete(ctx, payload.Owner); err != nil {
		return fmt.Errorf("delete abandoned cart: %w", err)
	}

	logger.Info("Removed abandoned cart", map[string]interface{}{
		"owner": payload.Owner,
	})
	return nil
}
