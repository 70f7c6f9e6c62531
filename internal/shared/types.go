package shared

// Asynq task types shared between the API and the worker
const (
	TypeSendOrderConfirmation = "order:confirmation"
	TypeCleanupAbandonedCart  = "cart:abandoned"
)
