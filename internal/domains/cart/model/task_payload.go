package model

// CleanupAbandonedCartPayload asks the worker to drop an anonymous session
// cart that was never checked out.
type CleanupAbandonedCartPayload struct {
	Owner string `json:"owner"`
}
