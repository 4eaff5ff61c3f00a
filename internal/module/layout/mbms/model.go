package mbms

import (
	"context"
	"time"
)

// Model is the contract every decision model in the service implements.
// The registry manages models by name; services call Validate before Execute.
type Model interface {
	// Name returns the unique model name used by the registry.
	Name() string

	// Description returns a short summary of what the model computes.
	Description() string

	// Validate checks the input before execution and returns an error when
	// it does not meet the model's requirements.
	Validate(ctx context.Context, input interface{}) error

	// Execute runs the model on validated input. The context allows the
	// caller to cancel long-running executions.
	Execute(ctx context.Context, input interface{}) (interface{}, error)
}

// ModelMetadata tracks one model execution for auditing and debugging.
type ModelMetadata struct {
	ModelName   string        `json:"model_name"`
	ExecutionID string        `json:"execution_id"`
	StartTime   time.Time     `json:"start_time"`
	EndTime     time.Time     `json:"end_time"`
	Duration    time.Duration `json:"duration"`
	Status      string        `json:"status"` // "success", "failed", "cancelled"
	ErrorMsg    string        `json:"error_message,omitempty"`
}

// ModelResult wraps a model output together with its execution metadata.
type ModelResult struct {
	Output   interface{}   `json:"output"`
	Metadata ModelMetadata `json:"metadata"`
}

// ResultCache caches model results keyed by a digest of the input, so a
// repeated solve with identical input skips the model entirely.
type ResultCache interface {
	// Set stores a result under key with a TTL.
	Set(ctx context.Context, key string, result *ModelResult, ttl time.Duration) error

	// Get returns the cached result, or (nil, nil) on a cache miss.
	Get(ctx context.Context, key string) (*ModelResult, error)

	// Invalidate removes one cached result.
	Invalidate(ctx context.Context, key string) error

	// Clear removes every cached result of this cache's namespace.
	Clear(ctx context.Context) error
}
