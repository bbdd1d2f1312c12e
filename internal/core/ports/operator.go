package ports

import "context"

// Confirmer asks the operator a blocking yes/no question before a destructive
// operation. A false answer with a nil error means the operator declined.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// Alerter raises a failure the operator must acknowledge. Only destructive
// operations alert; everything else fails quietly into the log.
type Alerter interface {
	Alert(ctx context.Context, message string)
}
