package http

import "context"

// answeredConfirmer replays a confirmation the client already gave with the
// request, so the deletion commands can ask without a round trip.
type answeredConfirmer bool

func confirmerFrom(confirm *bool) answeredConfirmer {
	return answeredConfirmer(confirm != nil && *confirm)
}

func (a answeredConfirmer) Confirm(_ context.Context, _ string) (bool, error) {
	return bool(a), nil
}
