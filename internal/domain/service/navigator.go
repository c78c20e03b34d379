package service

import "context"

// NavigationPrimitive is one way of moving the user to a URL. Navigators list them from
// least to most forceful.
type NavigationPrimitive interface {
	// Name identifies the primitive in logs.
	Name() string

	// Go attempts the navigation. A nil error does not imply the navigation took effect.
	Go(ctx context.Context, target string) error
}

// Navigator moves the user between the login flow and the dashboard.
type Navigator interface {
	// Primitives returns the available primitives in escalation order.
	Primitives() []NavigationPrimitive

	// Arrived reports whether the last navigation to target visibly took effect.
	Arrived(ctx context.Context, target string) bool
}
