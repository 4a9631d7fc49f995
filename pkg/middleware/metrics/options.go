package metrics

import "net/http"

// Unmatched labels requests that hit no registered route.
const Unmatched = "unmatched"

type options struct {
	routeLabel func(*http.Request) string
}

// Option customises Collect.
type Option func(*options)

// WithRouteLabel sets how a request maps to its route label. Return a
// registered path or Unmatched; raw paths would explode label cardinality.
func WithRouteLabel(fn func(*http.Request) string) Option {
	return func(o *options) {
		if fn != nil {
			o.routeLabel = fn
		}
	}
}

func defaultOptions() options {
	return options{routeLabel: func(*http.Request) string { return Unmatched }}
}
