package adapter

import "errors"

var (
	// ErrRejected is returned when the node refuses a request with a 4xx
	// status, e.g. insufficient funds or an invalid transaction. The node's
	// detail message is attached by wrapping.
	ErrRejected = errors.New("request rejected by node")

	// ErrNodeUnavailable is returned for transport failures and 5xx statuses.
	ErrNodeUnavailable = errors.New("node unavailable")
)
