package mpris

// InvalidEndpointError indicates a service did not answer the validity probe.
type InvalidEndpointError struct {
	Service string
}

func (e *InvalidEndpointError) Error() string {
	return "player endpoint not valid: " + e.Service
}

// InvalidReplyError indicates a property read produced no usable value.
type InvalidReplyError struct {
	Property string
}

func (e *InvalidReplyError) Error() string {
	return "invalid reply for property " + e.Property
}
