package qubit

import "errors"

var (
	// ErrChannelFull is returned by Send when the channel already holds its
	// full capacity of in-flight registers.
	ErrChannelFull = errors.New("qubit: channel full")

	// ErrChannelEmpty is returned by Receive when no register is in flight.
	ErrChannelEmpty = errors.New("qubit: channel empty")
)

// A Channel is an in-process quantum link: it hands registers from the
// preparing party to the measuring party unchanged. A lossy or adversarial
// link would present the same Send/Receive surface.
type Channel struct {
	pending chan *Register
}

// NewChannel returns a channel that can hold up to capacity registers in
// flight at once.
func NewChannel(capacity int) *Channel {
	return &Channel{pending: make(chan *Register, capacity)}
}

// Send places r on the channel. It never blocks.
func (c *Channel) Send(r *Register) error {
	select {
	case c.pending <- r:
		return nil
	default:
		return ErrChannelFull
	}
}

// Receive takes the oldest in-flight register off the channel. It never
// blocks.
func (c *Channel) Receive() (*Register, error) {
	select {
	case r := <-c.pending:
		return r, nil
	default:
		return nil, ErrChannelEmpty
	}
}
