package notify

import (
	"context"
	"fmt"
	"io"
)

// Channel delivers a message to one recipient over one transport.
type Channel interface {
	Name() string
	Send(ctx context.Context, recipient, message string) error
}

// stubChannel is the demo transport: it writes a tagged block to out.
// Console, email, SMS and push differ only in their tag.
type stubChannel struct {
	name string
	tag  string
	out  io.Writer
}

func (c *stubChannel) Name() string {
	return c.name
}

func (c *stubChannel) Send(ctx context.Context, recipient, message string) error {
	_, err := fmt.Fprintf(c.out, "[%s] To: %s\n[%s] Message: %s\n\n", c.tag, recipient, c.tag, message)
	return err
}

// NewConsoleChannel writes notifications straight to out.
func NewConsoleChannel(out io.Writer) Channel {
	return &stubChannel{name: "Console", tag: "CONSOLE", out: out}
}

// NewEmailChannel is a stand-in for an SMTP integration.
func NewEmailChannel(out io.Writer) Channel {
	return &stubChannel{name: "Email", tag: "EMAIL", out: out}
}

// NewSMSChannel is a stand-in for an SMS gateway integration.
func NewSMSChannel(out io.Writer) Channel {
	return &stubChannel{name: "SMS", tag: "SMS", out: out}
}

// NewPushChannel is a stand-in for a mobile push integration.
func NewPushChannel(out io.Writer) Channel {
	return &stubChannel{name: "Push", tag: "PUSH", out: out}
}
