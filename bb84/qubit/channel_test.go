package qubit

import (
	"errors"
	"testing"
)

func TestChannelRoundTrip(t *testing.T) {
	c := NewChannel(1)
	sent := NewRegister(4)
	if err := c.Send(sent); err != nil {
		t.Fatalf("Send: %v", err)
	}
	got, err := c.Receive()
	if err != nil {
		t.Fatalf("Receive: %v", err)
	}
	if got != sent {
		t.Errorf("received a different register than was sent")
	}
}

func TestChannelFIFO(t *testing.T) {
	c := NewChannel(2)
	first, second := NewRegister(1), NewRegister(2)
	if err := c.Send(first); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if err := c.Send(second); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if got, _ := c.Receive(); got != first {
		t.Errorf("first Receive returned the wrong register")
	}
	if got, _ := c.Receive(); got != second {
		t.Errorf("second Receive returned the wrong register")
	}
}

func TestChannelFull(t *testing.T) {
	c := NewChannel(1)
	if err := c.Send(NewRegister(1)); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if err := c.Send(NewRegister(1)); !errors.Is(err, ErrChannelFull) {
		t.Errorf("Send on full channel returned %v, want ErrChannelFull", err)
	}
}

func TestChannelEmpty(t *testing.T) {
	c := NewChannel(1)
	if _, err := c.Receive(); !errors.Is(err, ErrChannelEmpty) {
		t.Errorf("Receive on empty channel returned %v, want ErrChannelEmpty", err)
	}
}
