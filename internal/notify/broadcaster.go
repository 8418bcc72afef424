package notify

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Broadcaster fans a message out to every registered channel.
//
// Delivery is best effort: channels are tried in registration order,
// a failed send is swallowed without retry and does not stop the
// remaining channels, and only successful sends are logged.
type Broadcaster struct {
	mu       sync.RWMutex
	channels []Channel
	logger   *zap.Logger
}

// NewBroadcaster creates a broadcaster with no channels registered.
func NewBroadcaster(logger *zap.Logger) *Broadcaster {
	return &Broadcaster{logger: logger}
}

// AddChannel appends a channel to the fan-out list. Order is
// preserved; duplicates are not detected and channels cannot be
// removed.
func (b *Broadcaster) AddChannel(channel Channel) {
	b.mu.Lock()
	b.channels = append(b.channels, channel)
	b.mu.Unlock()
	b.logger.Info("notification channel added", zap.String("channel", channel.Name()))
}

// Notify sends message to recipient over every channel.
func (b *Broadcaster) Notify(ctx context.Context, recipient, message string) {
	b.mu.RLock()
	channels := append([]Channel(nil), b.channels...)
	b.mu.RUnlock()

	for _, channel := range channels {
		if err := channel.Send(ctx, recipient, message); err != nil {
			continue
		}
		b.logger.Info("notification sent",
			zap.String("channel", channel.Name()),
			zap.String("recipient", recipient))
	}
}
