package realtime

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/lib/pq"
)

const (
	postsChannel = "posts_changed"

	minReconnectInterval = 1 * time.Second
	maxReconnectInterval = 30 * time.Second

	// pingInterval bounds how long a dead connection goes unnoticed
	pingInterval = 90 * time.Second
)

// PostsListener subscribes to the posts change stream (Postgres
// LISTEN/NOTIFY, fed by the posts_notify trigger) and republishes every
// event through the hub as a coarse invalidation. It carries no payload
// interpretation at all: any insert or update on posts means "re-derive".
type PostsListener struct {
	dsn string
	hub *Hub
}

// NewPostsListener creates a listener for the posts change stream
func NewPostsListener(dsn string, hub *Hub) *PostsListener {
	return &PostsListener{dsn: dsn, hub: hub}
}

// Start listens until the context is cancelled. The underlying pq listener
// reconnects on transient failures by itself; connection state changes are
// logged and, on reconnect, an invalidation is published so consumers
// re-sync anything missed while disconnected.
func (l *PostsListener) Start(ctx context.Context) error {
	listener := pq.NewListener(l.dsn, minReconnectInterval, maxReconnectInterval, l.logListenerEvent)
	defer func() {
		if err := listener.Close(); err != nil {
			log.Printf("Failed to close posts listener: %v", err)
		}
	}()

	if err := listener.Listen(postsChannel); err != nil {
		return fmt.Errorf("failed to listen on %s: %w", postsChannel, err)
	}

	log.Printf("Listening for %s notifications", postsChannel)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case notification := <-listener.Notify:
			// A nil notification means the connection was re-established;
			// treat it as a change signal so consumers re-sync.
			l.hub.Publish(Invalidate("posts"))
			if notification != nil {
				log.Printf("posts change: %s", notification.Extra)
			}

		case <-time.After(pingInterval):
			go func() {
				if err := listener.Ping(); err != nil {
					log.Printf("posts listener ping failed: %v", err)
				}
			}()
		}
	}
}

func (l *PostsListener) logListenerEvent(event pq.ListenerEventType, err error) {
	if err != nil {
		log.Printf("posts listener event %d: %v", event, err)
	}
}
