package dashboard

import (
	"context"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/userdesk/userdesk.go/contrib/mockapi"
)

// Subscribe dials a mockapi /live feed and delivers its events until the
// context ends or the peer closes. The returned channel closes when the
// subscription is over.
func Subscribe(ctx context.Context, url string, logger zerolog.Logger) (<-chan mockapi.Event, error) {
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	if resp != nil {
		resp.Body.Close()
	}

	ch := make(chan mockapi.Event)
	go func() {
		defer close(ch)
		defer conn.Close()
		for {
			var ev mockapi.Event
			if err := conn.ReadJSON(&ev); err != nil {
				logger.Debug().Err(err).Msg("live feed closed")
				return
			}
			select {
			case ch <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	return ch, nil
}
