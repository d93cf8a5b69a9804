package transport

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// streamEvents writes change notifications as server-sent events until the client goes away.
func (s *Server) streamEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	ctx := r.Context()
	feed, dropped := s.feed.Stream(ctx, s.eventBuffer)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	defer func() {
		if n := dropped(); n > 0 {
			s.logger.WarnContext(ctx, "event stream dropped notifications", "dropped", n)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-feed:
			if !ok {
				return
			}
			data, err := json.Marshal(e)
			if err != nil {
				s.logger.ErrorContext(ctx, "encode event", "error", err)
				continue
			}
			if _, err := fmt.Fprintf(w, "id: %d\nevent: %s\ndata: %s\n\n", e.Sequence, e.Kind, data); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
