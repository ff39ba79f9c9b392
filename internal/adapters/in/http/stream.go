package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"grocery/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

const snapshotEvent = "orders"

// stream serves a list view as Server-Sent Events. The first event carries the
// current snapshot; later events follow storage changes until the client leaves.
func (s *Server) stream(ctx echo.Context, query queries.ListQuery) error {
	if err := query.Validate(); err != nil {
		return s.fail(ctx, err)
	}

	reqCtx := ctx.Request().Context()
	updates, err := s.feed.Subscribe(reqCtx, query.Filter())
	if err != nil {
		return s.fail(ctx, err)
	}

	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	keepAlive := time.NewTicker(s.keepAlive)
	defer keepAlive.Stop()

	for seq := 1; ; {
		select {
		case <-reqCtx.Done():
			return nil
		case <-keepAlive.C:
			if _, err := fmt.Fprint(res, ": keep-alive\n\n"); err != nil {
				return nil
			}
			res.Flush()
		case snapshot, ok := <-updates:
			if !ok {
				return nil
			}
			payload, err := json.Marshal(toOrders(queries.NewOrderResponses(snapshot)))
			if err != nil {
				s.logger.ErrorContext(reqCtx, "Failed to encode order snapshot", "error", err)
				return nil
			}
			if _, err := fmt.Fprintf(res, "id: %d\nevent: %s\ndata: %s\n\n", seq, snapshotEvent, payload); err != nil {
				return nil
			}
			res.Flush()
			seq++
		}
	}
}
