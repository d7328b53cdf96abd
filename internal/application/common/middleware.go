package common

import (
	"context"
	"log"
	"reflect"
)

// LoggingMiddleware logs the type and error of every request whose handler
// returns an error; successful dispatches are not logged. This matches this
// repo's ambient
// choice of plain standard-library logging (cmd/homeworlds never pulls in a
// structured logger).
func LoggingMiddleware(ctx context.Context, request Request, next HandlerFunc) (Response, error) {
	resp, err := next(ctx, request)
	if err != nil {
		log.Printf("mediator: %s failed: %v", reflect.TypeOf(request), err)
	}
	return resp, err
}
