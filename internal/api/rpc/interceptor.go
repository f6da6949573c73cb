package rpc

import (
	"context"
	"log"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// UnaryLogging logs failed calls and every internal error.
func UnaryLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	if err != nil {
		code := status.Code(err)
		if code == codes.Internal || code == codes.Unknown {
			log.Printf("WARNING: %s failed after %s: %v", info.FullMethod, time.Since(start), err)
		} else {
			log.Printf("%s: %s", info.FullMethod, code)
		}
	}
	return resp, err
}
