package tcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"
)

var ErrRejected = errors.New("request rejected")

const clientTimeout = 10 * time.Second

// Submit sends one job id to the admission server and returns its reply.
// A reply other than OK is returned together with ErrRejected.
func Submit(ctx context.Context, addr string, jobID int64) (string, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return "", fmt.Errorf("dial %s: %w", addr, err)
	}
	defer func() { _ = conn.Close() }()

	deadline := time.Now().Add(clientTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return "", err
	}

	if _, err := io.WriteString(conn, "["+strconv.FormatInt(jobID, 10)+"]"); err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	if tc, ok := conn.(*net.TCPConn); ok {
		_ = tc.CloseWrite()
	}

	reply, err := io.ReadAll(io.LimitReader(conn, DefaultMaxRequestSize))
	if err != nil {
		return "", fmt.Errorf("read reply: %w", err)
	}
	if string(reply) != ReplyOK {
		return string(reply), fmt.Errorf("%w: %s", ErrRejected, reply)
	}
	return string(reply), nil
}
