// Package tcp is the job admission boundary: a line-free TCP protocol where
// a client sends a JSON array holding one job id and gets back "OK" or an
// error text before the connection is closed.
package tcp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"sync"
	"time"

	"github.com/bnema/mixtaped/internal/infrastructure/logger"
)

const (
	DefaultAddr           = ":8000"
	DefaultMaxRequestSize = 4 << 10
	DefaultReadTimeout    = 30 * time.Second

	readChunk = 512
)

var (
	errOversized = errors.New("request too large")
	errTimeout   = errors.New("request timed out")
)

// Submitter queues a job without blocking.
type Submitter interface {
	Submit(jobID int64) int
}

type Options struct {
	MaxRequestSize int
	ReadTimeout    time.Duration
}

type Server struct {
	submitter Submitter
	opts      Options
	wg        sync.WaitGroup
}

func NewServer(submitter Submitter, opts Options) *Server {
	if opts.MaxRequestSize <= 0 {
		opts.MaxRequestSize = DefaultMaxRequestSize
	}
	if opts.ReadTimeout <= 0 {
		opts.ReadTimeout = DefaultReadTimeout
	}
	return &Server{submitter: submitter, opts: opts}
}

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections until ctx is done, then waits for open
// connections to finish. It never waits on job execution.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	logger.Info.Printf("accepting jobs on %s", ln.Addr())

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = ln.Close()
		case <-stop:
		}
	}()

	var tempDelay time.Duration
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				s.wg.Wait()
				return nil
			}
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				tempDelay = nextDelay(tempDelay)
				logger.Warn.Printf("accept error: %v; retrying in %v", err, tempDelay)
				time.Sleep(tempDelay)
				continue
			}
			_ = ln.Close()
			s.wg.Wait()
			return fmt.Errorf("accept: %w", err)
		}
		tempDelay = 0

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handle(conn)
		}()
	}
}

func nextDelay(d time.Duration) time.Duration {
	if d == 0 {
		return 5 * time.Millisecond
	}
	d *= 2
	if d > time.Second {
		d = time.Second
	}
	return d
}

func (s *Server) handle(conn net.Conn) {
	defer func() { _ = conn.Close() }()
	remote := conn.RemoteAddr().String()

	data, err := s.readRequest(conn)
	var reply string
	if err != nil {
		reply = err.Error()
	} else if jobID, parseErr := ParseRequest(data); parseErr != nil {
		reply = parseErr.Error()
	} else {
		depth := s.submitter.Submit(jobID)
		logger.Info.Printf("accepted job %d from %s (%d waiting)", jobID, remote, depth)
		reply = ReplyOK
	}

	if reply != ReplyOK {
		logger.Warn.Printf("rejected request from %s: %s (payload %s)",
			remote, reply, logger.SanitizePayload(data, 128))
	}
	_ = conn.SetWriteDeadline(time.Now().Add(s.opts.ReadTimeout))
	if _, err := io.WriteString(conn, reply); err != nil {
		logger.Debug.Printf("write reply to %s: %v", remote, err)
	}
}

// readRequest accumulates bytes until the trimmed buffer ends with ']', the
// peer half-closes, or the first non-blank byte shows it is not an array.
func (s *Server) readRequest(conn net.Conn) ([]byte, error) {
	if err := conn.SetReadDeadline(time.Now().Add(s.opts.ReadTimeout)); err != nil {
		return nil, err
	}

	var buf []byte
	chunk := make([]byte, readChunk)
	for {
		n, err := conn.Read(chunk)
		buf = append(buf, chunk[:n]...)

		if len(buf) > s.opts.MaxRequestSize {
			return buf, fmt.Errorf("%w: limit is %d bytes", errOversized, s.opts.MaxRequestSize)
		}
		trimmed := bytes.TrimSpace(buf)
		if len(trimmed) > 0 {
			if trimmed[0] != '[' {
				return buf, nil
			}
			if trimmed[len(trimmed)-1] == ']' {
				return buf, nil
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return buf, nil
			}
			if errors.Is(err, os.ErrDeadlineExceeded) {
				return buf, errTimeout
			}
			return buf, err
		}
	}
}
