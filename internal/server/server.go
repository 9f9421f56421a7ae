// Package server serves schedule descriptions over TCP.
package server

import (
	"bytes"
	"context"
	"io"
	"net"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"golang.org/x/net/netutil"

	"github.com/bufrsh/cronchirp/internal/config"
	"github.com/bufrsh/cronchirp/internal/describe"
	"github.com/bufrsh/cronchirp/internal/pp"
)

// Server translates received CRON expressions into plain English.
type Server struct {
	// ReadTimeout bounds the wait for the request line.
	ReadTimeout time.Duration

	// MaxRequestBytes bounds the size of a request.
	MaxRequestBytes int

	// Banner is appended after each successful translation.
	Banner string

	cache *ttlcache.Cache[string, string]
	logMu sync.Mutex
}

// New creates a new server from the configuration.
func New(c *config.Config) *Server {
	cache := ttlcache.New(
		ttlcache.WithTTL[string, string](c.CacheExpiration),
		ttlcache.WithDisableTouchOnHit[string, string](),
	)

	return &Server{
		ReadTimeout:     c.ReadTimeout,
		MaxRequestBytes: c.MaxRequestBytes,
		Banner:          c.Banner,
		cache:           cache,
	}
}

// Listen opens the listening socket, capping the number of concurrent
// connections at maxConns.
func (s *Server) Listen(ppfmt pp.PP, address string, maxConns int) (net.Listener, bool) {
	l, err := net.Listen("tcp", address)
	if err != nil {
		ppfmt.Errorf(pp.EmojiUserError, "Failed to listen on %s: %v", address, err)
		return nil, false
	}

	ppfmt.Noticef(pp.EmojiListen, "Listening on %s", l.Addr())
	return netutil.LimitListener(l, maxConns), true
}

// Serve accepts connections until ctx is canceled, handling each one in
// its own goroutine. It returns false when the listener fails for reasons
// other than the cancellation of ctx.
func (s *Server) Serve(ctx context.Context, ppfmt pp.PP, l net.Listener) bool {
	go s.cache.Start()
	defer s.cache.Stop()

	go func() {
		<-ctx.Done()
		l.Close()
	}()

	var handlers sync.WaitGroup
	defer handlers.Wait()

	for {
		conn, err := l.Accept()
		if err != nil {
			if ctx.Err() != nil {
				ppfmt.Noticef(pp.EmojiBye, "Stopped accepting connections")
				return true
			}

			ppfmt.Errorf(pp.EmojiError, "Failed to accept a connection: %v", err)
			return false
		}

		handlers.Add(1)
		go func() {
			defer handlers.Done()
			s.handle(ppfmt, conn)
		}()
	}
}

// handle reads one request line from conn and writes back the translation.
// Its log output is queued and flushed in one batch so that concurrent
// handlers do not interleave their lines.
func (s *Server) handle(ppfmt pp.PP, conn net.Conn) {
	defer conn.Close()

	queued := pp.NewQueued(ppfmt)
	defer func() {
		s.logMu.Lock()
		defer s.logMu.Unlock()
		queued.Flush()
	}()

	if err := conn.SetReadDeadline(time.Now().Add(s.ReadTimeout)); err != nil {
		queued.Errorf(pp.EmojiImpossible, "Failed to set the read deadline: %v", err)
		return
	}

	buf := make([]byte, s.MaxRequestBytes)
	n, err := conn.Read(buf)
	if err != nil {
		if os.IsTimeout(err) {
			queued.Warningf(pp.EmojiWarning, "Connection from %s timed out", conn.RemoteAddr())
		} else {
			queued.Warningf(pp.EmojiWarning, "Failed to read from %s: %v", conn.RemoteAddr(), err)
		}
		return
	}
	truncated := n == s.MaxRequestBytes
	if truncated {
		queued.Infof(pp.EmojiTruncated, "Request from %s was cut at %d bytes", conn.RemoteAddr(), n)
	}

	request := string(buf[:n])
	line, _, _ := strings.Cut(request, "\n")
	line = strings.TrimSuffix(line, "\r")
	queued.Infof(pp.EmojiRequest, "%s requested %q", conn.RemoteAddr(), line)

	response, ok := s.translate(queued, line)
	if ok {
		response += s.Banner
	}
	_, _ = conn.Write([]byte(response))

	// Closing with unread request bytes still queued resets the
	// connection and discards the response in flight.
	if truncated {
		if half, ok := conn.(interface{ CloseWrite() error }); ok {
			_ = half.CloseWrite()
		}
		_, _ = io.Copy(io.Discard, conn)
	}
}

// translate maps a request line to its description, going through the
// cache first. Only successful translations are cached.
func (s *Server) translate(ppfmt pp.PP, line string) (string, bool) {
	if item := s.cache.Get(line); item != nil {
		ppfmt.Infof(pp.EmojiRepeat, "Reused the cached translation of %q", line)
		return item.Value(), true
	}

	var out bytes.Buffer
	if err := describe.Schedule(&out, line); err != nil {
		ppfmt.Infof(pp.EmojiUserError, "Rejected %q: %v", line, err)
		return err.Error(), false
	}

	s.cache.Set(line, out.String(), ttlcache.DefaultTTL)
	ppfmt.Infof(pp.EmojiSchedule, "Translated %q", line)
	return out.String(), true
}
