// Package server hosts blockblast over SSH. Every SSH session gets its own
// game process attached to a pseudo-terminal.
package server

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/creack/pty"
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/gliderlabs/ssh"
	gossh "golang.org/x/crypto/ssh"
)

const (
	ServerIdleTimeout = 5 * time.Minute
	DefaultAddress    = ":2222"
	LogQueueSize      = 100
)

var ErrServerClosed = ssh.ErrServerClosed

// Server runs Binary with Args for each interactive SSH session.
type Server struct {
	ListenAddress string
	Binary        string
	Args          []string
	HostKeyFile   string // empty generates an ed25519 key on start
	IdleTimeout   time.Duration

	// Logger receives one line per event when set. Sends never block.
	Logger chan string

	mu       sync.Mutex
	srv      *ssh.Server
	sessions map[string]string
}

// New returns a server listening on addr that starts binary per session.
func New(addr, binary string, args ...string) *Server {
	return &Server{
		ListenAddress: addr,
		Binary:        binary,
		Args:          args,
		IdleTimeout:   ServerIdleTimeout,
		sessions:      make(map[string]string),
	}
}

func (s *Server) logf(format string, a ...interface{}) {
	if s.Logger == nil {
		return
	}
	select {
	case s.Logger <- fmt.Sprintf(format, a...):
	default:
	}
}

// HostSigner loads the host key from HostKeyFile, or generates a fresh
// ed25519 key when no file is configured.
func (s *Server) HostSigner() (gossh.Signer, error) {
	if s.HostKeyFile != "" {
		pemBytes, err := os.ReadFile(s.HostKeyFile)
		if err != nil {
			return nil, fmt.Errorf("read host key: %w", err)
		}
		signer, err := gossh.ParsePrivateKey(pemBytes)
		if err != nil {
			return nil, fmt.Errorf("parse host key %s: %w", s.HostKeyFile, err)
		}
		return signer, nil
	}

	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	return gossh.NewSignerFromKey(key)
}

func (s *Server) sshServer() (*ssh.Server, error) {
	if s.Binary == "" {
		return nil, errors.New("server: game binary must be specified")
	}

	signer, err := s.HostSigner()
	if err != nil {
		return nil, err
	}

	srv := &ssh.Server{
		Addr:        s.ListenAddress,
		IdleTimeout: s.IdleTimeout,
		Handler:     s.handle,
		PtyCallback: func(ctx ssh.Context, pty ssh.Pty) bool {
			return true
		},
	}
	srv.AddHostKey(signer)
	return srv, nil
}

// Serve accepts SSH connections on l until Shutdown is called.
func (s *Server) Serve(l net.Listener) error {
	srv, err := s.sshServer()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.srv = srv
	if s.sessions == nil {
		s.sessions = make(map[string]string)
	}
	s.mu.Unlock()

	s.logf("listening on %s", l.Addr())
	return srv.Serve(l)
}

// ListenAndServe listens on ListenAddress and serves SSH connections.
func (s *Server) ListenAndServe() error {
	addr := s.ListenAddress
	if addr == "" {
		addr = DefaultAddress
	}
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(l)
}

// Shutdown stops accepting connections and waits for running games to end
// or for ctx to expire.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// Sessions returns the number of games currently running.
func (s *Server) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Server) track(name, user string) func() {
	s.mu.Lock()
	s.sessions[name] = user
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.sessions, name)
		s.mu.Unlock()
	}
}

func (s *Server) handle(sess ssh.Session) {
	ptyReq, winCh, isPty := sess.Pty()
	if !isPty {
		io.WriteString(sess, "failed to start blockblast: non-interactive terminals are not supported\n")
		s.logf("rejected non-interactive session from %s", sess.RemoteAddr())
		sess.Exit(1)
		return
	}

	name := petname.Generate(2, "-")
	untrack := s.track(name, sess.User())
	defer untrack()

	s.logf("%s: %s connected from %s (%dx%d)", name, sess.User(), sess.RemoteAddr(), ptyReq.Window.Width, ptyReq.Window.Height)

	cmdCtx, cancelCmd := context.WithCancel(sess.Context())
	defer cancelCmd()

	cmd := exec.CommandContext(cmdCtx, s.Binary, s.Args...)
	cmd.Env = append(sess.Environ(),
		fmt.Sprintf("TERM=%s", ptyReq.Term),
		fmt.Sprintf("HOME=%s", os.Getenv("HOME")),
	)

	f, err := pty.StartWithSize(cmd, winsize(ptyReq.Window))
	if err != nil {
		io.WriteString(sess, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		s.logf("%s: start %s: %s", name, s.Binary, err)
		sess.Exit(1)
		return
	}
	defer f.Close()

	go func() {
		for win := range winCh {
			if err := pty.Setsize(f, winsize(win)); err != nil {
				s.logf("%s: resize: %s", name, err)
			}
		}
	}()

	go func() {
		io.Copy(f, sess)
	}()
	io.Copy(sess, f)

	f.Close()
	err = cmd.Wait()

	code := 0
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	}
	s.logf("%s: disconnected (exit %d)", name, code)
	sess.Exit(code)
}

func winsize(w ssh.Window) *pty.Winsize {
	return &pty.Winsize{Rows: uint16(w.Height), Cols: uint16(w.Width)}
}
