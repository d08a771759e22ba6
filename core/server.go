package core

import (
	"context"
	"crypto/subtle"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/gliderlabs/ssh"
	"github.com/juju/ratelimit"
	gossh "golang.org/x/crypto/ssh"

	"github.com/catshell/catsh/core/config"
	"github.com/catshell/catsh/core/logger"
)

// Server exposes the interpreter to SSH clients, one shell per session.
type Server struct {
	configuration *config.Configuration
	logger        *logger.Logger
	sshServer     *ssh.Server
	connections   *ratelimit.Bucket
}

func NewServer(configuration *config.Configuration, logDest io.Writer) (*Server, error) {
	server := &Server{
		configuration: configuration,
		logger:        logger.NewJSONLinesRecorder(logDest),
		// Short bursts of connections are fine, sustained hammering is not.
		connections: ratelimit.NewBucket(time.Second, 10),
	}

	server.sshServer = &ssh.Server{
		Addr: fmt.Sprintf(":%d", configuration.SSH.Port),
		Handler: func(sess ssh.Session) {
			server.HandleSession(sess)
		},
		PasswordHandler: func(ctx ssh.Context, password string) bool {
			return server.passwordAllowed(password)
		},
	}
	if banner := configuration.SSH.Banner; banner != "" {
		server.sshServer.Version = banner
	}

	keyPem, err := configuration.HostKeyPem()
	if err != nil {
		return nil, err
	}
	signer, err := gossh.ParsePrivateKey(keyPem)
	if err != nil {
		return nil, err
	}
	server.sshServer.AddHostKey(signer)

	return server, nil
}

func (s *Server) passwordAllowed(password string) bool {
	allowed := false
	for _, candidate := range s.configuration.SSH.Passwords {
		if subtle.ConstantTimeCompare([]byte(password), []byte(candidate)) == 1 {
			allowed = true
		}
	}
	return allowed
}

// HandleSession runs one interpreter bound to the session's terminal.
func (s *Server) HandleSession(sess ssh.Session) {
	if s.connections.TakeAvailable(1) == 0 {
		fmt.Fprintln(sess.Stderr(), "too many connections, try again later")
		sess.Exit(1)
		return
	}

	ptyInfo, winch, isPTY := sess.Pty()
	windowWidth := ptyInfo.Window.Width
	go func() {
		for window := range winch {
			windowWidth = window.Width
		}
	}()

	sessionLog := s.logger.NewSession()
	sessionLog.Record(&logger.SessionStart{
		User:       sess.User(),
		RemoteAddr: fmt.Sprintf("%s", sess.RemoteAddr()),
		Terminal:   ptyInfo.Term,
		IsPTY:      isPTY,
	})
	defer sessionLog.Record(&logger.SessionEnd{})

	sh, err := NewShell(s.configuration, IO{
		Stdin:  sess,
		Stdout: sess,
		Stderr: sess.Stderr(),
		IsPTY:  isPTY,
		Width: func() int {
			return windowWidth
		},
	}, sessionLog)
	if err != nil {
		log.Printf("session setup failed: %v", err)
		sess.Exit(1)
		return
	}
	defer sh.Close()

	sh.Run()
	sess.Exit(0)
}

func (s *Server) ListenAndServe() error {
	log.Printf("- Starting SSH server on %s\n", s.sshServer.Addr)
	return s.sshServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.sshServer.Shutdown(ctx)
}
