package server

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"

	"futsal/internal/logging"
	"futsal/internal/ui"
)

func sessionID(sess ssh.Session) string {
	return fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())
}

// sessionLifetime logs how long each session stayed connected
func sessionLifetime() wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			start := time.Now()
			next(sess)
			logging.Logger.Info("SSH session ended",
				"session_id", sessionID(sess),
				"duration", time.Since(start).String())
		}
	}
}

// teaHandler creates a dashboard for each SSH session
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()

	logging.Logger.Info("New SSH session",
		"session_id", sessionID(sess),
		"user", sess.User(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	return ui.NewDashboard(sess.Context(), s.analysis, nil), []tea.ProgramOption{tea.WithAltScreen()}
}
