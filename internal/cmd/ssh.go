package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"futsal/internal/config"
	"futsal/internal/logging"
	"futsal/internal/paths"
	"futsal/internal/server"
)

// SSHCmd serves the dashboard over SSH
type SSHCmd struct {
	AuthorizedKeys string `help:"Authorized keys file (default: ~/.ssh/authorized_keys)" type:"path"`
	Host           string `help:"Listen host (default: ssh_host setting or 127.0.0.1)"`
	Port           int    `help:"Listen port (default: ssh_port setting or 23234)"`
}

// Run executes the ssh command
func (s *SSHCmd) Run(container *Container, cli *CLI) error {
	var hostFromSettings string
	port := config.DefaultSSHPort
	if cli.settings != nil {
		hostFromSettings = cli.settings.SSHHost
		if cli.settings.SSHPort != nil {
			port = *cli.settings.SSHPort
		}
	}
	if s.Port != 0 {
		port = s.Port
	}

	srv, err := server.NewServer(server.Config{
		AuthorizedKeysPath: s.AuthorizedKeys,
		Host:               stringSetting(s.Host, "FUTSAL_SSH_HOST", hostFromSettings, config.DefaultSSHHost),
		HostKeyPath:        paths.HostKeyPath(),
		Port:               port,
	}, container.AnalysisService)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Logger.Info("Executing ssh command", "address", srv.Addr())
	fmt.Fprintf(cli.stdout(), "Serving the dashboard on ssh://%s (Ctrl+C to stop)\n", srv.Addr())
	return srv.Serve(ctx)
}
