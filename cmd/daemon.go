//go:build unix

package cmd

import (
	"fmt"
	"time"

	"github.com/fwpack/fwpack/internal/daemon"
	"github.com/spf13/cobra"
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Manage the fwpack daemon",
	Long: `Control the fwpack background daemon that hosts the discovery engine via Unix socket.

The daemon runs in the background and provides:
- HTTP API over Unix socket
- Package/board/project discovery
- Project imports and import history`,
}

var daemonStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the fwpack daemon",
	Long: `Start the fwpack daemon in foreground mode.

For background operation, use:
  nohup fwpack daemon start > /tmp/fwpack-daemon.log 2>&1 &`,
	RunE: startDaemon,
}

var daemonStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the fwpack daemon",
	Long:  "Stop the running fwpack daemon gracefully.",
	RunE:  stopDaemon,
}

var daemonStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check daemon status",
	Long:  "Check if the fwpack daemon is running and display its status.",
	RunE:  statusDaemon,
}

func init() {
	rootCmd.AddCommand(daemonCmd)
	daemonCmd.AddCommand(daemonStartCmd)
	daemonCmd.AddCommand(daemonStopCmd)
	daemonCmd.AddCommand(daemonStatusCmd)
}

func daemonConfig() *daemon.Config {
	cfg := daemon.DefaultConfig()
	if c, err := loadCLIConfig(); err == nil && c.SocketPath != "" {
		cfg.SocketPath = c.SocketPath
	}
	return cfg
}

func startDaemon(cmd *cobra.Command, args []string) error {
	d, err := daemon.New(daemonConfig())
	if err != nil {
		return fmt.Errorf("failed to initialize daemon: %w", err)
	}

	return d.Start()
}

func stopDaemon(cmd *cobra.Command, args []string) error {
	d, err := daemon.New(daemonConfig())
	if err != nil {
		return fmt.Errorf("failed to initialize daemon: %w", err)
	}

	return d.Stop()
}

func statusDaemon(cmd *cobra.Command, args []string) error {
	d, err := daemon.New(daemonConfig())
	if err != nil {
		return fmt.Errorf("failed to initialize daemon: %w", err)
	}

	info, err := d.GetStatus()
	if err != nil {
		return err
	}

	if !info.Running {
		fmt.Println("fwpack daemon is not running")
		if info.ErrorMessage != "" {
			fmt.Println("  last error:", info.ErrorMessage)
		}
		return nil
	}

	fmt.Println("fwpack daemon is running")
	fmt.Printf("  PID:    %d\n", info.PID)
	fmt.Printf("  Socket: %s\n", info.SocketPath)
	fmt.Printf("  Uptime: %s\n", info.Uptime.Round(time.Second))
	return nil
}
