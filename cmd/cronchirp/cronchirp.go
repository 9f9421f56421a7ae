// Package main is the entry point of the Cronchirp server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bufrsh/cronchirp/internal/config"
	"github.com/bufrsh/cronchirp/internal/droproot"
	"github.com/bufrsh/cronchirp/internal/pp"
	"github.com/bufrsh/cronchirp/internal/server"
	"github.com/bufrsh/cronchirp/internal/signal"
)

// Version is the version of the server that will be shown in the output.
// This is to be overwritten by the linker argument -X main.Version=version.
var Version string //nolint:gochecknoglobals

func formatName() string {
	if Version == "" {
		return "Cronchirp"
	}
	return fmt.Sprintf("Cronchirp (%s)", Version)
}

func initConfig(ppfmt pp.PP) (*config.Config, bool) {
	c := config.Default()

	// Read the config
	if !c.ReadEnv(ppfmt) {
		return c, false
	}

	// Print the config
	c.Print(ppfmt)

	return c, true
}

func main() {
	os.Exit(realMain())
}

func realMain() int {
	ppfmt := pp.New(os.Stdout)
	if !config.ReadEmoji("EMOJI", &ppfmt) || !config.ReadQuiet("QUIET", &ppfmt) {
		ppfmt.Noticef(pp.EmojiUserError, "Bye!")
		return 1
	}
	if !ppfmt.IsShowing(pp.Info) {
		ppfmt.Noticef(pp.EmojiMute, "Quiet mode enabled")
	}

	// Show the name and the version of the server
	ppfmt.Noticef(pp.EmojiStar, formatName())

	// Drop the superuser privilege
	droproot.DropPrivileges(ppfmt)

	// Get a context canceled by SIGINT and SIGTERM
	ctx := context.Background()
	ctxWithSignals, _ := signal.NotifyContext(ctx)

	// Read the config
	c, configOk := initConfig(ppfmt)
	// Ping the monitor regardless of whether initConfig succeeded
	c.Monitor.Start(ctx, ppfmt, formatName())
	// Bail out now if initConfig failed
	if !configOk {
		c.Monitor.ExitStatus(ctx, ppfmt, 1, "Config errors")
		ppfmt.Noticef(pp.EmojiBye, "Bye!")
		return 1
	}

	s := server.New(c)
	l, ok := s.Listen(ppfmt, c.Address, c.MaxConnections)
	if !ok {
		c.Monitor.ExitStatus(ctx, ppfmt, 1, "Failed to listen")
		ppfmt.Noticef(pp.EmojiBye, "Bye!")
		return 1
	}

	c.Notifier.Send(ctx, ppfmt, fmt.Sprintf("%s is listening on %s", formatName(), c.Address))

	// Ping the monitor periodically while the server is up
	if c.PingInterval > 0 {
		sig := signal.Setup()
		defer sig.TearDown()
		go func() {
			for sig.Sleep(ppfmt, c.PingInterval) {
				c.Monitor.Success(ctx, ppfmt, "Still listening")
			}
		}()
	}

	if !s.Serve(ctxWithSignals, ppfmt, l) {
		c.Monitor.Failure(ctx, ppfmt, "Server error")
		c.Notifier.Send(ctx, ppfmt, fmt.Sprintf("%s stopped due to a server error", formatName()))
		c.Monitor.ExitStatus(ctx, ppfmt, 1, "Server error")
		ppfmt.Noticef(pp.EmojiBye, "Bye!")
		return 1
	}

	c.Notifier.Send(ctx, ppfmt, fmt.Sprintf("%s was terminated", formatName()))
	c.Monitor.ExitStatus(ctx, ppfmt, 0, "Terminated")
	ppfmt.Noticef(pp.EmojiBye, "Bye!")
	return 0
}
