package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/coreos/go-systemd/v22/daemon"

	"github.com/dockapps/go-media-dock/backend/mpris"
	"github.com/dockapps/go-media-dock/config"
	"github.com/dockapps/go-media-dock/events"
	"github.com/dockapps/go-media-dock/logger"
	"github.com/dockapps/go-media-dock/ui"
)

// Standalone runner: drives the applet core against the real session bus
// with a console host, so player discovery and binding can be observed
// without a panel.
func main() {
	cfg, err := config.New()
	if err != nil {
		logger.Fatal("[%s] failed to load config: %v", config.AppName, err)
	}
	logger.SetLevel(cfg.LogLevel)
	config.Watch(nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	controller, err := mpris.New(cfg.MPRIS, ui.ConsoleHost{})
	if err != nil {
		logger.Fatal("[%s] session bus unavailable: %v", config.AppName, err)
	}
	defer controller.Close()

	broadcaster := events.NewBroadcaster(ctx, controller.Events())
	go logEvents(ctx, broadcaster, controller)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		logger.Info("[%s] shutdown signal received", config.AppName)
		if _, err := daemon.SdNotify(false, daemon.SdNotifyStopping); err != nil {
			logger.Debug("[%s] sd_notify: %v", config.AppName, err)
		}
		cancel()
	}()

	if _, err := daemon.SdNotify(false, daemon.SdNotifyReady); err != nil {
		logger.Debug("[%s] sd_notify: %v", config.AppName, err)
	}

	logger.Info("[%s] started", config.AppName)
	if err := controller.Run(ctx); err != nil {
		logger.Error("[%s] controller error: %v", config.AppName, err)
	}
	logger.Info("[%s] stopped", config.AppName)
}

// logEvents prints the applet state a panel would render.
func logEvents(ctx context.Context, b *events.Broadcaster, controller *mpris.Controller) {
	sub := b.Subscribe()
	defer b.Unsubscribe(sub)

	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-sub:
			if !ok {
				return
			}
			switch e.Type {
			case events.TypePlayerBound, events.TypePlayerUnbound, events.TypeTrackChanged, events.TypeStatusChanged:
				logger.Info("[%s] %s: %s", config.AppName, e.Type, controller.Label())
			default:
				logger.Debug("[%s] %s", config.AppName, e.Type)
			}
		}
	}
}
