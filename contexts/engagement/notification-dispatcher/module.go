package notificationdispatcher

import (
	"log/slog"

	"archivum/contexts/engagement/notification-dispatcher/adapters/memory"
	"archivum/contexts/engagement/notification-dispatcher/application"
	"archivum/contexts/engagement/notification-dispatcher/ports"
)

type Module struct {
	Dispatcher application.Dispatcher
	Channel    *memory.Channel
}

type Dependencies struct {
	Channel ports.Channel
	Logger  *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Dispatcher: application.Dispatcher{
			Channel: deps.Channel,
			Logger:  deps.Logger,
		},
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	channel := memory.NewChannel()
	module := NewModule(Dependencies{
		Channel: channel,
		Logger:  logger,
	})
	module.Channel = channel
	return module
}
