package editsuggestions

import (
	"log/slog"

	httpadapter "archivum/contexts/publishing/edit-suggestions/adapters/http"
	"archivum/contexts/publishing/edit-suggestions/adapters/memory"
	"archivum/contexts/publishing/edit-suggestions/application/commands"
	"archivum/contexts/publishing/edit-suggestions/application/queries"
	"archivum/contexts/publishing/edit-suggestions/domain/entities"
	"archivum/contexts/publishing/edit-suggestions/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
	Grants  *memory.GrantTable
}

type Dependencies struct {
	Repository ports.Repository
	Content    ports.ContentReader
	Grants     ports.EditGrantIssuer
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	proposeEdit := commands.ProposeEditUseCase{
		Repository: deps.Repository,
		Content:    deps.Content,
		Clock:      deps.Clock,
		IDGen:      deps.IDGen,
		Logger:     deps.Logger,
	}
	decide := commands.DecideSuggestionUseCase{
		Repository: deps.Repository,
		Grants:     deps.Grants,
		Clock:      deps.Clock,
		Logger:     deps.Logger,
	}
	queryUseCase := queries.QueryUseCase{
		Repository: deps.Repository,
		Logger:     deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			ProposeEdit: proposeEdit,
			Decide:      decide,
			Queries:     queryUseCase,
			Logger:      deps.Logger,
		},
	}
}

// NewInMemoryModule wires the memory store and grant table; content is the
// caller-supplied view onto the content workflow.
func NewInMemoryModule(seed []entities.EditSuggestion, content ports.ContentReader, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	grants := memory.NewGrantTable()
	module := NewModule(Dependencies{
		Repository: store,
		Content:    content,
		Grants:     grants,
		Clock:      store,
		IDGen:      store,
		Logger:     logger,
	})
	module.Store = store
	module.Grants = grants
	return module
}
