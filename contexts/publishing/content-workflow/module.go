package contentworkflow

import (
	"log/slog"

	httpadapter "archivum/contexts/publishing/content-workflow/adapters/http"
	"archivum/contexts/publishing/content-workflow/adapters/memory"
	"archivum/contexts/publishing/content-workflow/application"
	"archivum/contexts/publishing/content-workflow/application/commands"
	"archivum/contexts/publishing/content-workflow/application/queries"
	"archivum/contexts/publishing/content-workflow/domain/entities"
	"archivum/contexts/publishing/content-workflow/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repository ports.Repository
	Validator  ports.PayloadValidator
	Grants     ports.EditGrantConsumer
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	validator := deps.Validator
	if validator == nil {
		validator = application.PayloadRules{}
	}

	createDraft := commands.CreateDraftUseCase{
		Repository: deps.Repository,
		Validator:  validator,
		Clock:      deps.Clock,
		IDGen:      deps.IDGen,
		Logger:     deps.Logger,
	}
	saveDraft := commands.SaveDraftUseCase{
		Repository: deps.Repository,
		Validator:  validator,
		Grants:     deps.Grants,
		Clock:      deps.Clock,
		Logger:     deps.Logger,
	}
	submit := commands.SubmitForApprovalUseCase{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		Logger:     deps.Logger,
	}
	review := commands.ReviewContentUseCase{
		Repository: deps.Repository,
		Clock:      deps.Clock,
		Logger:     deps.Logger,
	}
	queryUseCase := queries.QueryUseCase{
		Repository: deps.Repository,
		Logger:     deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			CreateDraft:   createDraft,
			SaveDraft:     saveDraft,
			Submit:        submit,
			ReviewContent: review,
			Queries:       queryUseCase,
			Logger:        deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []entities.ContentItem, grants ports.EditGrantConsumer, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Repository: store,
		Grants:     grants,
		Clock:      store,
		IDGen:      store,
		Logger:     logger,
	})
	module.Store = store
	return module
}
