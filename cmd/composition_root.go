package cmd

import (
	"log/slog"

	httpadapter "orderdesk/internal/adapters/in/http"
	"orderdesk/internal/adapters/out/backend"
	"orderdesk/internal/adapters/out/postgres/activityrepo"
	"orderdesk/internal/core/application/dashboard"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot owns the single dashboard store and the adapters every
// handler shares. gormDB may be nil, in which case the activity journal is
// disabled.
type CompositionRoot struct {
	configs Config
	gormDB  *gorm.DB
	store   *dashboard.Store
	backend *backend.Client
	journal ports.ActivityJournal
	logger  *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	root := CompositionRoot{
		configs: configs,
		gormDB:  gormDB,
		store:   dashboard.NewStore(),
		backend: backend.NewClient(configs.BackendURL, configs.BackendTimeout, logger),
		logger:  logger,
	}
	if gormDB != nil {
		root.journal = activityrepo.NewGormActivityRepository(gormDB)
	}
	return root
}

func (c *CompositionRoot) CreateRefreshBoardCommandHandler() commands.RefreshBoardCommandHandler {
	return commands.NewRefreshBoardCommandHandler(c.backend, c.store, c.logger)
}

func (c *CompositionRoot) CreateSyncOrdersCommandHandler() commands.SyncOrdersCommandHandler {
	return commands.NewSyncOrdersCommandHandler(c.backend, c.store, c.journal, c.logger)
}

func (c *CompositionRoot) CreateTransitionOrderStatusCommandHandler() commands.TransitionOrderStatusCommandHandler {
	return commands.NewTransitionOrderStatusCommandHandler(c.backend, c.store, c.journal, c.logger)
}

func (c *CompositionRoot) CreateBeginNoteEditCommandHandler() commands.BeginNoteEditCommandHandler {
	return commands.NewBeginNoteEditCommandHandler(c.store, c.logger)
}

func (c *CompositionRoot) CreateUpdateNoteDraftCommandHandler() commands.UpdateNoteDraftCommandHandler {
	return commands.NewUpdateNoteDraftCommandHandler(c.store)
}

func (c *CompositionRoot) CreateCancelNoteEditCommandHandler() commands.CancelNoteEditCommandHandler {
	return commands.NewCancelNoteEditCommandHandler(c.store)
}

func (c *CompositionRoot) CreateCommitNoteCommandHandler() commands.CommitNoteCommandHandler {
	return commands.NewCommitNoteCommandHandler(c.backend, c.store, c.journal, c.logger)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.backend, c.store, c.store, c.journal, c.logger)
}

func (c *CompositionRoot) CreateClearDemoOrdersCommandHandler() commands.ClearDemoOrdersCommandHandler {
	return commands.NewClearDemoOrdersCommandHandler(c.backend, c.store, c.store, c.journal, c.logger)
}

func (c *CompositionRoot) CreateDismissAlertsCommandHandler() commands.DismissAlertsCommandHandler {
	return commands.NewDismissAlertsCommandHandler(c.store)
}

func (c *CompositionRoot) CreateGetBoardQueryHandler() queries.GetBoardQueryHandler {
	return queries.NewGetBoardQueryHandler(c.store, c.backend.WebhookURL())
}

func (c *CompositionRoot) CreateGetOrderCountQueryHandler() queries.GetOrderCountQueryHandler {
	return queries.NewGetOrderCountQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetActivityQueryHandler() queries.GetActivityQueryHandler {
	return queries.NewGetActivityQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		RefreshBoard:    c.CreateRefreshBoardCommandHandler(),
		SyncOrders:      c.CreateSyncOrdersCommandHandler(),
		TransitionOrder: c.CreateTransitionOrderStatusCommandHandler(),
		BeginNoteEdit:   c.CreateBeginNoteEditCommandHandler(),
		UpdateNoteDraft: c.CreateUpdateNoteDraftCommandHandler(),
		CancelNoteEdit:  c.CreateCancelNoteEditCommandHandler(),
		CommitNote:      c.CreateCommitNoteCommandHandler(),
		DeleteOrder:     c.CreateDeleteOrderCommandHandler(),
		ClearDemoOrders: c.CreateClearDemoOrdersCommandHandler(),
		DismissAlerts:   c.CreateDismissAlertsCommandHandler(),
		GetBoard:        c.CreateGetBoardQueryHandler(),
		GetOrderCount:   c.CreateGetOrderCountQueryHandler(),
		GetActivity:     c.CreateGetActivityQueryHandler(),
	}, c.backend, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateRefreshBoardCommandHandler(),
		c.CreateSyncOrdersCommandHandler(),
		jobs.Schedules{Refresh: c.configs.RefreshSchedule, Sync: c.configs.SyncSchedule},
		c.logger,
	)
}
