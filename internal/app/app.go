package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sillygoals/sillygoals/internal/config"
	"github.com/sillygoals/sillygoals/internal/db"
	"github.com/sillygoals/sillygoals/internal/markdown"
	"github.com/sillygoals/sillygoals/internal/repository"
	"github.com/sillygoals/sillygoals/internal/service"
)

type App struct {
	Cfg          *config.Config
	DB           *sqlx.DB
	AuthService  *service.AuthService
	GroupService *service.GroupService
	GoalService  *service.GoalService
	Markdown     *markdown.Parser
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	toneRepository := repository.NewToneRepository(database)
	groupRepository := repository.NewGroupRepository(database)
	goalRepository := repository.NewGoalRepository(database)

	// Services
	authService := service.NewAuthService(
		userRepository,
		cfg.JWTSecret,
		cfg.JWTExpiry,
		cfg.IsProduction(),
	)
	groupService := service.NewGroupService(groupRepository, toneRepository)
	goalService := service.NewGoalService(goalRepository, groupRepository)

	return &App{
		Cfg:          cfg,
		DB:           database,
		AuthService:  authService,
		GroupService: groupService,
		GoalService:  goalService,
		Markdown:     markdown.NewParser(),
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
