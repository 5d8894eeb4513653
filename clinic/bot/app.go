package bot

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/m3rciful/tailtrust/clinic/engine"
	"github.com/m3rciful/tailtrust/clinic/repository"
	"github.com/m3rciful/tailtrust/core/bootstrap"
	coretelegram "github.com/m3rciful/tailtrust/core/telegram"
	"github.com/m3rciful/tailtrust/core/telegram/commands"
	"github.com/m3rciful/tailtrust/core/telegram/router"
)

// App wires the conversation engine into the Telegram runtime.
type App struct {
	cfg    *Config
	db     *sqlx.DB
	engine *engine.Engine
}

// Bootstrap initializes logging, storage, and migrations, then builds
// the application.
func Bootstrap(cfg *Config) (*App, error) {
	res, err := bootstrap.Run(bootstrap.Options{
		Config:   cfg.CoreConfig(),
		Database: cfg.Database,
	})
	if err != nil {
		return nil, err
	}

	repo := repository.New(res.DB)
	eng := engine.New(repo, cfg.Booking.ScheduleConfig(), DefaultTexts)

	return &App{cfg: cfg, db: res.DB, engine: eng}, nil
}

func (a *App) buildRegistry() *coretelegram.Registry {
	reg := coretelegram.NewRegistry()

	reg.RegisterCommand("/start", commands.Command{
		Handler:     a.handleStart,
		Description: "Начать работу с ботом",
	})
	reg.RegisterCommand("/help", commands.Command{
		Handler:     a.handleHelp,
		Description: "Посмотреть список команд",
	})
	reg.RegisterCommand("/register", commands.Command{
		Handler:     a.handleRegister,
		Description: "Зарегистрироваться",
	})
	reg.RegisterCommand("/reset", commands.Command{
		Handler:     a.handleReset,
		Description: "Обнулить регистрацию",
	})
	reg.RegisterCommand("/profile", commands.Command{
		Handler:     a.handleProfile,
		Description: "Посмотреть профиль",
	})
	reg.RegisterCommand("/appointment", commands.Command{
		Handler:     a.handleAppointment,
		Description: "Записаться на приём",
	})
	reg.RegisterCommand("/applist", commands.Command{
		Handler:     a.handleApplist,
		Description: "Посмотреть свои записи",
	})

	reg.SetTextFallback(a.handleText)
	return reg
}

// TelegramRunOptions assembles the bot runtime for the shared runner.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	reg := a.buildRegistry()

	routes := router.CommandRoutes(reg, router.CommandRouteOptions{
		AdminID: a.cfg.Telegram.AdminID,
	})
	routes = append(routes, router.TextRoutes(reg, router.TextOptions{})...)

	core := a.cfg.CoreConfig()
	return coretelegram.RunOptions{
		Config:      core,
		Registry:    reg,
		Middlewares: coretelegram.DefaultMiddlewares(core, nil),
		Routes:      routes,
		OnStop: func(ctx context.Context, rt coretelegram.Runtime) error {
			return a.db.Close()
		},
	}, nil
}
