package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/hydroflow/internal/auth"
	"github.com/KirkDiggler/hydroflow/internal/common/clock"
	"github.com/KirkDiggler/hydroflow/internal/common/keyspace"
	"github.com/KirkDiggler/hydroflow/internal/common/uuid"
	"github.com/KirkDiggler/hydroflow/internal/config"
	"github.com/KirkDiggler/hydroflow/internal/database"
	"github.com/KirkDiggler/hydroflow/internal/handlers/api"
	"github.com/KirkDiggler/hydroflow/internal/handlers/discord"
	"github.com/KirkDiggler/hydroflow/internal/llm"
	"github.com/KirkDiggler/hydroflow/internal/logger"
	accountRepo "github.com/KirkDiggler/hydroflow/internal/repositories/account"
	achievementRepo "github.com/KirkDiggler/hydroflow/internal/repositories/achievement"
	"github.com/KirkDiggler/hydroflow/internal/repositories/cloud"
	dailyStatsRepo "github.com/KirkDiggler/hydroflow/internal/repositories/daily_stats"
	profileRepo "github.com/KirkDiggler/hydroflow/internal/repositories/profile"
	settingsRepo "github.com/KirkDiggler/hydroflow/internal/repositories/settings"
	"github.com/KirkDiggler/hydroflow/internal/scheduler"
	"github.com/KirkDiggler/hydroflow/internal/services/achievement"
	"github.com/KirkDiggler/hydroflow/internal/services/insights"
	"github.com/KirkDiggler/hydroflow/internal/services/messaging"
	"github.com/KirkDiggler/hydroflow/internal/services/notification"
	"github.com/KirkDiggler/hydroflow/internal/services/reminder"
	"github.com/KirkDiggler/hydroflow/internal/services/tracker"
	"github.com/KirkDiggler/hydroflow/internal/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Log.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	lg := logger.L()

	loc, err := cfg.Location()
	if err != nil {
		lg.Fatal("invalid timezone", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		lg.Fatal("failed to connect to redis", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
	}
	cancel()

	// Initialize local repositories
	keys := keyspace.New(cfg.App.Namespace)

	statsRepo, err := dailyStatsRepo.NewRedis(&dailyStatsRepo.Config{RedisClient: redisClient, Keyspace: keys})
	if err != nil {
		lg.Fatal("failed to create daily stats repository", zap.Error(err))
	}

	settingsStore, err := settingsRepo.NewRedis(&settingsRepo.Config{RedisClient: redisClient, Keyspace: keys})
	if err != nil {
		lg.Fatal("failed to create settings repository", zap.Error(err))
	}

	achievementStore, err := achievementRepo.NewRedis(&achievementRepo.Config{RedisClient: redisClient, Keyspace: keys})
	if err != nil {
		lg.Fatal("failed to create achievement repository", zap.Error(err))
	}

	profiles, err := profileRepo.NewRedis(&profileRepo.Config{RedisClient: redisClient, Keyspace: keys})
	if err != nil {
		lg.Fatal("failed to create profile repository", zap.Error(err))
	}

	// The remote store is optional, without it every profile is a guest
	var (
		cloudRepo cloud.Repository
		accounts  accountRepo.Repository
	)
	if cfg.Database.Driver != "" {
		db, err := database.NewDB(cfg.Database.Driver, cfg.Database.DSN)
		if err != nil {
			lg.Fatal("failed to open database", zap.String("driver", cfg.Database.Driver), zap.Error(err))
		}
		defer db.Close()

		remote, err := cloud.NewSQL(&cloud.Config{DB: db})
		if err != nil {
			lg.Fatal("failed to create cloud repository", zap.Error(err))
		}
		cloudRepo = remote

		accountStore, err := accountRepo.NewSQL(&accountRepo.Config{DB: db})
		if err != nil {
			lg.Fatal("failed to create account repository", zap.Error(err))
		}
		accounts = accountStore
	} else {
		lg.Info("no database configured, running guest only")
	}

	clk := clock.New(loc)
	hub := websocket.NewHub(cfg.Server.AllowedOrigins, lg.Named("websocket"))
	go hub.Run(ctx)

	// Discord is optional. The session is shared by the DM notifier and the bot
	var (
		session       *discordgo.Session
		systemChannel notification.SystemChannel
		bot           *discord.Bot
	)
	if cfg.Discord.Token != "" {
		session, err = discord.NewSession(cfg.Discord.Token)
		if err != nil {
			lg.Fatal("failed to create discord session", zap.Error(err))
		}

		notifier, err := discord.NewNotifier(&discord.NotifierConfig{
			Messenger:   session,
			ProfileRepo: profiles,
			Logger:      lg.Named("discord"),
		})
		if err != nil {
			lg.Fatal("failed to create discord notifier", zap.Error(err))
		}
		systemChannel = notifier
	}

	// Initialize services
	notifier, err := notification.New(&notification.Config{
		Publisher:     hub,
		SystemChannel: systemChannel,
		Logger:        lg.Named("notification"),
	})
	if err != nil {
		lg.Fatal("failed to create notification service", zap.Error(err))
	}

	messages, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		lg.Fatal("failed to create messaging service", zap.Error(err))
	}

	achievementSvc, err := achievement.New(&achievement.Config{
		DailyStatsRepo:  statsRepo,
		AchievementRepo: achievementStore,
		Notifier:        notifier,
		Messages:        messages,
		Clock:           clk,
		Logger:          lg.Named("achievement"),
	})
	if err != nil {
		lg.Fatal("failed to create achievement service", zap.Error(err))
	}

	trackerSvc, err := tracker.New(&tracker.Config{
		HistoryDays:    cfg.App.HistoryDays,
		DailyStatsRepo: statsRepo,
		SettingsRepo:   settingsStore,
		CloudRepo:      cloudRepo,
		Achievements:   achievementSvc,
		Notifier:       notifier,
		Messages:       messages,
		Clock:          clk,
		UUIDGenerator:  uuid.New(),
		Logger:         lg.Named("tracker"),
	})
	if err != nil {
		lg.Fatal("failed to create tracker service", zap.Error(err))
	}

	reminderSvc, err := reminder.New(&reminder.Config{
		SettingsRepo:   settingsStore,
		DailyStatsRepo: statsRepo,
		Notifier:       notifier,
		Messages:       messages,
		Clock:          clk,
		Logger:         lg.Named("reminder"),
	})
	if err != nil {
		lg.Fatal("failed to create reminder service", zap.Error(err))
	}

	llmClient, err := llm.NewLLMClient(cfg, lg.Named("llm"))
	if err != nil {
		lg.Fatal("failed to create llm client", zap.Error(err))
	}

	insightsSvc, err := insights.New(&insights.Config{LLM: llmClient, Logger: lg.Named("insights")})
	if err != nil {
		lg.Fatal("failed to create insights service", zap.Error(err))
	}

	sessions, err := auth.New(&auth.Config{
		SessionSecret: cfg.Auth.SessionSecret,
		SecureCookies: cfg.Auth.SecureCookies,
		Accounts:      accounts,
		ProfileRepo:   profiles,
		Tracker:       trackerSvc,
		Clock:         clk,
		Logger:        lg.Named("auth"),
	})
	if err != nil {
		lg.Fatal("failed to create auth manager", zap.Error(err))
	}

	// Reminder ticks
	sched, err := scheduler.New(&scheduler.Config{
		ProfileRepo: profiles,
		Reminders:   reminderSvc,
		Schedule:    cfg.Reminder.Schedule,
		Location:    loc,
		Logger:      lg.Named("scheduler"),
	})
	if err != nil {
		lg.Fatal("failed to create scheduler", zap.Error(err))
	}
	sched.Start()

	if session != nil {
		bot, err = discord.New(&discord.Config{
			Session:       session,
			ApplicationID: cfg.Discord.ApplicationID,
			GuildID:       cfg.Discord.GuildID,
			Tracker:       trackerSvc,
			ProfileRepo:   profiles,
			Logger:        lg.Named("discord"),
		})
		if err != nil {
			lg.Fatal("failed to create discord bot", zap.Error(err))
		}

		if err := bot.Start(); err != nil {
			lg.Fatal("failed to start discord bot", zap.Error(err))
		}
	}

	handler, err := api.New(&api.Config{
		Tracker:        trackerSvc,
		Achievements:   achievementSvc,
		Insights:       insightsSvc,
		ProfileRepo:    profiles,
		Sessions:       sessions,
		Reminders:      reminderSvc,
		Events:         hub,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Logger:         lg.Named("api"),
	})
	if err != nil {
		lg.Fatal("failed to create api handler", zap.Error(err))
	}

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		lg.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	lg.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		lg.Error("server shutdown failed", zap.Error(err))
	}

	<-sched.Stop().Done()

	if bot != nil {
		if err := bot.Stop(); err != nil {
			lg.Error("failed to stop discord bot", zap.Error(err))
		}
	}
}
