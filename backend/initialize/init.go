package initialize

import (
	"fmt"
	"net/http"

	"ieltsim/backend/app/cache"
	"ieltsim/backend/app/controllers"
	"ieltsim/backend/app/db"
	jwtutil "ieltsim/backend/app/jwt"
	"ieltsim/backend/app/middleware"
	"ieltsim/backend/app/models"
	"ieltsim/backend/app/repo"
	"ieltsim/backend/app/services"
	"ieltsim/backend/config"
	"ieltsim/backend/global"
	"ieltsim/backend/router"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	Cfg     *config.Config
	DB      *gorm.DB
	Router  http.Handler
	Auth    *controllers.AuthController
	Test    *controllers.TestController
	Admin   *controllers.AdminController
	Users   *services.UserService
	Results *services.ResultService
	Stats   *services.StatsService
}

func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg

	gdb, err := db.Connect(db.Config{
		Driver: cfg.DB.Driver, Host: cfg.DB.Host, Port: cfg.DB.Port,
		User: cfg.DB.User, Password: cfg.DB.Pass, DBName: cfg.DB.Name, Path: cfg.DB.Path,
	})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	// MySQL's utf8mb4 default collation compares case-insensitively, which
	// would fold "Alice" and "alice" into one username. Pin a binary
	// collation there; sqlite compares bytes already.
	migrator := gdb
	if cfg.DB.Driver != "sqlite" {
		migrator = gdb.Set("gorm:table_options", "DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_bin")
	}
	if err := migrator.AutoMigrate(&models.User{}, &models.Result{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Optional redis-backed aggregate cache.
	var agCache *cache.Cache
	if cfg.Redis.Addr != "" {
		global.Rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Pass, DB: cfg.Redis.DB})
		agCache = cache.New(global.Rdb, cfg.Leaderboard.CacheTTL)
	}

	// Repos and services
	userRepo := repo.NewUserRepository(gdb)
	resultRepo := repo.NewResultRepository(gdb)
	userSvc := services.NewUserService(userRepo, agCache)
	resultSvc := services.NewResultService(resultRepo, agCache)
	statsSvc := services.NewStatsService(userRepo, resultRepo, agCache)

	if err := userSvc.EnsureAdmin(cfg.Admin.Username, cfg.Admin.Password); err != nil {
		return nil, fmt.Errorf("seed admin: %w", err)
	}

	// Controllers
	signer := &jwtutil.Signer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer, ExpHours: cfg.JWT.ExpHours}
	httpCtrl := controllers.NewHTTPController()
	authCtrl := controllers.NewAuthController(userSvc, signer)
	testCtrl := controllers.NewTestController(resultSvc, statsSvc, cfg.Leaderboard.Limit)
	adminCtrl := controllers.NewAdminController(userSvc, statsSvc)
	mw := &middleware.Auth{Signer: signer, Users: userSvc}

	h := router.NewRouter(httpCtrl, authCtrl, testCtrl, adminCtrl, mw)
	h = middleware.Logging(h)

	return &App{
		Cfg: cfg, DB: gdb, Router: h,
		Auth: authCtrl, Test: testCtrl, Admin: adminCtrl,
		Users: userSvc, Results: resultSvc, Stats: statsSvc,
	}, nil
}
