package internal

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/dushixiang/quill/internal/config"
	"github.com/dushixiang/quill/internal/handler"
	appmiddleware "github.com/dushixiang/quill/internal/middleware"
	"github.com/dushixiang/quill/internal/models"
	"github.com/dushixiang/quill/internal/service"
	"github.com/dushixiang/quill/internal/telegram"
	"github.com/dushixiang/quill/pkg/nostd"
	"github.com/dushixiang/quill/web"
	"github.com/go-orz/orz"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func Run(configPath string) error {
	app := NewQuillApp()

	framework, err := orz.NewFramework(
		orz.WithConfig(configPath),
		orz.WithLoggerFromConfig(),
		orz.WithDatabase(),
		orz.WithHTTP(),
		orz.WithApplication(app),
	)
	if err != nil {
		return err
	}

	return framework.Run()
}

func NewQuillApp() orz.Application {
	return &QuillApp{}
}

var _ orz.Application = (*QuillApp)(nil)

type AppComponents struct {
	AuthHandler       *handler.AuthHandler
	TradeHandler      *handler.TradeHandler
	EquityHandler     *handler.EquityHandler
	AnalyticsHandler  *handler.AnalyticsHandler
	CalculatorHandler *handler.CalculatorHandler
	CurrencyHandler   *handler.CurrencyHandler

	AuthService     *service.AuthService
	CurrencyService *service.CurrencyService

	Telegram *telegram.Telegram
}

type QuillApp struct {
	components *AppComponents
	conf       *config.Config
}

// GetComponents 获取应用组件
func (r *QuillApp) GetComponents() *AppComponents {
	return r.components
}

func (r *QuillApp) Configure(app *orz.App) error {
	logger := app.Logger()
	e := app.GetEcho()
	db := app.GetDatabase()

	var conf config.Config
	err := app.GetConfig().App.Unmarshal(&conf)
	if err != nil {
		return fmt.Errorf("failed to unmarshal config: %v", err)
	}

	components, err := InitializeApp(logger, db, &conf)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %v", err)
	}
	r.components = components
	r.conf = &conf

	if err := db.AutoMigrate(
		models.User{}, models.Trade{}, models.EquityTransaction{},
	); err != nil {
		logger.Fatal("database auto migrate failed", zap.Error(err))
	}

	if err := r.Init(logger); err != nil {
		logger.Fatal("app init failed", zap.Error(err))
	}

	e.HidePort = true
	e.HideBanner = true

	e.Use(middleware.Gzip())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		Skipper:      middleware.DefaultSkipper,
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
	}))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			sugar := logger.Sugar()
			sugar.Error(fmt.Sprintf("[PANIC RECOVER] %v %s\n", err, stack))
			return err
		},
	}))
	e.Use(WithErrorHandler(logger))
	customValidator := nostd.CustomValidator{Validator: validator.New()}
	if err := customValidator.TransInit(); err != nil {
		logger.Sugar().Fatal("failed to init custom validator", zap.Error(err))
	}
	e.Validator = &customValidator

	e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
		Skipper: func(c echo.Context) bool {
			path := c.Request().RequestURI
			if strings.HasPrefix(path, "/api") {
				return true
			}
			return false
		},
		Root:       "",
		Index:      "index.html",
		HTML5:      true,
		Browse:     false,
		IgnoreBase: false,
		Filesystem: http.FS(web.Assets()),
	}))

	api := e.Group("/api")
	{
		// 公开接口
		r.components.AuthHandler.RegisterRoutes(api)
		r.components.CurrencyHandler.RegisterRoutes(api)

		// 需要认证的接口
		protected := api.Group("", appmiddleware.JWTAuth(appmiddleware.JWTAuthConfig{
			AuthService: r.components.AuthService,
			Logger:      logger,
		}))
		r.components.AuthHandler.RegisterProtectedRoutes(protected)
		r.components.TradeHandler.RegisterRoutes(protected)
		r.components.EquityHandler.RegisterRoutes(protected)
		r.components.AnalyticsHandler.RegisterRoutes(protected)
		r.components.CalculatorHandler.RegisterRoutes(protected)
	}

	return nil
}

func (r *QuillApp) Init(logger *zap.Logger) error {
	components := r.GetComponents()
	if components == nil {
		return fmt.Errorf("components not initialized")
	}

	if err := components.CurrencyService.Start(); err != nil {
		return fmt.Errorf("failed to start currency service: %v", err)
	}

	if components.Telegram != nil {
		components.Telegram.Start()
		logger.Info("telegram bot started")
	}

	logger.Info("quill trading journal started")
	return nil
}
