package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/alimikegami/point-of-sales/catalog-service/config"
	_ "github.com/alimikegami/point-of-sales/catalog-service/docs"
	"github.com/alimikegami/point-of-sales/catalog-service/internal/controller"
	"github.com/alimikegami/point-of-sales/catalog-service/internal/infrastructure/tracing"
	catalogmiddleware "github.com/alimikegami/point-of-sales/catalog-service/internal/middleware"
	"github.com/alimikegami/point-of-sales/catalog-service/internal/repository"
	"github.com/alimikegami/point-of-sales/catalog-service/internal/service"
	"github.com/alimikegami/point-of-sales/catalog-service/pkg/response"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/unrolled/secure"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	DB        *mongo.Database
	Config    *config.Config
	Publisher service.EventPublisher
	Server    *echo.Echo
	Metrics   *echo.Echo
}

// ConfigureLogger installs the global zerolog logger. Development gets the
// console writer and debug level, everything else JSON at info level.
func ConfigureLogger(cfg *config.Config) {
	if cfg.IsDevelopment() {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}

	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// NewServer builds the API server with every route under /api and the
// Swagger UI under /api-docs. extra middleware runs before request logging.
func NewServer(categoryService service.CategoryService, productService service.ProductService, extra ...echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	})

	e.Use(middleware.Recover())
	e.Use(extra...)
	e.Use(catalogmiddleware.Logger)
	e.Use(middleware.CORS())
	e.Use(echo.WrapMiddleware(secureMiddleware.Handler))

	g := e.Group("/api")
	controller.CreateCategoryController(g, categoryService)
	controller.CreateProductController(g, productService)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteMessageResponse(c, "Hello, World!")
	})

	e.GET("/api-docs/*", echoSwagger.WrapHandler)

	return e
}

// Start serves the API and metrics servers until ctx is cancelled or one of
// them fails, then shuts both down. The global logger is expected to be
// configured by the caller.
func (app *App) Start(ctx context.Context) error {
	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize tracing")
	} else {
		defer func() {
			if err := traceProvider.Shutdown(context.Background()); err != nil {
				log.Error().Err(err).Msg("Failed to shutdown tracing")
			}
		}()
	}

	categoryRepo := repository.CreateNewMongoDBCategoryRepository(app.DB)
	productRepo := repository.CreateNewMongoDBProductRepository(app.DB)
	categoryService := service.CreateCategoryService(categoryRepo, app.Publisher)
	productService := service.CreateProductService(productRepo, categoryRepo, app.Publisher)

	// Empty subsystem so metric names match across services.
	app.Server = NewServer(categoryService, productService,
		traceRequests(otel.Tracer(tracing.ServiceName)),
		echoprometheus.NewMiddleware(""),
	)

	app.Metrics = echo.New()
	app.Metrics.HideBanner = true
	app.Metrics.HidePort = true
	app.Metrics.GET("/metrics", echoprometheus.NewHandler())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("port", app.Config.ServicePort).Msg("Starting API server")
		if err := app.Server.Start(fmt.Sprintf(":%s", app.Config.ServicePort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("api server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := app.Metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutting down")
		return app.StopServer()
	})

	return g.Wait()
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var err error
	if app.Server != nil {
		err = errors.Join(err, app.Server.Shutdown(ctx))
	}
	if app.Metrics != nil {
		err = errors.Join(err, app.Metrics.Shutdown(ctx))
	}

	return err
}

func traceRequests(tracer trace.Tracer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			c.SetRequest(c.Request().WithContext(ctx))

			err := next(c)

			status := c.Response().Status
			span.SetAttributes(attribute.Int("http.status_code", status))
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}

			return err
		}
	}
}
