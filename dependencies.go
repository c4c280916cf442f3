// Package userposts wires the shared dependencies of the service:
// configuration, logging, observability, and the web servers.
package userposts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"reflect"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	prometheusSDK "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/go-arrower/userposts/alog"
)

var ErrMissingDependency = errors.New("missing dependency")

// Container holds global dependencies that can be used within each Context, to make initialisation easier.
type Container struct {
	Logger        *slog.Logger
	MeterProvider *metric.MeterProvider
	TraceProvider *trace.TracerProvider
	PromRegistry  *prometheusSDK.Registry
	// Validator reports invalid fields by their json names.
	// It also backs echo.Context.Validate.
	Validator *validator.Validate

	Config *Config

	WebRouter *echo.Echo
	// APIRouter serves the REST resources at the root path.
	APIRouter *echo.Group

	startedAt      time.Time
	traceConn      *grpc.ClientConn
	loki           *alog.LokiHandler
	statusEndpoint *http.Server

	mu       sync.Mutex
	shutdown bool
	statuses map[string]StatusFunc
}

// InitialiseDefaultDependencies builds a Container from conf.
// Nothing is listening yet, call ServeWeb and ServeStatus for that.
func InitialiseDefaultDependencies(ctx context.Context, conf *Config) (*Container, error) {
	if conf == nil {
		return nil, fmt.Errorf("%w: config", ErrMissingDependency)
	}

	dc := &Container{
		Config:    conf,
		startedAt: time.Now(),
		statuses:  map[string]StatusFunc{},
	}

	{ // observability
		resource := resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName(conf)),
			semconv.ServiceInstanceIDKey.String(conf.InstanceName),
			attribute.String("environment", string(conf.Environment)),
		)

		{ // traces
			opts := []trace.TracerProviderOption{
				trace.WithResource(resource),
				trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(0.6))), //nolint:mnd // sample 60% in production
			}

			if conf.Environment == LocalEnv || conf.Environment == TestEnv {
				opts[1] = trace.WithSampler(trace.AlwaysSample())
			}

			if conf.OTEL.Enabled {
				conn, err := grpc.NewClient(
					fmt.Sprintf("%s:%d", conf.OTEL.Host, conf.OTEL.Port),
					grpc.WithTransportCredentials(insecure.NewCredentials()),
					grpc.WithUserAgent(conf.ApplicationName),
				)
				if err != nil {
					return nil, fmt.Errorf("could not connect to trace collector: %w", err)
				}

				exporterOpts := []otlptracegrpc.Option{otlptracegrpc.WithGRPCConn(conn)}
				if conf.Environment == TestEnv {
					// while unit testing no otel endpoint is running and
					// the shutdown would block until its ctx expires.
					exporterOpts = append(exporterOpts, otlptracegrpc.WithTimeout(10*time.Millisecond)) //nolint:mnd
				}

				traceExporter, err := otlptracegrpc.New(ctx, exporterOpts...)
				if err != nil {
					_ = conn.Close()

					return nil, fmt.Errorf("could not create trace exporter: %w", err)
				}

				dc.traceConn = conn
				opts = append(opts, trace.WithBatcher(traceExporter))
			}

			dc.TraceProvider = trace.NewTracerProvider(opts...)
			otel.SetTracerProvider(dc.TraceProvider)
		}

		{ // metrics
			dc.PromRegistry = prometheusSDK.NewRegistry()
			dc.PromRegistry.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}), //nolint:exhaustruct
			)

			exporter, err := prometheus.New(prometheus.WithRegisterer(dc.PromRegistry))
			if err != nil {
				return nil, fmt.Errorf("could not create prometheus exporter: %w", err)
			}

			dc.MeterProvider = metric.NewMeterProvider(
				metric.WithResource(resource),
				metric.WithReader(exporter),
			)
			otel.SetMeterProvider(dc.MeterProvider)
		}
	}

	{ // logger
		dc.Logger, dc.loki = newLogger(conf)
	}

	{ // validation
		dc.Validator = NewValidator()
	}

	{ // web routers
		router := echo.New()
		router.HideBanner = true
		router.HidePort = true
		router.Logger.SetOutput(io.Discard)
		router.Validator = &CustomValidator{validator: dc.Validator}
		router.IPExtractor = echo.ExtractIPFromXFFHeader() // see: https://echo.labstack.com/docs/ip-address

		router.Use(middleware.Recover())
		router.Use(otelecho.Middleware(serviceName(conf), otelecho.WithTracerProvider(dc.TraceProvider)))
		router.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{ //nolint:exhaustruct
			Subsystem:  metricSubsystem(conf.ApplicationName),
			Registerer: dc.PromRegistry,
		}))
		router.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{ //nolint:exhaustruct
			Generator:    uuid.NewString,
			TargetHeader: echo.HeaderXRequestID,
			RequestIDHandler: func(c echo.Context, rid string) {
				c.SetRequest(c.Request().WithContext(alog.AddAttr(
					c.Request().Context(),
					slog.String("request_id", rid)),
				))
			},
		}))

		if conf.Environment == LocalEnv {
			router.Debug = true
		}

		dc.WebRouter = router
		dc.APIRouter = router.Group("")
	}

	dc.Logger.LogAttrs(ctx, alog.LevelInfo, "dependencies initialised",
		slog.String("environment", string(conf.Environment)),
		slog.Bool("otel_enabled", conf.OTEL.Enabled),
	)

	return dc, nil
}

// newLogger returns the LokiHandler as well, if one is configured, so it can be closed on shutdown.
func newLogger(conf *Config) (*slog.Logger, *alog.LokiHandler) {
	opts := []alog.LoggerOpt{}

	var loki *alog.LokiHandler

	if conf.Log.LokiPushURL != "" {
		loki = alog.NewLokiHandler(&alog.LokiHandlerOptions{
			PushURL: conf.Log.LokiPushURL,
			Labels: map[string]string{
				"service":  conf.ApplicationName,
				"instance": conf.InstanceName,
			},
		})
		opts = append(opts, alog.WithHandler(loki))
	}

	var logger *slog.Logger

	if conf.Environment == LocalEnv {
		logger = alog.NewDevelopment(append(opts, alog.WithLevel(alog.ParseLevel(conf.Log.Level)))...)
	} else {
		logger = alog.New(append(opts,
			alog.WithLevel(alog.ParseLevel(conf.Log.Level)),
			alog.WithHandler(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				AddSource:   true,
				Level:       alog.LevelDebug, // the level is controlled by alog
				ReplaceAttr: alog.MapLogLevelsToName,
			})),
		)...)
	}

	return logger.With(
		slog.String("organisation_name", conf.OrganisationName),
		slog.String("application_name", conf.ApplicationName),
		slog.String("instance_name", conf.InstanceName),
		slog.String("git_hash", gitHash()),
		slog.String("environment", string(conf.Environment)),
	), loki
}

// ServeWeb blocks until the web server is shut down.
func (c *Container) ServeWeb() error {
	addr := fmt.Sprintf(":%d", c.Config.HTTP.Port)

	c.Logger.LogAttrs(context.Background(), alog.LevelInfo, "serving web", slog.String("addr", addr))

	err := c.WebRouter.Start(addr)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not serve web: %w", err)
	}

	return nil
}

// ServeStatus blocks until the status server is shut down.
// It returns immediately if the status endpoint is disabled.
func (c *Container) ServeStatus() error {
	if !c.Config.HTTP.StatusEndpointEnabled {
		return nil
	}

	c.mu.Lock()
	if c.shutdown {
		c.mu.Unlock()

		return nil
	}

	c.statusEndpoint = &http.Server{ //nolint:exhaustruct
		Addr:              fmt.Sprintf(":%d", c.Config.HTTP.StatusEndpointPort),
		Handler:           c.StatusHandler(),
		ReadHeaderTimeout: 5 * time.Second, //nolint:mnd
	}
	srv := c.statusEndpoint
	c.mu.Unlock()

	c.Logger.LogAttrs(context.Background(), alog.LevelInfo, "serving status endpoint",
		slog.String("addr", srv.Addr),
		slog.String("metric_path", metricPath),
		slog.String("status_path", statusPath),
	)

	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not serve status endpoint: %w", err)
	}

	return nil
}

// Shutdown stops the servers and flushes the telemetry.
// It is safe to call, even if the servers never started.
func (c *Container) Shutdown(ctx context.Context) error {
	c.Logger.LogAttrs(ctx, alog.LevelInfo, "shutting down all servers")

	var err error

	err = errors.Join(err, c.WebRouter.Shutdown(ctx))

	c.mu.Lock()
	c.shutdown = true
	if c.statusEndpoint != nil {
		err = errors.Join(err, c.statusEndpoint.Shutdown(ctx))
	}
	c.mu.Unlock()

	err = errors.Join(err, c.TraceProvider.Shutdown(ctx))
	err = errors.Join(err, c.MeterProvider.Shutdown(ctx))

	if c.traceConn != nil {
		err = errors.Join(err, c.traceConn.Close())
	}

	if c.loki != nil {
		c.loki.Close()
	}

	if err != nil {
		return fmt.Errorf("could not shutdown cleanly: %w", err)
	}

	return nil
}

// NewValidator reports the json names of invalid fields, as the clients know them.
func NewValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		if name == "" {
			return field.Name
		}

		return name
	})

	return validate
}

// CustomValidator makes go-playground/validator available to echo.Context.Validate.
type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return err //nolint:wrapcheck // return the original validate error to not break the API for the caller.
	}

	return nil
}

func serviceName(conf *Config) string {
	if conf.OTEL.Hostname != "" {
		return conf.OTEL.Hostname
	}

	if conf.OrganisationName == "" {
		return conf.ApplicationName
	}

	return conf.OrganisationName + "." + conf.ApplicationName
}

// metricSubsystem turns name into a valid prometheus name component.
func metricSubsystem(name string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_' {
			return r
		}

		return '_'
	}, name)
}

func gitHash() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return setting.Value
			}
		}
	}

	return "unknown"
}
