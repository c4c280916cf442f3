package alog

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/afiskon/promtail-client/promtail"
)

const defaultLokiPushURL = "http://localhost:3100/api/prom/push"

// NewLokiHandler ships records to a Loki instance.
//
// Use it for local development and demo setups only: it mimics a production setting using loki & grafana.
// In production, log to `stdout` and let the container runtime ship the logs.
// If Loki is not reachable when the handler is created, records are dropped
// until a background retry connects. Close stops the retry.
func NewLokiHandler(opt *LokiHandlerOptions) *LokiHandler {
	conf := getPromtailConfig(opt)
	client := getClient(conf)

	// generate json log by writing to local buffer with slog default json
	buf := &bytes.Buffer{}
	renderer := slog.NewJSONHandler(buf, &slog.HandlerOptions{
		Level:       LevelDebug, // allow all messages, as the level gets controlled by the arrowerHandler instead.
		AddSource:   false,
		ReplaceAttr: MapLogLevelsToName,
	})

	handler := &LokiHandler{
		state:    &lokiState{client: client, done: make(chan struct{})},
		renderer: renderer,
		output:   buf,
	}

	if client == nil {
		go retryLokiConnection(handler.state, conf, retryInterval(opt))
	}

	return handler
}

func getPromtailConfig(opt *LokiHandlerOptions) promtail.ClientConfig {
	defaultOpt := &LokiHandlerOptions{
		PushURL: defaultLokiPushURL,
		Labels: map[string]string{
			"service": "userposts",
			"client":  "userposts-loki",
		},
	}

	if opt == nil {
		opt = defaultOpt
	}

	if opt.PushURL == "" {
		opt.PushURL = defaultOpt.PushURL
	}

	if len(opt.Labels) == 0 {
		opt.Labels = defaultOpt.Labels
	}

	return promtail.ClientConfig{
		PushURL:            opt.PushURL,
		BatchWait:          1 * time.Second,
		BatchEntriesNumber: 1,
		SendLevel:          promtail.DEBUG,
		PrintLevel:         promtail.DISABLE,
		Labels:             lokiLabels(opt.Labels),
	}
}

// lokiLabels renders the labels in the stream selector format: {k="v",...}.
func lokiLabels(labels map[string]string) string {
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%q", k, labels[k]))
	}

	return "{" + strings.Join(pairs, ",") + "}"
}

func retryInterval(opt *LokiHandlerOptions) time.Duration {
	const defaultRetryInterval = 15 * time.Second

	if opt == nil || opt.RetryInterval <= 0 {
		return defaultRetryInterval
	}

	return opt.RetryInterval
}

func retryLokiConnection(state *lokiState, conf promtail.ClientConfig, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-state.done:
			return
		case <-t.C:
		}

		client := getClient(conf)
		if client == nil {
			continue
		}

		state.mu.Lock()
		defer state.mu.Unlock()

		select {
		case <-state.done: // closed while connecting
			client.Shutdown()
		default:
			state.client = client
		}

		return
	}
}

func getClient(conf promtail.ClientConfig) promtail.Client { //nolint:ireturn,lll // promtail.NewClientX() only returns interface.
	const pingTimeout = 2 * time.Second

	cli := &http.Client{Timeout: pingTimeout} //nolint:exhaustruct

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, conf.PushURL, nil)
	if err != nil {
		return nil
	}

	res, err := cli.Do(req)
	if err != nil {
		return nil
	}

	_ = res.Body.Close()

	client, _ := promtail.NewClientJson(conf) // Do not handle error here, because promtail always returns `nil`.

	return client
}

type (
	LokiHandlerOptions struct {
		Labels  map[string]string
		PushURL string
		// RetryInterval is the pause between connection attempts,
		// if Loki was not reachable on start. Defaults to 15s.
		RetryInterval time.Duration
	}

	// LokiHandler is a slog.Handler. All copies created by WithAttrs and WithGroup
	// share the same connection state.
	LokiHandler struct {
		state *lokiState

		renderer slog.Handler
		output   *bytes.Buffer
	}

	lokiState struct {
		mu     sync.Mutex
		client promtail.Client

		done      chan struct{}
		closeOnce sync.Once
	}
)

var _ slog.Handler = (*LokiHandler)(nil)

func (l *LokiHandler) Handle(ctx context.Context, record slog.Record) error {
	l.state.mu.Lock()
	defer l.state.mu.Unlock()

	if l.state.client == nil { // client is empty if no loki instance is available => do not log.
		return nil
	}

	err := l.renderer.Handle(ctx, record)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	// Query in grafana with: {service="userposts"} | json
	l.state.client.Infof("%s", strings.TrimSpace(l.output.String()))

	l.output.Reset()

	return nil
}

func (l *LokiHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// Connected reports whether a Loki instance was reachable.
func (l *LokiHandler) Connected() bool {
	l.state.mu.Lock()
	defer l.state.mu.Unlock()

	return l.state.client != nil
}

// Close stops connecting to Loki and flushes the pending records.
// Records handled afterwards are dropped. It is safe to call Close more than once.
func (l *LokiHandler) Close() {
	l.state.closeOnce.Do(func() {
		close(l.state.done)

		l.state.mu.Lock()
		defer l.state.mu.Unlock()

		if l.state.client != nil {
			l.state.client.Shutdown()
			l.state.client = nil
		}
	})
}

func (l *LokiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LokiHandler{
		state:    l.state,
		renderer: l.renderer.WithAttrs(attrs),
		output:   l.output,
	}
}

func (l *LokiHandler) WithGroup(name string) slog.Handler {
	return &LokiHandler{
		state:    l.state,
		renderer: l.renderer.WithGroup(name),
		output:   l.output,
	}
}
