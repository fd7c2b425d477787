package observe

import (
	"encoding/json"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"

	"weather-chart/pkg/logger"
)

const (
	_sentryMaxErrorDepth        int           = 9
	_sentryFlushTimeout         time.Duration = 5 * time.Second
	_sentryServerRequestTimeout time.Duration = 5 * time.Second

	_logTimestampLayout = "2006-01-02T15-04-05.000"
)

// SentryHook is an io.Writer meant to sit next to stdout in the logger's
// write syncers. It forwards error-and-above JSON log entries to Sentry.
type SentryHook struct {
	appEnv  string
	appName string
	enabled bool
	capture func(event *sentry.Event) *sentry.EventID
	l       *logger.Logger
}

func NewSentryHook(
	appEnv, appName string,
	maxErrorDepth int,
	isDebug bool,
	dsn string,
) *SentryHook {
	h := &SentryHook{
		appEnv:  appEnv,
		appName: appName,
		capture: sentry.CaptureEvent,
	}

	if dsn == "" {
		log.Println("Stacktracer disabled: no DSN")
		return h
	}
	if maxErrorDepth == 0 {
		maxErrorDepth = _sentryMaxErrorDepth
	}
	sentryTransport := sentry.NewHTTPTransport()
	sentryTransport.Timeout = _sentryServerRequestTimeout
	if err := sentry.Init(
		sentry.ClientOptions{
			AttachStacktrace: true,
			Debug:            isDebug,
			Dsn:              dsn,
			Environment:      appEnv,
			MaxErrorDepth:    maxErrorDepth,
			ServerName:       appName,
			Transport:        sentryTransport,
		}); err != nil {

		log.Println("Stacktracer init error: ", err.Error())
		return h
	}
	log.Println("Stacktracer init success")
	h.enabled = true

	return h
}

func (*SentryHook) mapLevel(zl zapcore.Level) sentry.Level {

	switch zl {

	case zapcore.DebugLevel, zapcore.InvalidLevel:
		return sentry.LevelDebug
	case zapcore.InfoLevel:
		return sentry.LevelInfo
	case zapcore.WarnLevel:
		return sentry.LevelWarning
	case zapcore.ErrorLevel:
		return sentry.LevelError
	case zapcore.DPanicLevel, zapcore.FatalLevel, zapcore.PanicLevel:
		return sentry.LevelFatal

	}

	return sentry.LevelDebug
}

type logEntry struct {
	Level      string `json:"level"`
	AppName    string `json:"app_name"`
	AppEnv     string `json:"app_env"`
	RenderID   string `json:"render_id"`
	CallerFile string `json:"caller_file"`
	CallerLine int    `json:"caller_line"`
	CallerFunc string `json:"caller_func"`
	Stack      string `json:"stack"`
	Message    string `json:"msg"`
	Error      string `json:"error"`
	Timestamp  string `json:"timestamp"`
}

func (h *SentryHook) Write(p []byte) (n int, err error) {
	if !h.enabled {
		return len(p), nil
	}

	var entry logEntry
	if err := json.Unmarshal(p, &entry); err != nil {
		h.report(errors.Wrap(err, "[SentryHook] json.Unmarshal data"))
		return len(p), nil
	}

	level, err := zapcore.ParseLevel(entry.Level)
	if err != nil {
		h.report(errors.Wrap(err, "[SentryHook] parse zap level"))
		return len(p), nil
	}
	if level < zapcore.ErrorLevel || len(entry.Message) == 0 {
		return len(p), nil
	}

	h.capture(h.buildEvent(level, entry))

	return len(p), nil
}

func (h *SentryHook) buildEvent(level zapcore.Level, entry logEntry) *sentry.Event {
	timestamp, _ := time.ParseInLocation(_logTimestampLayout, entry.Timestamp, time.UTC)

	event := sentry.NewEvent()
	event.Extra["AppName"] = h.appName
	event.Environment = h.appEnv
	event.Level = h.mapLevel(level)
	event.Timestamp = timestamp
	event.Message = entry.Message
	event.Extra["Error"] = entry.Error
	event.Extra["CallerFile"] = entry.CallerFile
	event.Extra["CallerLine"] = entry.CallerLine
	event.Extra["CallerFunc"] = entry.CallerFunc
	event.Extra["Stack"] = entry.Stack
	event.Extra["TimeStamp"] = entry.Timestamp
	if entry.RenderID != "" {
		event.Tags["render_id"] = entry.RenderID
	}
	event.Exception = append(event.Exception, sentry.Exception{
		Type:       entry.Message,
		Value:      entry.Error,
		Stacktrace: sentry.NewStacktrace(),
	})

	return event
}

// report must not log at error level: the entry would come straight back here.
func (h *SentryHook) report(err error) {
	if h.l != nil {
		h.l.Warning(err.Error())
		return
	}
	log.Println(err.Error())
}

func (h *SentryHook) SetLogger(l *logger.Logger) {
	if l != nil {
		h.l = l
	}
}

// Flush waits for buffered events to be delivered.
func (h *SentryHook) Flush() bool {
	if !h.enabled {
		return true
	}
	return sentry.Flush(_sentryFlushTimeout)
}
