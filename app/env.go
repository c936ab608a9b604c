package app

import (
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"go.uber.org/zap/zapcore"
)

// Environment defines the interface that all environment configurations must implement.
// Embed BaseEnvironment in your struct to satisfy this interface.
type Environment interface {
	ipAddress() string
	port() string
	configFile() string
	contentRoot() string
	routes() []string
	readBufferSize() int
	logLevel() zapcore.Level
	otelExporter() string
	serviceName() string
}

// BaseEnvironment contains the environment variables read by the server.
// Embed this in your custom environment struct.
type BaseEnvironment struct {
	// IPAddress and Port take precedence over the values in the configuration file.
	IPAddress  string `env:"TCPHTTP_IP_ADDRESS"`
	Port       string `env:"TCPHTTP_PORT"`
	ConfigFile string `env:"TCPHTTP_CONFIG_FILE" envDefault:"Configuration.json"`
	// ContentRoot is discovered from the working directory when empty.
	ContentRoot    string        `env:"TCPHTTP_CONTENT_ROOT"`
	Routes         []string      `env:"TCPHTTP_ROUTES" envSeparator:","`
	ReadBufferSize int           `env:"TCPHTTP_READ_BUFFER_SIZE" envDefault:"1024"`
	LogLevel       zapcore.Level `env:"TCPHTTP_LOG_LEVEL" envDefault:"info"`
	OtelExporter   string        `env:"TCPHTTP_OTEL_EXPORTER" envDefault:"none"`
	ServiceName    string        `env:"TCPHTTP_SERVICE_NAME" envDefault:"tcphttp"`
}

func (e BaseEnvironment) ipAddress() string {
	return e.IPAddress
}

func (e BaseEnvironment) port() string {
	return e.Port
}

func (e BaseEnvironment) configFile() string {
	return e.ConfigFile
}

func (e BaseEnvironment) contentRoot() string {
	return e.ContentRoot
}

// routes returns the configured route names, trimmed and without blanks or duplicates.
func (e BaseEnvironment) routes() []string {
	return lo.Uniq(lo.Compact(lo.Map(e.Routes, func(r string, _ int) string {
		return strings.TrimSpace(r)
	})))
}

func (e BaseEnvironment) readBufferSize() int {
	return e.ReadBufferSize
}

func (e BaseEnvironment) logLevel() zapcore.Level {
	return e.LogLevel
}

func (e BaseEnvironment) otelExporter() string {
	return e.OtelExporter
}

func (e BaseEnvironment) serviceName() string {
	return e.ServiceName
}

var _ Environment = BaseEnvironment{}

// ParseEnv parses environment variables into the given Environment type.
func ParseEnv[E Environment]() func() (E, error) {
	return func() (e E, err error) {
		if err := env.Parse(&e); err != nil {
			return e, errors.Wrap(err, "failed to parse environment")
		}
		return e, nil
	}
}
