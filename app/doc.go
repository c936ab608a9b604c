// Package app wires a [tcphttp.Server] into a runnable process: environment parsing, the
// configuration file, content root discovery, structured logging, OpenTelemetry tracing and
// start/stop lifecycle.
//
// # Overview
//
// A complete server is created in a single call. The setup function is invoked before the
// server starts and may request any provided type:
//
//	app.NewApp[app.BaseEnvironment](func(srv *tcphttp.Server) {
//	    srv.Use(tcphttp.BasicAuth())
//	}).Run()
//
// # Environment Configuration
//
// Define your environment by embedding [BaseEnvironment]:
//
//	type Env struct {
//	    app.BaseEnvironment
//	    Banner string `env:"BANNER"`
//	}
//
// BaseEnvironment provides the following environment variables:
//
//	| Variable                  | Default            | Description                                    |
//	|---------------------------|--------------------|------------------------------------------------|
//	| TCPHTTP_IP_ADDRESS        | -                  | IPv4 or IPv6 address, overrides the file       |
//	| TCPHTTP_PORT              | -                  | Port 0-65535, overrides the file               |
//	| TCPHTTP_CONFIG_FILE       | Configuration.json | JSON file with "IpAddress" and "Port"          |
//	| TCPHTTP_CONTENT_ROOT      | discovered         | Directory holding Static/ and routed content   |
//	| TCPHTTP_ROUTES            | -                  | Comma separated route names for the table      |
//	| TCPHTTP_READ_BUFFER_SIZE  | 1024               | Size of the single read that forms a request   |
//	| TCPHTTP_LOG_LEVEL         | info               | Log level (debug, info, warn, error)           |
//	| TCPHTTP_OTEL_EXPORTER     | none               | Trace exporter: "none" or "stdout"             |
//	| TCPHTTP_SERVICE_NAME      | tcphttp            | Service name on exported traces                |
//
// The configuration file is only read when the address or the port is missing from the
// environment. Without TCPHTTP_CONTENT_ROOT the content root is found with
// [DiscoverContentRoot] from the working directory.
//
// # Lifecycle
//
// The endpoint is bound when the app starts, so an address that cannot be bound fails
// start-up. Connections are then served in the background until the app is stopped.
package app
