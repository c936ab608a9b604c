// Command tcphttpd serves static content over plain TCP. Every request must carry an
// Authorization header. See package app for the environment it reads.
package main

import (
	"github.com/advdv/tcphttp"
	"github.com/advdv/tcphttp/app"
)

func main() {
	app.NewApp[app.BaseEnvironment](func(srv *tcphttp.Server) {
		srv.Use(tcphttp.BasicAuth())
	}).Run()
}
