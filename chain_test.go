package tcphttp_test

import (
	"context"
	"testing"

	"github.com/advdv/tcphttp"
	"github.com/stretchr/testify/require"
)

func recording(res *string, name string, outcome tcphttp.Code) tcphttp.Middleware {
	return tcphttp.MiddlewareFunc(func(context.Context, *tcphttp.Request) tcphttp.Code {
		*res += name
		return outcome
	})
}

func TestChainRunsInOrder(t *testing.T) {
	var res string
	chain := tcphttp.NewChain(
		recording(&res, "1", tcphttp.CodeAccepted),
		recording(&res, "2", tcphttp.CodeAccepted),
	)
	chain.Use(recording(&res, "3", tcphttp.CodeAccepted))

	accepted, outcome := chain.Run(context.Background(), tcphttp.NewRequest("GET / HTTP/1.1"))
	require.True(t, accepted)
	require.Equal(t, tcphttp.CodeAccepted, outcome)
	require.Equal(t, "123", res)
	require.Equal(t, 3, chain.Len())
}

func TestChainShortCircuits(t *testing.T) {
	for _, outcome := range []tcphttp.Code{
		tcphttp.CodeUnauthorized,
		tcphttp.CodeNotFound,
		tcphttp.CodeInternalServerError,
		tcphttp.CodeOK,
		tcphttp.Code(418),
	} {
		var res string
		chain := tcphttp.NewChain(
			recording(&res, "1", tcphttp.CodeAccepted),
			recording(&res, "2", outcome),
			recording(&res, "3", tcphttp.CodeAccepted),
		)

		accepted, got := chain.Run(context.Background(), tcphttp.NewRequest("GET / HTTP/1.1"))
		require.False(t, accepted)
		require.Equal(t, outcome, got)
		require.Equal(t, "12", res)
	}
}

func TestEmptyChainAccepts(t *testing.T) {
	accepted, outcome := tcphttp.NewChain().Run(context.Background(), tcphttp.NewRequest(""))
	require.True(t, accepted)
	require.Equal(t, tcphttp.CodeAccepted, outcome)
}

func TestBasicAuth(t *testing.T) {
	ctx, auth := context.Background(), tcphttp.BasicAuth()

	require.Equal(t, tcphttp.CodeUnauthorized,
		auth.Handle(ctx, tcphttp.NewRequest("GET /static/x.css HTTP/1.1\r\nHost: x\r\n\r\n")))
	require.Equal(t, tcphttp.CodeAccepted,
		auth.Handle(ctx, tcphttp.NewRequest("GET /static/x.css HTTP/1.1\r\nAuthorization: Basic Zm9v\r\n\r\n")))
	require.Equal(t, tcphttp.CodeAccepted,
		auth.Handle(ctx, tcphttp.NewRequest("GET /x HTTP/1.1\r\nAuthorization: garbage!\r\n\r\n")))
	require.Equal(t, tcphttp.CodeUnauthorized, auth.Handle(ctx, tcphttp.NewRequest("")))
}
