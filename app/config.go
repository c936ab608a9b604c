package app

import (
	"os"

	"github.com/advdv/tcphttp"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"
)

// Endpoint is the address the server binds to. Both fields are validated by the server.
type Endpoint struct {
	IPAddress string
	Port      string
}

// LoadConfigFile reads the "IpAddress" and "Port" members of a JSON configuration file.
// Port may be written as a string or a number.
func LoadConfigFile(path string) (Endpoint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Endpoint{}, errors.Mark(errors.Wrapf(err, "read configuration file %q", path), tcphttp.ErrConfiguration)
	}

	if !gjson.ValidBytes(data) {
		return Endpoint{}, errors.Mark(errors.Newf("configuration file %q is not valid JSON", path), tcphttp.ErrConfiguration)
	}

	res := gjson.GetManyBytes(data, "IpAddress", "Port")

	return Endpoint{IPAddress: res[0].String(), Port: res[1].String()}, nil
}

// ResolveEndpoint returns the endpoint from the environment. The configuration file is only
// read when the environment leaves the address or the port unset, and it only fills those gaps.
func ResolveEndpoint(env Environment) (Endpoint, error) {
	ep := Endpoint{IPAddress: env.ipAddress(), Port: env.port()}
	if ep.IPAddress != "" && ep.Port != "" {
		return ep, nil
	}

	file, err := LoadConfigFile(env.configFile())
	if err != nil {
		return ep, err
	}

	return Endpoint{
		IPAddress: lo.CoalesceOrEmpty(ep.IPAddress, file.IPAddress),
		Port:      lo.CoalesceOrEmpty(ep.Port, file.Port),
	}, nil
}
