package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
)

// buildDSN renders a postgres URL from DatabaseConfig.
//
// The password is URL-escaped so values like "pa:ss@word" keep the URL valid,
// and host/port are joined with net.JoinHostPort so IPv6 hosts get brackets.
func buildDSN(d DatabaseConfig) string {
	hostPort := net.JoinHostPort(d.Host, strconv.Itoa(d.Port))

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		d.User,
		url.QueryEscape(d.Password),
		hostPort,
		d.Name,
		d.SSLMode,
	)
}
