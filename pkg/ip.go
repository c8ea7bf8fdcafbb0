package pkg

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP returns the client address of the request. Behind the reverse proxy
// the address comes from X-Real-Ip or the first X-Forwarded-For entry.
// Unparsable proxy headers are ignored in favor of the connection address.
func ClientIP(r *http.Request) string {
	candidates := []string{r.Header.Get("X-Real-Ip")}
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		candidates = append(candidates, strings.Split(forwarded, ",")[0])
	}
	for _, candidate := range candidates {
		if ip := parseIP(candidate); ip != "" {
			return ip
		}
	}
	if ip := parseIP(r.RemoteAddr); ip != "" {
		return ip
	}
	return r.RemoteAddr
}

func parseIP(addr string) string {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return ""
	}
	if host, _, err := net.SplitHostPort(addr); err == nil {
		addr = host
	}
	ip := net.ParseIP(addr)
	if ip == nil {
		return ""
	}
	return ip.String()
}
