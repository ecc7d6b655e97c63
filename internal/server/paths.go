package server

import "strings"

func parseArcadePath(path string) (string, string, bool) {
	const prefix = "/api/arcade/"
	if !strings.HasPrefix(path, prefix) {
		return "", "", false
	}
	rest := strings.TrimPrefix(path, prefix)
	parts := strings.Split(strings.Trim(rest, "/"), "/")
	if len(parts) == 0 || parts[0] == "" {
		return "", "", false
	}
	sessionID := parts[0]
	if len(parts) == 1 {
		return sessionID, "", true
	}
	if len(parts) == 2 {
		return sessionID, parts[1], true
	}
	return "", "", false
}

func parseArcadeWebsocketPath(path string) (string, bool) {
	const prefix = "/ws/arcade/"
	if !strings.HasPrefix(path, prefix) {
		return "", false
	}
	rest := strings.TrimPrefix(path, prefix)
	rest = strings.Trim(rest, "/")
	if rest == "" || strings.Contains(rest, "/") {
		return "", false
	}
	return rest, true
}
