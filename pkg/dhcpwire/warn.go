package dhcpwire

import "log/slog"

// Warn logs a decode-time anomaly that is worth flagging but not worth
// failing the whole decode over — e.g. an oversized DUID (RFC 8415
// recommends, but does not require, rejecting one over 130 bytes). The
// library stays permissive by default; this is the only place it talks to
// the outside world.
func Warn(msg string, args ...any) {
	slog.Default().Warn(msg, args...)
}
