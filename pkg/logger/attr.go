package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// IdentityID records the identity identifier under the key "identity_id".
// If id is nil, it returns an empty Attr.
func IdentityID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("identity_id", id)
}

// Event records a security event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Match records a verification outcome under the key "match". Verification
// logging carries only this boolean plus the identity reference, never the
// candidate code, the time-step codes or any part of the secret.
func Match(ok bool) slog.Attr {
	return slog.Bool("match", ok)
}

// Step records a TOTP time-step index under the key "step". Step numbers
// are safe to log; codes and secrets are not.
func Step(step int64) slog.Attr {
	return slog.Int64("step", step)
}
