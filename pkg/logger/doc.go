// Package logger provides a small factory around log/slog plus attribute
// constructors shared by the two-factor subsystem.
//
// The attribute helpers exist to make the redaction policy structural:
// verification and enrollment logging uses IdentityID, Event, Match and
// Step. Step numbers and match booleans are loggable, secret material and
// candidate codes have no helper and must never appear in a record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithAttr(slog.String("service", "twofactor")),
//	)
//
//	log.InfoContext(ctx, "two-factor login verification",
//	    logger.IdentityID(userID),
//	    logger.Match(ok),
//	)
package logger
