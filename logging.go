package autoreset

import (
	"errors"
	"log"

	"github.com/joeycumines/logiface"
)

// logCreated logs (at debug) the successful creation of an event.
func logCreated(logger *logiface.Logger[logiface.Event], b backend) {
	logger.Debug().
		Str(`backend`, b.name()).
		Uint64(`fd`, uint64(b.fd())).
		Log(`autoreset: event created`)
}

// logCreateFailed logs a failed New call, distinguishing resource exhaustion
// from an unsupported platform.
func logCreateFailed(logger *logiface.Logger[logiface.Event], err error) {
	if errors.Is(err, ErrUnsupported) {
		logger.Warning().
			Err(err).
			Log(`autoreset: unsupported platform`)
		return
	}
	b := logger.Err()
	var ce *CreateError
	if errors.As(err, &ce) {
		b = b.Str(`backend`, ce.Backend).Str(`op`, ce.Op)
	}
	b.Err(err).Log(`autoreset: failed to create event`)
}

// logCritical logs a fatal kernel error, just prior to panicking. The logger
// panicking must not mask the original failure, so that falls back to the
// standard logger.
func (e *Event) logCritical(err *OpError) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("autoreset: logger panic while logging %v: %v", err, r)
		}
	}()
	e.logger.Crit().
		Str(`backend`, err.Backend).
		Str(`op`, err.Op).
		Err(err.Err).
		Log(`autoreset: fatal kernel error`)
}
