package commands

import (
	"tutorhub/internal/infra"
	"tutorhub/internal/pkg/errs"
)

// Repository error kinds carry no domain meaning on their own; each command
// maps them onto the sentinel that fits its operation.

func mapSlotLookupErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrSlotNotFound)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}

func mapBookingLookupErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrBookingNotFound)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}

func mapNotificationLookupErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrNotificationNotFound)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
