package components

import (
	"tutorhub/internal/infra/readstore"
	"tutorhub/internal/infra/uow"

	"go.uber.org/fx"
)

// Write repositories are built inside the unit of work so they share its
// transaction handle; only the read stores and the unit of work itself are
// wired here.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		uow.NewPostgresUoW,
		readstore.NewSlotReadStore,
		readstore.NewBookingReadStore,
		readstore.NewNotificationReadStore,
	),
)
