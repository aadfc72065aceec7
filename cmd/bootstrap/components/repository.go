package components

import (
	"petcare-booking/internal/infra/db"
	"petcare-booking/internal/infra/readstore"
	"petcare-booking/internal/infra/uow"
	"petcare-booking/internal/pkg/clock"
	"petcare-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		clock.NewRealClock,
		NewDBTX,
		// UnitOfWork: every derived write runs through it
		uow.NewPostgresUoW,
		// Read-side store for queries
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
