package components

import (
	"meetup-capture/internal/infra/readstore"
	sqlc "meetup-capture/internal/infra/sqlc/generated"
	"meetup-capture/internal/infra/uow"
	"meetup-capture/internal/pkg/clock"
	"meetup-capture/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
	clock.NewRealClock,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			NewMeetupReadStore,
			fx.As(new(queries.MeetupReadStore)),
		),
	),
)

// Write-side repositories are created per transaction by the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewMeetupReadStore(q *sqlc.Queries, db sqlc.DBTX, clk clock.Clock) *readstore.MeetupReadStore {
	return readstore.NewMeetupReadStore(q, db, clk)
}
