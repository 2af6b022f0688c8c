package migrate

import (
	"context"
	"log/slog"

	"meetup-capture/internal/pkg/config"
	"meetup-capture/internal/pkg/errs"
	"meetup-capture/migrations"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// Apply runs pending migrations through the atlas binary found at atlasBin.
func Apply(ctx context.Context, cfg config.DBConfig, atlasBin string) error {
	wd, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(migrations.FS))
	if err != nil {
		return errs.Wrap(err, "prepare migration directory")
	}
	defer func() { _ = wd.Close() }()

	client, err := atlasexec.NewClient(wd.Path(), atlasBin)
	if err != nil {
		return errs.Wrap(err, "init atlas client")
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.BuildDSN(),
		DirURL: "file://migrations",
	})
	if err != nil {
		return errs.Wrap(err, "apply migrations")
	}

	slog.Info("migrations applied",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target)
	return nil
}
