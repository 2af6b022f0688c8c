package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"meetup-capture/cmd/bootstrap"
	"meetup-capture/internal/infra/migrate"
	"meetup-capture/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func init() {
	// 設定ミスでもデバッグ情報を公開しない（フェイルセーフ）
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           meetup-capture
// @version         1.0
// @description     Meetup verification codes and payment capture.

// @BasePath  /
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			gin.EnableJsonDecoderDisallowUnknownFields()
			listenAddr := ":" + cfg.Server.Port
			logger.Info("🚀 サーバーを起動します", "address", listenAddr, "mode", gin.Mode())
			go func() {
				if err := engine.Run(listenAddr); err != nil {
					logger.Error("サーバーの起動に失敗しました", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("🛑 サーバーを停止します")
			return nil
		},
	})
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "meetup-capture",
		Short: "meetup verification and payment capture service",
	}
	rootCmd.AddCommand(newServeCmd(), newMigrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "run the HTTP API and background jobs",
		RunE: func(_ *cobra.Command, _ []string) error {
			app := fx.New(
				bootstrap.Module,
				fx.Provide(func() *gin.Engine { return gin.New() }),
				fx.Invoke(startServer),
			)

			if err := app.Start(context.Background()); err != nil {
				slog.Error("アプリケーションの起動に失敗しました", "error", err)
				return err
			}

			<-app.Done()

			stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := app.Stop(stopCtx); err != nil {
				slog.Error("アプリケーションの停止に失敗しました", "error", err)
			}

			slog.Info("アプリケーションが正常に停止しました")
			return nil
		},
	}
}

func newMigrateCmd() *cobra.Command {
	var atlasBin string
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			return migrate.Apply(cmd.Context(), cfg.DB, atlasBin)
		},
	}
	cmd.Flags().StringVar(&atlasBin, "atlas", "atlas", "path to the atlas binary")
	return cmd
}
