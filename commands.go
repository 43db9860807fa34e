package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var configDir string

	rootCmd := &cobra.Command{
		Use:   "startup-hub-server",
		Short: "创业信息分享平台后端",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newServeCmd(&configDir).RunE(cmd, args)
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "config", "配置文件目录")

	rootCmd.AddCommand(newServeCmd(&configDir))
	rootCmd.AddCommand(newIngestCmd(&configDir))
	rootCmd.AddCommand(newRecountCmd(&configDir))
	return rootCmd
}

func newServeCmd(configDir *string) *cobra.Command {
	var exportRoutes bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "启动 HTTP 服务",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := bootstrap(*configDir)
			defer shutdown()
			runServer(app, exportRoutes)
			return nil
		},
	}
	cmd.Flags().BoolVar(&exportRoutes, "export", false, "导出路由到 routes.json 并退出")
	return cmd
}

func newIngestCmd(configDir *string) *cobra.Command {
	ingestCmd := &cobra.Command{
		Use:   "ingest",
		Short: "同步公共数据",
	}

	ingestCmd.AddCommand(&cobra.Command{
		Use:   "notices",
		Short: "同步创业公告",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := bootstrap(*configDir)
			defer shutdown()

			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()
			_, err := app.Modules.PublicData.Service.SyncNotices(ctx)
			return err
		},
	})

	var area string
	placesCmd := &cobra.Command{
		Use:   "places",
		Short: "同步创业中心信息",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := bootstrap(*configDir)
			defer shutdown()

			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()
			_, err := app.Modules.PublicData.Service.SyncPlaces(ctx, area)
			return err
		},
	}
	placesCmd.Flags().StringVar(&area, "area", "", "地区名称，留空使用 public_data.default_area")
	ingestCmd.AddCommand(placesCmd)

	return ingestCmd
}

func newRecountCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "recount-favorites",
		Short: "根据收藏关系重新计算帖子收藏数",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := bootstrap(*configDir)
			defer shutdown()

			_, err := app.Modules.Favorite.Service.Recount(cmd.Context())
			return err
		},
	}
}
