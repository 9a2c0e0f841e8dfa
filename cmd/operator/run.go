package main

import (
	"context"
	"fmt"
	"time"

	"github.com/Layr-Labs/image-verification-operator/pkg/config"
	"github.com/Layr-Labs/image-verification-operator/pkg/logger"
	"github.com/Layr-Labs/image-verification-operator/pkg/operatorNode"
	"github.com/Layr-Labs/image-verification-operator/pkg/shutdown"
	"github.com/Layr-Labs/image-verification-operator/pkg/types"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Register the operator and respond to image verification tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		initRunCmd(cmd)

		if err := loadConfig(); err != nil {
			return fmt.Errorf("%w: %w", types.ErrConfig, err)
		}

		l, err := logger.NewLogger(&logger.LoggerConfig{Debug: Config.Debug})
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer l.Sync() //nolint:errcheck

		if err := Config.Validate(); err != nil {
			l.Sugar().Errorw("Invalid configuration", zap.Error(err))
			return fmt.Errorf("%w: %w", types.ErrConfig, err)
		}

		l.Sugar().Infow("operator run",
			zap.String("rpcUrl", Config.Chain.RpcUrl),
			zap.Uint("chainId", uint(Config.Chain.ChainId)),
			zap.String("feedMode", string(operatorNode.ResolveFeedMode(Config))),
			zap.String("storage", Config.Storage.Type),
		)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		node := operatorNode.NewOperatorNode(Config, l)
		if err := node.Initialize(ctx); err != nil {
			l.Sugar().Errorw("Failed to initialize operator node", zap.Error(err))
			node.Shutdown()
			return err
		}

		runErr := make(chan error, 1)
		done := make(chan bool)
		go func() {
			err := node.Run(ctx)
			if err != nil {
				l.Sugar().Errorw("Operator node stopped with an error", zap.Error(err))
			}
			runErr <- err
			close(done)
		}()

		gracefulShutdownNotifier := shutdown.CreateGracefulShutdownChannel()
		shutdown.ListenForShutdown(gracefulShutdownNotifier, done, func() {
			l.Sugar().Info("Shutting down...")
			cancel()
			node.Shutdown()
		}, Config.ShutdownGracePeriod()+5*time.Second, l)

		select {
		case err := <-runErr:
			return err
		default:
			return nil
		}
	},
}

func initRunCmd(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err := viper.BindPFlag(config.KebabToSnakeCase(f.Name), f); err != nil {
			fmt.Printf("Failed to bind flag '%s' - %+v\n", f.Name, err)
		}
		if err := viper.BindEnv(f.Name); err != nil {
			fmt.Printf("Failed to bind env '%s' - %+v\n", f.Name, err)
		}
	})
}
