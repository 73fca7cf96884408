package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tutils/trand/authority"
	"golang.org/x/time/rate"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an entropy authority",
	Long: `Start an entropy authority serving random bytes over HTTP and WebSocket, For example:
  trand serve --listen=0.0.0.0:8080 --max-size=1024 --rate=50 --burst=100`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := authority.NewServer(
			authority.WithListenAddress(viper.GetString("serve.listen")),
			authority.WithMaxSize(viper.GetInt("serve.max-size")),
			authority.WithRateLimit(rate.Limit(viper.GetFloat64("serve.rate")), viper.GetInt("serve.burst")),
			authority.WithLogger(logger),
		)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.Shutdown(shutdownCtx); err != nil {
				logger.Warn().Err(err).Msg("shutdown")
			}
		}()

		return s.ListenAndServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	flags := serveCmd.Flags()
	flags.StringP("listen", "l", authority.DefaultListenAddress, "authority listen address")
	flags.Int("max-size", authority.DefaultMaxSize, "max bytes per request")
	flags.Float64("rate", float64(authority.DefaultRateLimit), "requests per second")
	flags.Int("burst", authority.DefaultBurst, "request burst")
	for _, key := range []string{"listen", "max-size", "rate", "burst"} {
		viper.BindPFlag("serve."+key, flags.Lookup(key))
	}
}
