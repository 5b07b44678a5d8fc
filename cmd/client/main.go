package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	conf "github.com/nestjam/pariffiliator/internal/config"
	env "github.com/nestjam/pariffiliator/internal/config/environment"
	"github.com/nestjam/pariffiliator/internal/factory"
)

const (
	dotEnvPath = ".env"
	tuiLogPath = "pariffiliator.log"
)

var (
	config  = conf.New().FromDotEnv(dotEnvPath).FromEnv(env.New())
	verbose bool
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "client",
	Short: "Pariffiliator - Amazon affiliate link generator",
	Long: `Pariffiliator turns an Amazon product link into a short referral link.

The affiliate tag is injected into the link and tracking parameters are
removed before the link is shortened with TinyURL. If TinyURL is not
available the tagged link is returned unshortened.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !verbose {
			return nil
		}

		var err error
		logger, _, err = factory.NewLogger("debug", logOutputs(cmd)...)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "log to stderr")
	flags.StringVarP(&config.AffiliateTag, "tag", "t", config.AffiliateTag, "affiliate tag")
	flags.StringVarP(&config.ShortenerEndpoint, "endpoint", "e", config.ShortenerEndpoint, "shortener endpoint")
	flags.BoolVar(&config.StrictDomain, "strict", config.StrictDomain, "strict retailer domain check")

	rootCmd.AddCommand(generateCmd, tuiCmd, remoteCmd)
}

// logOutputs не дает логам попасть на экран терминального интерфейса.
func logOutputs(cmd *cobra.Command) []string {
	if cmd == tuiCmd {
		return []string{tuiLogPath}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		exit(err)
	}
}

func exit(msg any) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
