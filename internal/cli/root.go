package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/attestra/attestra-go/internal/buildinfo"
)

// viper keys for the global flags; env vars use the ATTESTRA_ prefix with
// dashes mapped to underscores (e.g. ATTESTRA_CLIENT_ID).
const (
	networkKey      = "network"
	baseURLKey      = "base-url"
	tokenURLKey     = "token-url"
	logLevelKey     = "log-level"
	clientIDKey     = "client-id"
	clientSecretKey = "client-secret"
)

var rootCmd = &cobra.Command{
	Use:   "attestra",
	Short: "Interact with the Attestra identity-verification network",
	Long: `attestra is a command-line client for the Attestra identity-verification
network: list institution users, look up credentials and human scores,
generate verification links, and check verification status.

Credentials are read from ATTESTRA_CLIENT_ID and ATTESTRA_CLIENT_SECRET
(a .env file in the working directory is honored).`,
	Version:       buildinfo.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Best effort; a missing .env file is fine.
		_ = godotenv.Load()

		viper.SetEnvPrefix("ATTESTRA")
		viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		viper.AutomaticEnv()

		return initLogging(viper.GetString(logLevelKey))
	},
}

func initLogging(level string) error {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zerolog.SetGlobalLevel(parsed)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Msg(err.Error())
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String(networkKey, "mainnet", "Target network (mainnet or devnet)")
	pf.String(baseURLKey, "", "Override the API base URL (bypasses network resolution)")
	pf.String(tokenURLKey, "", "Override the token-issuing URL (bypasses network resolution)")
	pf.String(logLevelKey, "warn", "Log level (trace, debug, info, warn, error)")

	for _, key := range []string{networkKey, baseURLKey, tokenURLKey, logLevelKey} {
		if err := viper.BindPFlag(key, pf.Lookup(key)); err != nil {
			panic(err)
		}
	}
}
