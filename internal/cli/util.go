package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/attestra/attestra-go/internal/buildinfo"
	"github.com/attestra/attestra-go/pkg/idvsdk"
	"github.com/attestra/attestra-go/pkg/slogx"
)

func newClient() *idvsdk.Client {
	var opts []idvsdk.Option
	if u := viper.GetString(baseURLKey); u != "" {
		opts = append(opts, idvsdk.WithBaseURL(u))
	}
	if u := viper.GetString(tokenURLKey); u != "" {
		opts = append(opts, idvsdk.WithTokenURL(u))
	}

	// Surface the SDK's wire diagnostics when the CLI runs at debug level.
	if level := viper.GetString(logLevelKey); level == "debug" || level == "trace" {
		opts = append(opts, idvsdk.WithLogger(slogx.New(os.Stderr, slogx.Config{
			Service: "attestra",
			Version: buildinfo.Version,
			Level:   "debug",
			Format:  "text",
		})))
	}

	return idvsdk.NewClient(viper.GetString(networkKey), opts...)
}

func getConnection() (*idvsdk.Connection, error) {
	clientID := viper.GetString(clientIDKey)
	clientSecret := viper.GetString(clientSecretKey)
	if clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf(
			"client credentials not configured, set ATTESTRA_CLIENT_ID and ATTESTRA_CLIENT_SECRET",
		)
	}

	return newClient().NewConnection(clientID, clientSecret), nil
}

// printJSON writes v to stdout as indented JSON, the output format of every
// command.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
