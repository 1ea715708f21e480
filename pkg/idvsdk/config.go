package idvsdk

import "strings"

// Network names accepted by NewClient. The short aliases "main" and "dev"
// are accepted as well; anything unrecognized resolves to mainnet.
const (
	NetworkMainnet = "mainnet"
	NetworkDevnet  = "devnet"
)

// APIVersion is the protocol version tag the resolved base URLs are pinned to.
const APIVersion = "v1"

// networkEndpoints holds the resolved API base URL and token-issuing URL for
// one network. The base URL already carries the API version path segment so
// explicit overrides stay in full control of the final request URL.
type networkEndpoints struct {
	baseURL  string
	tokenURL string
}

var networks = map[string]networkEndpoints{
	NetworkMainnet: {
		baseURL:  "https://api.attestra.network/" + APIVersion,
		tokenURL: "https://auth.attestra.network/oauth2/token",
	},
	NetworkDevnet: {
		baseURL:  "https://api.dev.attestra.network/" + APIVersion,
		tokenURL: "https://auth.dev.attestra.network/oauth2/token",
	},
}

// resolveNetwork maps a network name to its endpoints, falling back to
// mainnet for unrecognized names.
func resolveNetwork(name string) networkEndpoints {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NetworkDevnet, "dev":
		return networks[NetworkDevnet]
	case NetworkMainnet, "main":
		return networks[NetworkMainnet]
	default:
		return networks[NetworkMainnet]
	}
}
