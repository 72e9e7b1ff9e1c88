//go:build integration
// +build integration

package integration

import (
	"os"
	"testing"

	"github.com/netsim-io/netsim-client/pkg/netsim"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	APIURL   string
	APIToken string
	Username string
	Password string
	Verbose  bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIURL:   os.Getenv("NETSIM_API_URL"),
		APIToken: os.Getenv("NETSIM_API_TOKEN"),
		Username: os.Getenv("NETSIM_USERNAME"),
		Password: os.Getenv("NETSIM_PASSWORD"),
		Verbose:  os.Getenv("NETSIM_VERBOSE") == "true",
	}
}

// SkipWithoutCredentials skips the test when no live platform is configured.
func SkipWithoutCredentials(t *testing.T, config *TestConfig) {
	t.Helper()

	if config.APIURL == "" {
		t.Skip("NETSIM_API_URL not set, skipping integration test")
	}

	if config.APIToken == "" && (config.Username == "" || config.Password == "") {
		t.Skip("no credentials set, skipping integration test")
	}
}

// ClientConfig builds a client config from the test configuration.
func (c *TestConfig) ClientConfig() *netsim.Config {
	config := &netsim.Config{APIURL: c.APIURL}

	if c.APIToken != "" {
		config.APIToken = c.APIToken
	} else {
		config.Username = c.Username
		config.Password = c.Password
	}

	return config
}
