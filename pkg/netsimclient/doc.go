// Package netsimclient provides the primary entry point for constructing a
// simulation platform API client that implements the netsim.Client interface.
//
// It layers configuration, HTTP transport, and authentication on top of the
// resource interfaces and types defined in the netsim package. Most
// applications should import netsimclient to build a client, then use the
// returned netsim.Client to access resource-specific clients, for example
// Simulations(), Topologies(), Workers(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/netsim-io/netsim-client/pkg/netsim"
//	  "github.com/netsim-io/netsim-client/pkg/netsimclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // With an API token issued from the console:
//	  cli, err := netsimclient.New(ctx, &netsim.Config{
//	    APIURL:   "console.netsim.io",
//	    APIToken: "nst_...",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with username/password. The credentials are exchanged for a
//	  // bearer token against the login endpoint during construction.
//	  cli, err = netsimclient.New(ctx, &netsim.Config{
//	    APIURL:   "console.netsim.io",
//	    Username: "user",
//	    Password: "pass",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the netsim.Client interface
//	  sims, err := cli.Simulations().List(ctx, netsim.NewQueryParams().WithFilter("state", netsim.SimulationStateLoaded))
//	  if err != nil { log.Fatal(err) }
//	  _ = sims
//	}
//
// # URL normalization
//
// Config.APIURL accepts a bare console hostname. New prepends "https://" when
// no scheme is present and appends the "/api" suffix when missing, so
// "console.netsim.io" becomes "https://console.netsim.io/api".
//
// # Helpers
//
// The package also provides convenience constructors NewWithPassword,
// NewWithToken, and NewWithAPIToken that wrap New with the appropriate
// configuration.
package netsimclient
