// Package netsim provides types, interfaces, and helpers for working with the
// network simulation platform API.
//
// # Overview
//
// The netsim package defines the domain types (e.g., Simulation, Topology,
// SimulationNode, Worker) and the interfaces for resource-oriented clients
// (e.g., SimulationsClient, TopologiesClient). A concrete implementation of
// these clients is provided by the netsimclient package, which wires
// configuration, transport, and token management. Most consumers should import
// netsimclient to construct a client and then interact with the resource
// client interfaces exposed here.
//
// Getting a client
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
//	  cli, err := netsimclient.New(ctx, &netsim.Config{APIToken: "..."})
//	  if err != nil { log.Fatal(err) }
//
//	  sims, err := cli.Simulations().List(ctx, netsim.NewQueryParams().WithFilter("state", netsim.SimulationStateLoaded))
//	  if err != nil { log.Fatal(err) }
//	  _ = sims
//	}
//
// # Queries and pagination
//
// Use QueryParams to express common list options (limit, order_by, filters).
// Filters are passed through to the API verbatim. List endpoints return pages
// linked by "next" URLs; the typed clients follow those links and return the
// combined results. FollowPages and PageIterator expose the same machinery
// for generic use.
//
// # Errors
//
// API failures are represented by typed errors (AuthorizationError,
// ForbiddenError, NotFoundError, UnexpectedResponseError, ConnectionError).
// Helpers such as IsNotFound, IsUnauthorized, and IsForbidden make it easy to
// branch on common cases.
//
// # Generic records
//
// Beyond the typed clients, Record and Records provide a schema-driven view
// of any registered resource type: a field bag with PATCH-on-write mutation,
// lazy relationship resolution, and id-or-instance argument coercion. The
// set of known resource types lives in DefaultRegistry.
package netsim
