//go:build integration
// +build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/netsim-io/netsim-client/pkg/netsim"
	"github.com/netsim-io/netsim-client/pkg/netsimclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginAndIdentity(t *testing.T) {
	config := LoadTestConfig()
	SkipWithoutCredentials(t, config)

	ctx := context.Background()

	client, err := netsimclient.New(ctx, config.ClientConfig())
	require.NoError(t, err)

	account, err := client.Login().Get(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, account.Username)
}

func TestTopologyListAndRecords(t *testing.T) {
	config := LoadTestConfig()
	SkipWithoutCredentials(t, config)

	ctx := context.Background()

	client, err := netsimclient.New(ctx, config.ClientConfig())
	require.NoError(t, err)

	topologies, err := client.Topologies().List(ctx, nil)
	require.NoError(t, err)

	// The generic record view of the same collection must agree with the
	// typed one.
	records, err := client.Records("topologies")
	require.NoError(t, err)

	generic, err := records.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, generic, len(topologies))
}

func TestSimulationLifecycle(t *testing.T) {
	config := LoadTestConfig()
	SkipWithoutCredentials(t, config)

	if testing.Short() {
		t.Skip("skipping simulation lifecycle in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	client, err := netsimclient.New(ctx, config.ClientConfig())
	require.NoError(t, err)

	topology, err := client.Topologies().Create(ctx, &netsim.TopologyCreateRequest{
		Name: "integration-test",
		Nodes: []netsim.TopologyNodeManifest{
			{Name: "node01", Interfaces: []string{"eth0"}},
		},
	})
	require.NoError(t, err)

	defer func() {
		_ = client.Topologies().Delete(context.Background(), topology)
	}()

	sim, err := client.Simulations().Create(ctx, &netsim.SimulationCreateRequest{
		Topology: topology.ID,
		Title:    "integration lifecycle",
	})
	require.NoError(t, err)

	defer func() {
		_ = client.Simulations().Delete(context.Background(), sim)
	}()

	require.NoError(t, client.Simulations().Start(ctx, sim))

	for {
		sim, err = client.Simulations().Get(ctx, sim)
		require.NoError(t, err)

		if sim.State == netsim.SimulationStateLoaded {
			break
		}

		select {
		case <-ctx.Done():
			t.Fatalf("simulation never loaded, last state %s", sim.State)
		case <-time.After(5 * time.Second):
		}
	}

	require.NoError(t, client.Simulations().Stop(ctx, sim))
}
