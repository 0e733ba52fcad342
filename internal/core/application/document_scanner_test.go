package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"near_account_lookup/internal/core/application"
	"near_account_lookup/internal/core/domain"
	"near_account_lookup/pkg/nearlookup"
)

func TestLinks(t *testing.T) {
	service, m := setupService(t, application.Config{})
	m.networks.On("Network", mock.Anything).Return(domain.NetworkTestnet, nil)

	text := "alice.near sent to bob_2.near\nthen  carol.testnet"
	links, err := service.Links(context.Background(), text)
	require.NoError(t, err)

	assert.Equal(t, []nearlookup.Link{
		{Text: "alice.near", Start: 0, End: 10, Line: 1, Column: 1, URL: "https://explorer.testnet.near.org/accounts/alice.near"},
		{Text: "bob_2.near", Start: 19, End: 29, Line: 1, Column: 20, URL: "https://explorer.testnet.near.org/accounts/bob_2.near"},
		{Text: "carol.testnet", Start: 36, End: 49, Line: 2, Column: 7, URL: "https://explorer.testnet.near.org/accounts/carol.testnet"},
	}, links)
}

func TestLinks_IncludeBareNames(t *testing.T) {
	service, m := setupService(t, application.Config{IncludeBareNames: true})
	m.networks.On("Network", mock.Anything).Return(domain.NetworkMainnet, nil)

	links, err := service.Links(context.Background(), "alice.near sent to bob_2.near")
	require.NoError(t, err)

	texts := make([]string, 0, len(links))
	for _, l := range links {
		texts = append(texts, l.Text)
	}
	assert.Equal(t, []string{"alice.near", "sent", "to", "bob_2.near"}, texts)
}

func TestLinks_NoMatches(t *testing.T) {
	service, m := setupService(t, application.Config{})
	m.networks.On("Network", mock.Anything).Return(domain.NetworkMainnet, nil)

	links, err := service.Links(context.Background(), "Nothing Here!")
	require.NoError(t, err)
	assert.NotNil(t, links)
	assert.Empty(t, links)
}

func TestHover(t *testing.T) {
	text := "pay Alice.Near today"
	alice := mustID(t, "alice.near")

	t.Run("Identifier under cursor", func(t *testing.T) {
		service, m := setupService(t, application.Config{})
		m.networks.On("Network", mock.Anything).Return(domain.NetworkMainnet, nil)
		m.state.On("ViewAccount", mock.Anything, domain.NetworkMainnet, alice).
			Return(domain.NewAccountState(aliceBalance, aliceStorage), nil)
		m.activity.On("RecentActivity", mock.Anything, domain.NetworkMainnet, alice).Return(nil, nil)

		report, ok := service.Hover(context.Background(), text, 7)
		require.True(t, ok)
		assert.Equal(t, "alice.near", report.AccountID)
		assert.Contains(t, report.Markdown, "### NEAR Account: `alice.near`")
	})

	t.Run("Whitespace under cursor", func(t *testing.T) {
		service, _ := setupService(t, application.Config{})
		_, ok := service.Hover(context.Background(), "a  b", 2)
		assert.False(t, ok)
	})

	t.Run("Word is not an identifier", func(t *testing.T) {
		service, _ := setupService(t, application.Config{})
		_, ok := service.Hover(context.Background(), "x..y", 1)
		assert.False(t, ok)
	})

	t.Run("Upstream failure fails closed", func(t *testing.T) {
		service, m := setupService(t, application.Config{})
		m.networks.On("Network", mock.Anything).Return(domain.NetworkMainnet, nil)
		m.state.On("ViewAccount", mock.Anything, domain.NetworkMainnet, alice).
			Return(domain.AccountState{}, &domain.RPCError{Kind: domain.RPCErrorTransport, Method: "query"})
		m.activity.On("RecentActivity", mock.Anything, domain.NetworkMainnet, alice).Return(nil, nil).Maybe()

		report, ok := service.Hover(context.Background(), text, 7)
		assert.False(t, ok)
		assert.Nil(t, report)
	})
}

func TestScan(t *testing.T) {
	service, m := setupService(t, application.Config{})
	alice := mustID(t, "alice.near")
	bob := mustID(t, "bob.near")

	m.networks.On("Network", mock.Anything).Return(domain.NetworkMainnet, nil).Once()
	m.state.On("ViewAccount", mock.Anything, domain.NetworkMainnet, alice).
		Return(domain.NewAccountState(aliceBalance, aliceStorage), nil).Once()
	m.activity.On("RecentActivity", mock.Anything, domain.NetworkMainnet, alice).Return(nil, nil).Once()
	m.state.On("ViewAccount", mock.Anything, domain.NetworkMainnet, bob).
		Return(domain.AccountState{}, &domain.RPCError{Kind: domain.RPCErrorApplication, Method: "query", Message: "UNKNOWN_ACCOUNT"}).Once()
	m.activity.On("RecentActivity", mock.Anything, domain.NetworkMainnet, bob).Return(nil, nil).Maybe()

	results, err := service.Scan(context.Background(), "alice.near -> bob.near\nalice.near again")
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "alice.near", results[0].AccountID)
	assert.Equal(t, 2, results[0].Occurrences)
	assert.Equal(t, 1, results[0].First.Line)
	require.NotNil(t, results[0].Report)
	assert.Equal(t, "1.5", results[0].Report.Balance)
	assert.Empty(t, results[0].Error)

	assert.Equal(t, "bob.near", results[1].AccountID)
	assert.Equal(t, 1, results[1].Occurrences)
	assert.Equal(t, 14, results[1].First.Start)
	assert.Nil(t, results[1].Report)
	assert.Contains(t, results[1].Error, "UNKNOWN_ACCOUNT")
}

func TestScan_Cancelled(t *testing.T) {
	service, m := setupService(t, application.Config{})
	m.networks.On("Network", mock.Anything).Return(domain.NetworkMainnet, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := service.Scan(ctx, "alice.near bob.near")
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, 2)
	assert.Nil(t, results[0].Report)
}

func TestNetwork(t *testing.T) {
	service, m := setupService(t, application.Config{})
	m.networks.On("Network", mock.Anything).Return(domain.NetworkTestnet, nil)

	info, err := service.Network(context.Background())
	require.NoError(t, err)
	assert.Equal(t, nearlookup.NetworkInfo{
		Network: "testnet",
		Endpoints: nearlookup.Endpoints{
			RPCURL:      "https://rpc.testnet.near.org",
			ExplorerURL: "https://explorer.testnet.near.org",
			ActivityURL: "https://api-testnet.nearblocks.io",
		},
	}, info)
}
