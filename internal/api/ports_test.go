package api_test

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wearlytic/catalog/internal/api"
	"github.com/wearlytic/catalog/internal/logger"
)

func TestCandidatePorts(t *testing.T) {
	assert.Equal(t, []int{3001, 3002, 3003}, api.CandidatePorts(3001, 3))
	assert.Equal(t, []int{3001}, api.CandidatePorts(3001, 0), "at least one candidate")
}

func TestListenWithFallback_SkipsOccupiedPort(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer occupied.Close()

	taken := occupied.Addr().(*net.TCPAddr).Port

	// Port 0 as the fallback candidate lets the OS pick a free port.
	listener, port, err := api.ListenWithFallback("127.0.0.1", []int{taken, 0}, logger.NewNop())
	require.NoError(t, err)
	defer listener.Close()

	assert.NotZero(t, port)
	assert.NotEqual(t, taken, port)
}

func TestListenWithFallback_AllPortsTaken(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer occupied.Close()

	taken := occupied.Addr().(*net.TCPAddr).Port

	_, _, err = api.ListenWithFallback("127.0.0.1", []int{taken}, logger.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "candidate ports in use")
}

func TestListenWithFallback_NoCandidates(t *testing.T) {
	_, _, err := api.ListenWithFallback("127.0.0.1", nil, logger.NewNop())
	require.Error(t, err)
}
