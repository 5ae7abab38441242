package abiutils

import (
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignatures(t *testing.T) {
	const erc20Abi = `[
		{"type":"function","name":"transfer","inputs":[{"name":"to","type":"address"},{"name":"value","type":"uint256"}],"outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable"},
		{"type":"function","name":"balanceOf","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
		{"type":"event","name":"Transfer","inputs":[{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"value","type":"uint256","indexed":false}],"anonymous":false}
	]`
	contractAbi, err := abi.JSON(strings.NewReader(erc20Abi))
	require.NoError(t, err)

	assert.EqualValues(t, []string{
		"70a08231 balanceOf(address)",
		"a9059cbb transfer(address,uint256)",
	}, GetMethodSignatures(contractAbi))
	assert.EqualValues(t, []string{"Transfer(address,address,uint256)"}, GetEventSignatures(contractAbi))

	assert.Empty(t, GetMethodSignatures(abi.ABI{}))
}
