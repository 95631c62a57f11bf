package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/crypto"
)

// DewildNftABI covers the read surface of the DeWild collection contract
// used for creator lookups.
var DewildNftABI abi.ABI

// Erc721TransferTopic is the topic0 of the ERC-721
// Transfer(address,address,uint256) event. An ERC-721 transfer carries the
// token id as the third indexed argument, so the log has four topics.
var Erc721TransferTopic = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))

var dewildNftABIJson = `[{"type":"function","name":"tokenArtists","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"address"}]},{"type":"function","name":"ownerOf","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"address"}]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(dewildNftABIJson))
	if err != nil {
		panic("Failed to parse dewild nft abi")
	}
	DewildNftABI = _abi
}
