package domain

import (
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/xerrors"
)

var (
	Big2      = big.NewInt(2)
	Big10     = big.NewInt(10)
	WeiPerEth = new(big.Int).Exp(Big10, big.NewInt(18), nil)
)

type ChainId int32

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) IsZero() bool {
	return a.Equals(EmptyAddress)
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

func (i TokenId) ToBigInt() (*big.Int, error) {
	id, ok := new(big.Int).SetString(i.String(), 10)
	if !ok {
		return nil, xerrors.Errorf("invalid token id %s", i)
	}
	return id, nil
}

type TxHash string

func (h TxHash) ToLower() TxHash {
	return TxHash(strings.ToLower(string(h)))
}

func (h TxHash) String() string {
	return string(h)
}

func (h TxHash) Equals(o TxHash) bool {
	return strings.EqualFold(string(h), string(o))
}

type BlockNumber uint64

func (b BlockNumber) ToBigInt() *big.Int {
	return new(big.Int).SetUint64(uint64(b))
}

func (b BlockNumber) String() string {
	return fmt.Sprintf("%d", uint64(b))
}
