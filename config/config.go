package config

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

const (
	Endpoint   = "https://api.devnet.solana.com"
	ListenAddr = ":8000"
)

var Commitment = rpc.CommitmentConfirmed

// Token accounts of the devnet test tokens. Checked in this order.
var watchedAccounts = []string{
	"J5PfV8u3EvXLRBsKQdpEiuwNVeQffDbCPP5zisRikGu8",
	"DMJ5DmzQLiSRNLuSR7HdwCz8KDdgywtMJZKSYN5EPbBk",
	"4289ioWPRqHeprQJAyZnRTy7p1P4L82ePg9PQpjG4p8K",
	"7oa4krfxjocDH47RymzbPW4QHVV4Ec4vuAQj1gYAn3SQ",
}

func WatchedAccounts() ([]solana.PublicKey, error) {
	accounts := make([]solana.PublicKey, 0, len(watchedAccounts))
	for _, addr := range watchedAccounts {
		pk, err := solana.PublicKeyFromBase58(addr)
		if err != nil {
			return nil, fmt.Errorf("bad account address %q: %w", addr, err)
		}
		accounts = append(accounts, pk)
	}
	return accounts, nil
}
