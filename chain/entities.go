package chain

import "github.com/gagliardetto/solana-go"

const (
	StatusFound    = "found"
	StatusNotFound = "not_found"
	StatusError    = "error"
)

type TokenAccountRecord struct {
	Mint   solana.PublicKey `json:"mint"`
	Owner  solana.PublicKey `json:"owner"`
	Amount uint64           `json:"amount"`
}

type InspectionResult struct {
	Address solana.PublicKey    `json:"address"`
	Status  string              `json:"status"`
	Record  *TokenAccountRecord `json:"record,omitempty"`
	Err     string              `json:"error,omitempty"`
}
