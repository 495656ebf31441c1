package chain

import (
	"fmt"
	"io"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/rs/zerolog/log"
)

type accountReader interface {
	GetAccount(account solana.PublicKey) (*rpc.Account, bool, error)
	GetTokenAccount(account solana.PublicKey) (*TokenAccountRecord, error)
}

type Inspector struct {
	node accountReader
	out  io.Writer
}

func NewInspector(node accountReader, out io.Writer) *Inspector {
	return &Inspector{
		node: node,
		out:  out,
	}
}

// Run checks every account in order, printing one block per account before
// moving on to the next. A fault on one account never stops the rest.
func (i *Inspector) Run(accounts []solana.PublicKey) []InspectionResult {
	results := make([]InspectionResult, 0, len(accounts))
	for _, account := range accounts {
		res := InspectAccount(i.node, account)
		i.render(res)
		results = append(results, res)
	}
	return results
}

// InspectAccount runs the two-stage fetch for a single address: the raw
// existence lookup first, then the token-account query for accounts that
// exist.
func InspectAccount(node accountReader, account solana.PublicKey) InspectionResult {
	_, exists, err := node.GetAccount(account)
	if err != nil {
		log.Warn().Err(err).Str("account", account.String()).Msg("account lookup failed")
		return InspectionResult{Address: account, Status: StatusError, Err: err.Error()}
	}
	if !exists {
		return InspectionResult{Address: account, Status: StatusNotFound}
	}

	record, err := node.GetTokenAccount(account)
	if err != nil {
		log.Warn().Err(err).Str("account", account.String()).Msg("token account fetch failed")
		return InspectionResult{Address: account, Status: StatusError, Err: err.Error()}
	}
	return InspectionResult{Address: account, Status: StatusFound, Record: record}
}

func (i *Inspector) render(res InspectionResult) {
	switch res.Status {
	case StatusFound:
		fmt.Fprintf(i.out, "account %s: found\n", res.Address)
		fmt.Fprintf(i.out, "mint: %s\n", res.Record.Mint)
		fmt.Fprintf(i.out, "balance: %d\n", res.Record.Amount)
		fmt.Fprintf(i.out, "owner: %s\n", res.Record.Owner)
	case StatusNotFound:
		fmt.Fprintf(i.out, "account %s: not found\n", res.Address)
	default:
		fmt.Fprintf(i.out, "account %s: inspect failed: %s\n", res.Address, res.Err)
	}
	fmt.Fprintln(i.out)
}
