package chain

import (
	"context"
	"errors"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/rs/zerolog/log"

	"github.com/FishDontExist/SOLinspector/config"
)

// RPCCaller is the part of the Solana JSON-RPC surface the client depends on.
type RPCCaller interface {
	GetVersion(ctx context.Context) (*rpc.GetVersionResult, error)
	GetSlot(ctx context.Context, commitment rpc.CommitmentType) (uint64, error)
	GetBalance(ctx context.Context, publicKey solana.PublicKey, commitment rpc.CommitmentType) (*rpc.GetBalanceResult, error)
	GetAccountInfoWithOpts(ctx context.Context, account solana.PublicKey, opts *rpc.GetAccountInfoOpts) (*rpc.GetAccountInfoResult, error)
}

type SolClient struct {
	rpc RPCCaller
	ctx context.Context
}

func New() *SolClient {
	c := &SolClient{
		rpc: rpc.New(config.Endpoint),
		ctx: context.Background(),
	}

	version, err := c.rpc.GetVersion(c.ctx)
	if err != nil {
		log.Fatal().Err(err).Str("endpoint", config.Endpoint).Msg("connect to rpc failed")
		return nil
	}
	log.Info().Str("endpoint", config.Endpoint).Str("solana_core", version.SolanaCore).Msg("connected to rpc node")
	return c
}

func (c *SolClient) GetSlot() (uint64, error) {
	slot, err := c.rpc.GetSlot(c.ctx, config.Commitment)
	if err != nil {
		return 0, err
	}
	return slot, nil
}

func (c *SolClient) GetBalance(address string) (uint64, error) {
	pk, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return 0, err
	}
	res, err := c.rpc.GetBalance(c.ctx, pk, config.Commitment)
	if err != nil {
		return 0, err
	}
	return res.Value, nil
}

// GetAccount fetches the raw account at the address. The second return
// reports whether the address holds an account at all.
func (c *SolClient) GetAccount(account solana.PublicKey) (*rpc.Account, bool, error) {
	res, err := c.rpc.GetAccountInfoWithOpts(c.ctx, account, &rpc.GetAccountInfoOpts{
		Encoding:   solana.EncodingBase64,
		Commitment: config.Commitment,
	})
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	if res.Value == nil {
		return nil, false, nil
	}
	return res.Value, true, nil
}

// GetTokenAccount re-fetches the account and decodes it as an SPL token
// account. A transient rpc fault and a format mismatch surface the same way.
func (c *SolClient) GetTokenAccount(account solana.PublicKey) (*TokenAccountRecord, error) {
	acc, exists, err := c.GetAccount(account)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("token account %s does not exist", account)
	}
	var raw []byte
	if acc.Data != nil {
		raw = acc.Data.GetBinary()
	}
	return decodeTokenAccount(raw)
}

func decodeTokenAccount(data []byte) (*TokenAccountRecord, error) {
	var acc token.Account
	if err := bin.NewBinDecoder(data).Decode(&acc); err != nil {
		return nil, fmt.Errorf("decode token account: %w", err)
	}
	return &TokenAccountRecord{
		Mint:   acc.Mint,
		Owner:  acc.Owner,
		Amount: acc.Amount,
	}, nil
}

func (c *SolClient) InspectAddress(address string) (InspectionResult, error) {
	pk, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return InspectionResult{}, err
	}
	return InspectAccount(c, pk), nil
}

func (c *SolClient) GetTokenAccountByAddress(address string) (*TokenAccountRecord, error) {
	pk, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return nil, err
	}
	return c.GetTokenAccount(pk)
}

// DeriveATA derives the associated token account address for an owner and a
// mint. Purely local, no rpc round trip.
func (c *SolClient) DeriveATA(owner string, mint string) (solana.PublicKey, error) {
	ownerPk, err := solana.PublicKeyFromBase58(owner)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("bad owner address: %w", err)
	}
	mintPk, err := solana.PublicKeyFromBase58(mint)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("bad mint address: %w", err)
	}
	ata, _, err := solana.FindAssociatedTokenAddress(ownerPk, mintPk)
	if err != nil {
		return solana.PublicKey{}, err
	}
	return ata, nil
}
