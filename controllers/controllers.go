package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gagliardetto/solana-go"
	"github.com/rs/zerolog/log"

	"github.com/FishDontExist/SOLinspector/chain"
)

// Node is what the handlers need from the chain client.
type Node interface {
	GetSlot() (uint64, error)
	GetBalance(address string) (uint64, error)
	InspectAddress(address string) (chain.InspectionResult, error)
	GetTokenAccountByAddress(address string) (*chain.TokenAccountRecord, error)
	DeriveATA(owner string, mint string) (solana.PublicKey, error)
}

type SolNode struct {
	sn Node
}

func New() *SolNode {
	return NewWithNode(chain.New())
}

func NewWithNode(n Node) *SolNode {
	return &SolNode{sn: n}
}

func Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"result": "pong"})
}

func (s *SolNode) GetSlot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	slot, err := s.sn.GetSlot()
	if err != nil {
		log.Error().Err(err).Msg("get slot failed")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}
	json.NewEncoder(w).Encode(Slot{Slot: slot})
}

func (s *SolNode) GetBalance(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var address Balance
	if err := json.NewDecoder(r.Body).Decode(&address); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	lamports, err := s.sn.GetBalance(address.Address)
	if err != nil {
		log.Error().Err(err).Str("address", address.Address).Msg("get balance failed")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}
	json.NewEncoder(w).Encode(map[string]uint64{"balance": lamports})
}

func (s *SolNode) InspectAccount(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req InspectReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	result, err := s.sn.InspectAddress(req.Address)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}
	json.NewEncoder(w).Encode(result)
}

func (s *SolNode) GetTokenAccount(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req TokenAccountReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	record, err := s.sn.GetTokenAccountByAddress(req.Address)
	if err != nil {
		log.Error().Err(err).Str("address", req.Address).Msg("get token account failed")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}
	json.NewEncoder(w).Encode(record)
}

func (s *SolNode) GetATA(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req ATAReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	ata, err := s.sn.DeriveATA(req.Owner, req.Mint)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"ata": ata.String()})
}
