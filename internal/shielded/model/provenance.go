package model

import "github.com/ethereum/go-ethereum/common"

// BurnAddress stands for "no participant" and is dropped from every anonymity set.
var BurnAddress = common.Hash{}

// DepositRecord identifies one deposit; equal fields mean the same provenance atom.
type DepositRecord struct {
	Height uint64
	TxHash common.Hash
	Source common.Hash
	Amount uint64
}

// FundSource attributes a share of an account's balance to a deposit.
type FundSource struct {
	Deposit DepositRecord
	Chance  float64
}

// AccountState is an immutable balance snapshot of one account.
type AccountState struct {
	Height  uint64
	TxHash  common.Hash
	Balance float64
	Sources []FundSource
}

// SourceMass sums the chances of all fund sources. It is not kept at 1.
func (s AccountState) SourceMass() float64 {
	var mass float64
	for _, src := range s.Sources {
		mass += src.Chance
	}
	return mass
}

// AddSource appends src unless a structurally equal entry is already present.
func AddSource(sources []FundSource, src FundSource) []FundSource {
	for _, existing := range sources {
		if existing == src {
			return sources
		}
	}
	return append(sources, src)
}
