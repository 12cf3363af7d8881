package model

import (
	"encoding/hex"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Node fill colours.
const (
	FillDeposit  = "green"
	FillRegister = "lightgrey"
)

// Node declares a graph vertex.
type Node struct {
	ID    string
	Label string
	Fill  string
}

// Edge declares a directed graph edge. Weighted edges carry a funding probability and
// rendering hints derived from it; plain edges leave them zero.
type Edge struct {
	From        string
	To          string
	Probability float64
	Weight      int
	PenWidth    int
	Length      int
}

// Weighted reports whether the edge carries an attribution.
func (e Edge) Weighted() bool {
	return e.Weight > 0
}

// Fragment is the graph output of one event.
type Fragment struct {
	Nodes []Node
	Edges []Edge
}

// Empty reports whether the fragment declares nothing.
func (f Fragment) Empty() bool {
	return len(f.Nodes) == 0 && len(f.Edges) == 0
}

// EdgeRecord is a weighted edge persisted for one graph build.
type EdgeRecord struct {
	Pool        Pool
	Network     Network
	BuildHeight uint64
	Seq         uint32
	Edge        Edge
}

// DepositNodeID names the node of the transaction at height.
func DepositNodeID(height uint64, tx common.Hash) string {
	return fmt.Sprintf("h%d_tx%s", height, shortHex(tx))
}

// RegisterNodeID names the registration context of account at height/tx.
func RegisterNodeID(height uint64, tx, account common.Hash) string {
	return fmt.Sprintf("h%d_tx%s_%s", height, shortHex(tx), shortHex(account))
}

// AddressNodeID names an external address.
func AddressNodeID(addr common.Hash) string {
	return "addr_" + hex.EncodeToString(addr[:])
}

// ShortHex returns the first four bytes of h as hex.
func ShortHex(h common.Hash) string {
	return shortHex(h)
}

func shortHex(h common.Hash) string {
	return hex.EncodeToString(h[:4])
}
