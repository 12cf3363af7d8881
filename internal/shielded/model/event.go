package model

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"
)

// Kind names a pool contract event.
type Kind string

const (
	KindRegister   Kind = "RegisterOccurred"
	KindDeposit    Kind = "DepositOccurred"
	KindWithdrawal Kind = "WithdrawalOccurred"
	KindTransfer   Kind = "TransferOccurred"
)

// Position locates an event inside the ordered log.
type Position struct {
	Height   uint64
	TxHash   common.Hash
	TxIndex  uint32
	LogIndex uint32
}

// Pos returns the position itself so that every event embedding it satisfies Event.
func (p Position) Pos() Position {
	return p
}

// Before reports whether p precedes other in (height, tx index, log index) order.
func (p Position) Before(other Position) bool {
	if p.Height != other.Height {
		return p.Height < other.Height
	}
	if p.TxIndex != other.TxIndex {
		return p.TxIndex < other.TxIndex
	}
	return p.LogIndex < other.LogIndex
}

// Event is the closed set of decoded pool events.
type Event interface {
	Kind() Kind
	Pos() Position
	isEvent()
}

// Register announces an account. A non-zero Amount means the registration was funded by Sender.
type Register struct {
	Position
	Account common.Hash
	Amount  uint64
	Sender  common.Hash
}

// Deposit credits Amount from Source to one hidden member of Recipients.
type Deposit struct {
	Position
	Source     common.Hash
	Amount     uint64
	Recipients []common.Hash
}

// Withdrawal debits Amount from one hidden member of Senders and pays Destination.
type Withdrawal struct {
	Position
	Amount      uint64
	Senders     []common.Hash
	Destination common.Hash
}

// Transfer is recognised but not modelled.
type Transfer struct {
	Position
	Args json.RawMessage
}

// Unknown carries an event name the decoder does not recognise.
type Unknown struct {
	Position
	Name string
	Args json.RawMessage
}

func (Register) Kind() Kind   { return KindRegister }
func (Deposit) Kind() Kind    { return KindDeposit }
func (Withdrawal) Kind() Kind { return KindWithdrawal }
func (Transfer) Kind() Kind   { return KindTransfer }
func (u Unknown) Kind() Kind  { return Kind(u.Name) }

func (Register) isEvent()   {}
func (Deposit) isEvent()    {}
func (Withdrawal) isEvent() {}
func (Transfer) isEvent()   {}
func (Unknown) isEvent()    {}

// EventRecord is a raw event as stored by the log scanner, before payload validation.
type EventRecord struct {
	Pool        Pool            `json:"-"`
	Network     Network         `json:"-"`
	BlockHeight uint64          `json:"block_number"`
	TxHash      common.Hash     `json:"tx_hash"`
	TxIndex     uint32          `json:"tx_index"`
	LogIndex    uint32          `json:"log_index"`
	Event       string          `json:"event"`
	Args        json.RawMessage `json:"args"`
}

// Position returns where the record sits in the log.
func (r EventRecord) Position() Position {
	return Position{
		Height:   r.BlockHeight,
		TxHash:   r.TxHash,
		TxIndex:  r.TxIndex,
		LogIndex: r.LogIndex,
	}
}

// EventLog is the ordered event stream grouped by block and transaction.
type EventLog struct {
	HighestBlock uint64
	Blocks       []Block
}

// Block holds the transactions of one height in execution order.
type Block struct {
	Height uint64
	Txs    []Tx
}

// Tx holds the events of one transaction in log order.
type Tx struct {
	Hash   common.Hash
	Index  uint32
	Events []Event
}

// Len returns the number of events in the log.
func (l EventLog) Len() int {
	n := 0
	for _, b := range l.Blocks {
		for _, tx := range b.Txs {
			n += len(tx.Events)
		}
	}
	return n
}
