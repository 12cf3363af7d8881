// Package chain turns raw pool event records into the ordered, typed event log.
package chain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/goodnatureofminers/shieldtrace/internal/shielded/model"
	"github.com/goodnatureofminers/shieldtrace/pkg/safe"
)

type registerArgs struct {
	Account *word   `json:"account"`
	Amount  *amount `json:"amount"`
	Sender  *word   `json:"sender"`
}

type depositArgs struct {
	Y      []word  `json:"Y"`
	Amount *amount `json:"amount"`
	Source *word   `json:"source"`
}

type withdrawalArgs struct {
	Y           []word  `json:"Y"`
	Amount      *amount `json:"amount"`
	Destination *word   `json:"destination"`
}

// Decode validates the payload of rec against its event kind. Transfers and unknown names
// decode successfully; rejecting them is up to the processor.
func Decode(rec model.EventRecord) (model.Event, error) {
	pos := rec.Position()
	kind := model.Kind(rec.Event)

	var (
		ev  model.Event
		err error
	)
	switch kind {
	case model.KindRegister:
		ev, err = decodeRegister(pos, rec.Args)
	case model.KindDeposit:
		ev, err = decodeDeposit(pos, rec.Args)
	case model.KindWithdrawal:
		ev, err = decodeWithdrawal(pos, rec.Args)
	case model.KindTransfer:
		ev = model.Transfer{Position: pos, Args: rec.Args}
	default:
		if rec.Event == "" {
			err = errors.New("empty event name")
		} else {
			ev = model.Unknown{Position: pos, Name: rec.Event, Args: rec.Args}
		}
	}
	if err != nil {
		return nil, &model.EventError{Position: pos, Kind: kind, Err: fmt.Errorf("%w: %w", model.ErrMalformedEvent, err)}
	}
	return ev, nil
}

func decodeRegister(pos model.Position, raw json.RawMessage) (model.Event, error) {
	var args registerArgs
	if err := unmarshalArgs(raw, &args); err != nil {
		return nil, err
	}
	if args.Account == nil {
		return nil, errors.New("missing account")
	}
	ev := model.Register{Position: pos, Account: args.Account.hash()}
	if args.Amount != nil && *args.Amount > 0 {
		if args.Sender == nil {
			return nil, errors.New("funded registration without sender")
		}
		ev.Amount = uint64(*args.Amount)
		ev.Sender = args.Sender.hash()
	}
	return ev, nil
}

func decodeDeposit(pos model.Position, raw json.RawMessage) (model.Event, error) {
	var args depositArgs
	if err := unmarshalArgs(raw, &args); err != nil {
		return nil, err
	}
	switch {
	case args.Y == nil:
		return nil, errors.New("missing anonymity set")
	case args.Amount == nil:
		return nil, errors.New("missing amount")
	case args.Source == nil:
		return nil, errors.New("missing source")
	}
	return model.Deposit{
		Position:   pos,
		Source:     args.Source.hash(),
		Amount:     uint64(*args.Amount),
		Recipients: hashes(args.Y),
	}, nil
}

func decodeWithdrawal(pos model.Position, raw json.RawMessage) (model.Event, error) {
	var args withdrawalArgs
	if err := unmarshalArgs(raw, &args); err != nil {
		return nil, err
	}
	switch {
	case args.Y == nil:
		return nil, errors.New("missing anonymity set")
	case args.Amount == nil:
		return nil, errors.New("missing amount")
	case args.Destination == nil:
		return nil, errors.New("missing destination")
	}
	return model.Withdrawal{
		Position:    pos,
		Amount:      uint64(*args.Amount),
		Senders:     hashes(args.Y),
		Destination: args.Destination.hash(),
	}, nil
}

func unmarshalArgs(raw json.RawMessage, v any) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		return errors.New("missing args")
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode args: %w", err)
	}
	return nil
}

func hashes(words []word) []common.Hash {
	out := make([]common.Hash, len(words))
	for i, w := range words {
		out[i] = w.hash()
	}
	return out
}

// word is a hex encoded value of at most 32 bytes, left padded like an ABI word.
type word common.Hash

func (w word) hash() common.Hash {
	return common.Hash(w)
}

func (w *word) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("hex word: %w", err)
	}
	b, err := hexutil.Decode(s)
	if err != nil {
		return fmt.Errorf("hex word %q: %w", s, err)
	}
	if len(b) > common.HashLength {
		return fmt.Errorf("hex word %q longer than %d bytes", s, common.HashLength)
	}
	*w = word(common.BytesToHash(b))
	return nil
}

// amount is a token amount given as a JSON integer or decimal string.
type amount uint64

func (a *amount) UnmarshalJSON(data []byte) error {
	s := string(data)
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	v, err := safe.ParseAmount(s)
	if err != nil {
		return err
	}
	*a = amount(v)
	return nil
}
