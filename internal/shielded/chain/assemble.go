package chain

import (
	"fmt"

	"github.com/goodnatureofminers/shieldtrace/internal/shielded/model"
)

// Assemble decodes records and groups them by block and transaction. The records must already
// be in strictly increasing (height, tx index, log index) order; Assemble verifies the order and
// never sorts, since the provenance result depends on it.
func Assemble(highest uint64, records []model.EventRecord) (model.EventLog, error) {
	log := model.EventLog{HighestBlock: highest}

	var prev model.Position
	for i, rec := range records {
		pos := rec.Position()
		if i > 0 {
			if !prev.Before(pos) {
				return model.EventLog{}, &model.EventError{
					Position: pos,
					Kind:     model.Kind(rec.Event),
					Err:      fmt.Errorf("%w: follows height %d tx %d log %d", model.ErrOutOfOrder, prev.Height, prev.TxIndex, prev.LogIndex),
				}
			}
			if sameTx(prev, pos) && prev.TxHash != pos.TxHash {
				return model.EventLog{}, &model.EventError{
					Position: pos,
					Kind:     model.Kind(rec.Event),
					Err:      fmt.Errorf("%w: tx index %d changes hash from %s", model.ErrOutOfOrder, pos.TxIndex, prev.TxHash.Hex()),
				}
			}
		}

		ev, err := Decode(rec)
		if err != nil {
			return model.EventLog{}, err
		}

		if n := len(log.Blocks); n == 0 || log.Blocks[n-1].Height != pos.Height {
			log.Blocks = append(log.Blocks, model.Block{Height: pos.Height})
		}
		block := &log.Blocks[len(log.Blocks)-1]
		if n := len(block.Txs); n == 0 || block.Txs[n-1].Index != pos.TxIndex {
			block.Txs = append(block.Txs, model.Tx{Hash: pos.TxHash, Index: pos.TxIndex})
		}
		tx := &block.Txs[len(block.Txs)-1]
		tx.Events = append(tx.Events, ev)

		log.HighestBlock = max(log.HighestBlock, pos.Height)
		prev = pos
	}
	return log, nil
}

func sameTx(a, b model.Position) bool {
	return a.Height == b.Height && a.TxIndex == b.TxIndex
}
