package clickhouse

import (
	"github.com/golang/mock/gomock"
	"github.com/goodnatureofminers/shieldtrace/internal/shielded/model"
)

func (s *RepositorySuite) TestMaxBlockHeight() {
	s.metrics.EXPECT().Observe("max_block_height", model.Firn, model.Mainnet, gomock.Nil(), gomock.Any()).Times(2)
	s.metrics.EXPECT().Observe("insert_events", model.Firn, model.Mainnet, gomock.Nil(), gomock.Any()).Times(1)

	empty, err := s.repo.MaxBlockHeight(s.testCtx, model.Firn, model.Mainnet)
	s.Require().NoError(err)
	s.Zero(empty)

	s.Require().NoError(s.repo.InsertEvents(s.testCtx, []model.EventRecord{
		newRecord(model.Mainnet, 40, 0, 0, "RegisterOccurred", `{"account":"0x01"}`),
		newRecord(model.Mainnet, 77, 1, 0, "RegisterOccurred", `{"account":"0x02"}`),
	}))

	height, err := s.repo.MaxBlockHeight(s.testCtx, model.Firn, model.Mainnet)
	s.Require().NoError(err)
	s.Equal(uint64(77), height)
}
