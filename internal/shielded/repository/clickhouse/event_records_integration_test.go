package clickhouse

import (
	"github.com/golang/mock/gomock"
	"github.com/goodnatureofminers/shieldtrace/internal/shielded/model"
)

func (s *RepositorySuite) TestEventRecordsOrdered() {
	records := []model.EventRecord{
		newRecord(model.Mainnet, 12, 0, 0, "WithdrawalOccurred", `{"Y":["0x01"],"amount":5,"destination":"0x03"}`),
		newRecord(model.Mainnet, 11, 3, 1, "DepositOccurred", `{"Y":["0x01"],"amount":10,"source":"0x02"}`),
		newRecord(model.Mainnet, 11, 3, 0, "RegisterOccurred", `{"account":"0x01"}`),
		newRecord(model.Sepolia, 1, 0, 0, "RegisterOccurred", `{"account":"0x09"}`),
	}

	s.metrics.EXPECT().Observe("insert_events", model.Firn, model.Mainnet, gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("event_records", model.Firn, model.Mainnet, gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertEvents(s.testCtx, records))

	got, err := s.repo.EventRecords(s.testCtx, model.Firn, model.Mainnet)
	s.Require().NoError(err)
	s.Require().Len(got, 3)

	s.Equal(records[2].Position(), got[0].Position())
	s.Equal(records[1].Position(), got[1].Position())
	s.Equal(records[0].Position(), got[2].Position())
	s.Equal("DepositOccurred", got[1].Event)
	s.JSONEq(string(records[1].Args), string(got[1].Args))
	s.Equal(model.Firn, got[1].Pool)
	s.Equal(model.Mainnet, got[1].Network)
}

func (s *RepositorySuite) TestEventRecordsEmpty() {
	s.metrics.EXPECT().Observe("event_records", model.Firn, model.Sepolia, gomock.Nil(), gomock.Any()).Times(1)

	got, err := s.repo.EventRecords(s.testCtx, model.Firn, model.Sepolia)
	s.Require().NoError(err)
	s.Empty(got)
}
