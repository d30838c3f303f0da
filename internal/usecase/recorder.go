package usecase

import (
	"io"
	"log/slog"
)

// 在庫・カテゴリー整合の観測用フック
type Recorder interface {
	BookkeepingFailed(op string)
	StockChanged(op string, outcome string)
	OrphansRemoved(n int)
}

type nopRecorder struct{}

func (nopRecorder) BookkeepingFailed(string)    {}
func (nopRecorder) StockChanged(string, string) {}
func (nopRecorder) OrphansRemoved(int)          {}

func orNop(r Recorder) Recorder {
	if r == nil {
		return nopRecorder{}
	}
	return r
}

func orDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return l
}
