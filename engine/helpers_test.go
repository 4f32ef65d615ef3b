package engine

import "go.uber.org/zap"

func nopLog() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func snapOf(l level) Snapshot {
	var snap Snapshot
	l.fill(&snap)
	return snap
}
