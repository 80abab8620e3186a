package pipeline

import (
	"github.com/sirupsen/logrus"
	"github.com/zabbix-tools/problem-report/internal/types"
)

// ProblemPipeline turns a fetched batch of raw monitoring events into the
// cleaned set of resolved problems. Every stage is a pure transformation over
// the full batch; the pipeline holds no state between runs.
type ProblemPipeline struct {
	logger *logrus.Logger
}

func NewProblemPipeline(logger *logrus.Logger) *ProblemPipeline {
	return &ProblemPipeline{
		logger: logger,
	}
}

// Clean runs all stages in order. A ContractViolationError from any stage
// aborts the batch; rows that merely fail to correlate or carry an
// unsupported host shape are excluded without error.
func (p *ProblemPipeline) Clean(events []types.RawEvent) ([]types.ResolvedProblem, error) {
	projected, err := projectFields(events)
	if err != nil {
		return nil, err
	}
	correlated := correlate(projected)
	timed, err := computeDurations(correlated)
	if err != nil {
		return nil, err
	}
	named := p.normalizeHosts(timed)
	return p.finalize(named)
}
