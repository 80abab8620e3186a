package reporter

import (
	"context"
	"os"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/zabbix-tools/problem-report/internal/pipeline"
	"github.com/zabbix-tools/problem-report/internal/report"
	opensearch_repo "github.com/zabbix-tools/problem-report/internal/repository/opensearch"
	"github.com/zabbix-tools/problem-report/internal/zabbix"
	"github.com/zabbix-tools/problem-report/pkg/stream"
)

type Config struct {
	OutputPath          string `envconfig:"REPORT_OUTPUT_PATH" default:"problem_report.html"`
	SessionCacheEnabled bool   `envconfig:"SESSION_CACHE_ENABLED" default:"false"`
	ArchiveEnabled      bool   `envconfig:"OPENSEARCH_ARCHIVE_ENABLED" default:"false"`
	NotifyEnabled       bool   `envconfig:"KAFKA_NOTIFICATION_ENABLED" default:"false"`
}

// ProblemReporter runs one report generation end to end: fetch the event
// window, clean it, write the HTML document, then archive and notify when
// those sinks are attached. Archive and notifier may be nil.
type ProblemReporter struct {
	logger     *logrus.Logger
	source     zabbix.EventSourceInterface
	pipeline   *pipeline.ProblemPipeline
	archive    opensearch_repo.ReportArchiveInterface
	notifier   stream.Notifier
	outputPath string
}

func NewProblemReporter(logger *logrus.Logger, source zabbix.EventSourceInterface, archive opensearch_repo.ReportArchiveInterface, notifier stream.Notifier, outputPath string) *ProblemReporter {
	return &ProblemReporter{
		logger:     logger,
		source:     source,
		pipeline:   pipeline.NewProblemPipeline(logger),
		archive:    archive,
		notifier:   notifier,
		outputPath: outputPath,
	}
}

// Run generates the report for the window ending at the start of `now`'s
// day. Fetch, clean and write failures abort the run; archive and
// notification failures are logged and do not invalidate the written report.
func (r *ProblemReporter) Run(ctx context.Context, now time.Time) error {
	from, till := zabbix.ReportWindow(now)
	events, err := r.source.GetEvents(ctx, from, till)
	if err != nil {
		return err
	}

	problems, err := r.pipeline.Clean(events)
	if err != nil {
		return err
	}

	html, err := report.Render(problems, now)
	if err != nil {
		return err
	}
	if err := os.WriteFile(r.outputPath, html, 0644); err != nil {
		return err
	}

	reportID := uuid.New().String()
	r.logger.WithFields(logrus.Fields{
		"report_id": reportID,
		"path":      r.outputPath,
		"problems":  len(problems),
	}).Info("problem report written")

	if r.archive != nil {
		if err := r.archive.Archive(ctx, reportID, problems); err != nil {
			r.logger.WithError(err).WithFields(logrus.Fields{
				"report_id": reportID,
			}).Warn("could not archive report records")
		}
	}

	if r.notifier != nil {
		notification := &stream.ReportGenerated{
			ReportID:     reportID,
			Path:         r.outputPath,
			ProblemCount: len(problems),
			GeneratedAt:  strfmt.DateTime(now),
		}
		if err := r.notifier.Notify(ctx, notification); err != nil {
			r.logger.WithError(err).WithFields(logrus.Fields{
				"report_id": reportID,
			}).Warn("could not notify about report")
		}
	}

	return nil
}
