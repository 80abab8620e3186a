package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	opensearch "github.com/opensearch-project/opensearch-go"
	"github.com/opensearch-project/opensearch-go/opensearchutil"
	"github.com/sirupsen/logrus"
	"github.com/zabbix-tools/problem-report/internal/types"
)

const (
	NumWorkers    = 1
	BulkTimeout   = time.Second * 20
	FlushInterval = time.Second * 30
	MaxBytes      = 10e6 // Flush records after this size
)

//go:generate mockgen -source=report_archive.go -package=opensearch -destination=mock_report_archive.go

type ReportArchiveInterface interface {
	Archive(ctx context.Context, reportID string, problems []types.ResolvedProblem) error
	Close(ctx context.Context)
}

// ReportArchive indexes every cleaned record of a report into a
// month-suffixed index, so past reports stay queryable after the HTML file
// is gone.
type ReportArchive struct {
	indexPrefix string
	opensearch  *opensearch.Client
	bulk        opensearchutil.BulkIndexer
	logger      *logrus.Logger
	namespace   uuid.UUID
}

type archivedProblem struct {
	ReportID string `json:"report_id"`
	types.ResolvedProblem
}

func NewReportArchive(logger *logrus.Logger, opensearchClient *opensearch.Client, indexPrefix string) *ReportArchive {
	bulkIndexer, err := opensearchutil.NewBulkIndexer(opensearchutil.BulkIndexerConfig{
		NumWorkers:    NumWorkers,
		Client:        opensearchClient,
		FlushBytes:    MaxBytes,
		FlushInterval: FlushInterval,
		Refresh:       "false",
		Timeout:       BulkTimeout,
		OnError: func(ctx context.Context, err error) {
			logger.WithError(err).Warning("bulk item indexer failed")
		},
		OnFlushStart: func(ctx context.Context) context.Context {
			logger.Info("Starting to flush...")
			return ctx
		},
		OnFlushEnd: func(ctx context.Context) {
			logger.Info("Flushed.")
		},
	})
	if err != nil {
		logger.WithError(err).Warning("error initializing bulk indexer")
	}

	// seed must stay 16 bytes
	namespace, _ := uuid.FromBytes([]byte("zabbixproblemrep"))

	return &ReportArchive{
		indexPrefix: indexPrefix,
		opensearch:  opensearchClient,
		bulk:        bulkIndexer,
		logger:      logger,
		namespace:   namespace,
	}
}

func (r *ReportArchive) Close(ctx context.Context) {
	r.bulk.Close(ctx)
}

// Archive adds every record to the bulk indexer. Document IDs are derived
// from (eventid, clock), so re-archiving the same window overwrites instead
// of duplicating.
func (r *ReportArchive) Archive(ctx context.Context, reportID string, problems []types.ResolvedProblem) error {
	for _, problem := range problems {
		if err := r.add(ctx, reportID, problem); err != nil {
			return err
		}
	}
	r.logger.WithFields(logrus.Fields{
		"report_id": reportID,
		"count":     len(problems),
		"stats":     r.bulk.Stats(),
	}).Info("archived report records")
	return nil
}

func (r *ReportArchive) add(ctx context.Context, reportID string, problem types.ResolvedProblem) error {
	jsonDoc, err := json.Marshal(archivedProblem{
		ReportID:        reportID,
		ResolvedProblem: problem,
	})
	if err != nil {
		return err
	}

	documentID := uuid.NewSHA1(r.namespace, []byte(fmt.Sprintf("%d/%s", problem.EventID, problem.Clock))).String()
	item := opensearchutil.BulkIndexerItem{
		Index:      r.getIndexName(problem.Clock),
		DocumentID: documentID,
		Action:     "index",
		Body:       bytes.NewReader(jsonDoc),
		OnFailure: func(ctx context.Context, item opensearchutil.BulkIndexerItem, resp opensearchutil.BulkIndexerResponseItem, err error) {
			r.logger.WithError(err).WithFields(logrus.Fields{
				"document_id": item.DocumentID,
				"action":      item.Action,
				"index":       item.Index,
				"response":    resp,
			}).Debug("error bulk indexing document")
		},
	}
	return r.bulk.Add(ctx, item)
}

func (r *ReportArchive) getIndexName(clock string) string {
	t, _ := time.Parse(types.ClockLayout, clock)
	indexSuffix := fmt.Sprintf("%d-%02d", t.Year(), t.Month())

	return r.indexPrefix + indexSuffix
}
