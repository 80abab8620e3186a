package main

import (
	"context"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/zabbix-tools/problem-report/internal/reporter"
	opensearch_repo "github.com/zabbix-tools/problem-report/internal/repository/opensearch"
	"github.com/zabbix-tools/problem-report/internal/utils"
	"github.com/zabbix-tools/problem-report/internal/zabbix"
	"github.com/zabbix-tools/problem-report/pkg/stream"
)

func main() {
	ctx := context.Background()
	log := utils.NewLogger()

	config := &reporter.Config{}
	if err := envconfig.Process("", config); err != nil {
		log.WithError(err).Fatal("could not read reporter config")
	}

	var sessions zabbix.SessionCacheInterface
	if config.SessionCacheEnabled {
		cache, err := zabbix.NewSessionCacheFromEnv(ctx, log)
		if err != nil {
			log.WithError(err).Fatal("could not set up session cache")
		}
		sessions = cache
	}

	source, err := zabbix.NewClientFromEnv(log, sessions)
	if err != nil {
		log.WithError(err).Fatal("could not set up zabbix client")
	}

	var archive opensearch_repo.ReportArchiveInterface
	if config.ArchiveEnabled {
		reportArchive := opensearch_repo.NewReportArchiveFromEnv(log)
		defer reportArchive.Close(ctx)
		archive = reportArchive
	}

	var notifier stream.Notifier
	if config.NotifyEnabled {
		writer, err := stream.NewWriterFromEnv(log)
		if err != nil {
			log.WithError(err).Fatal("could not set up kafka writer")
		}
		notificationStream := stream.NewNotificationStream(writer, log, map[string]string{
			"source": "problem-report",
		})
		defer notificationStream.Close()
		notifier = notificationStream
	}

	problemReporter := reporter.NewProblemReporter(log, source, archive, notifier, config.OutputPath)
	if err := problemReporter.Run(ctx, time.Now()); err != nil {
		log.WithError(err).Fatal("failed to generate problem report")
	}
}
