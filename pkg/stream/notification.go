package stream

import (
	"context"
	"fmt"
	"reflect"

	"github.com/go-openapi/strfmt"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=notification.go -package=stream -destination=mock_notification.go

type Notifiable interface {
	GetReportID() string
	NotificationType() string
	Payload() any
}

type Notifier interface {
	Notify(ctx context.Context, notifiable Notifiable) error
	Close()
}

type Envelope struct {
	Name     string
	Payload  interface{}
	Metadata interface{}
}

// ReportGenerated announces a freshly written problem report to downstream
// consumers (mailers, dashboards).
type ReportGenerated struct {
	ReportID     string          `json:"report_id"`
	Path         string          `json:"path"`
	ProblemCount int             `json:"problem_count"`
	GeneratedAt  strfmt.DateTime `json:"generated_at"`
}

func (r *ReportGenerated) GetReportID() string {
	return r.ReportID
}

func (r *ReportGenerated) NotificationType() string {
	return "ReportGenerated"
}

func (r *ReportGenerated) Payload() any {
	return r
}

type NotificationStream struct {
	metadata interface{}
	writer   EventStreamWriter
	log      logrus.FieldLogger
}

func NewNotificationStream(writer EventStreamWriter, logger logrus.FieldLogger, metadata interface{}) *NotificationStream {
	return &NotificationStream{
		writer:   writer,
		metadata: metadata,
		log:      logger,
	}
}

func (s *NotificationStream) Notify(ctx context.Context, notifiable Notifiable) error {
	if s.writer == nil {
		return nil
	}
	if notifiable == nil || reflect.ValueOf(notifiable).IsNil() {
		return fmt.Errorf("trying to notify on nil notifiable")
	}

	envelope := &Envelope{
		Name:     notifiable.NotificationType(),
		Payload:  notifiable.Payload(),
		Metadata: s.metadata,
	}

	if err := s.writer.Write(ctx, []byte(notifiable.GetReportID()), envelope); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"type":      notifiable.NotificationType(),
			"report_id": notifiable.GetReportID(),
		}).Warn("failed to stream notification for report")
		return err
	}
	return nil
}

func (s *NotificationStream) Close() {
	if s.writer != nil {
		s.writer.Close()
	}
}
