package stream

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	kafka "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/compress"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"
	"github.com/sirupsen/logrus"
)

const (
	WriteTimeout time.Duration = 5 * time.Second
)

//go:generate mockgen -source=writer.go -package=stream -destination=mock_writer.go

// mocking kafka-go producer for testing
type Producer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type EventStreamWriter interface {
	Write(ctx context.Context, key []byte, value interface{}) error
	Close()
}

type KafkaConfig struct {
	BootstrapServer string `envconfig:"KAFKA_BOOTSTRAP_SERVER" required:"true"`
	ClientID        string `envconfig:"KAFKA_CLIENT_ID" default:""`
	ClientSecret    string `envconfig:"KAFKA_CLIENT_SECRET" default:""`
	Topic           string `envconfig:"KAFKA_NOTIFICATION_TOPIC" required:"true"`
}

type KafkaWriter struct {
	producer Producer
	logger   *logrus.Logger
}

func NewWriterFromEnv(logger *logrus.Logger) (*KafkaWriter, error) {
	config := &KafkaConfig{}
	err := envconfig.Process("", config)
	if err != nil {
		return nil, err
	}
	producer, err := newProducer(config)
	if err != nil {
		return nil, err
	}
	return NewWriter(logger, producer), nil
}

func NewWriter(logger *logrus.Logger, producer Producer) *KafkaWriter {
	return &KafkaWriter{
		producer: producer,
		logger:   logger,
	}
}

func (w *KafkaWriter) Write(ctx context.Context, key []byte, value interface{}) error {
	encodedValue, err := json.Marshal(value)
	if err != nil {
		w.logger.WithFields(logrus.Fields{
			"value": value,
			"err":   err,
		}).Error("failed to encode json")

		return err
	}
	msg := kafka.Message{
		Key:   key,
		Value: encodedValue,
	}

	w.logger.WithFields(logrus.Fields{
		"key": string(key),
	}).Debug("sending notification")

	return w.producer.WriteMessages(ctx, msg)
}

func (w *KafkaWriter) Close() {
	w.producer.Close()
}

func newProducer(config *KafkaConfig) (Producer, error) {
	brokers := strings.Split(config.BootstrapServer, ",")
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        config.Topic,
		Balancer:     &kafka.ReferenceHash{},
		Compression:  compress.Gzip,
		Async:        false,
		WriteTimeout: WriteTimeout,
	}
	mechanism := getMechanism(config)
	if mechanism != nil {
		writer.Transport = &kafka.Transport{
			SASL: mechanism,
			// let config pick default root CA, but define it to force TLS
			TLS: &tls.Config{},
		}
	}
	return writer, nil
}

func getMechanism(config *KafkaConfig) sasl.Mechanism {
	if config.ClientID == "" || config.ClientSecret == "" {
		return nil
	}
	return &plain.Mechanism{
		Username: config.ClientID,
		Password: config.ClientSecret,
	}
}
