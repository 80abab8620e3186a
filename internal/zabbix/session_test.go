package zabbix

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
)

var defaultExpiration = 12 * time.Hour

var _ = Describe("Session cache", func() {
	var (
		ctx      context.Context
		sessions *SessionCache
		client   *redis.Client
		mock     redismock.ClientMock
		logger   *logrus.Logger
	)
	BeforeEach(func() {
		logger = logrus.New()
		logger.Out = io.Discard
		ctx = context.Background()
		client, mock = redismock.NewClientMock()
		sessions = NewSessionCache(logger, client, defaultExpiration)
	})
	AfterEach(func() {
		mock.ClearExpect()
	})
	When("a token is cached", func() {
		It("should return it", func() {
			mock.ExpectGet(SessionTokenKey).SetVal("0424bd59b807674191e7d77572075f33")

			token, err := sessions.Get(ctx)
			Expect(err).To(BeNil())
			Expect(token).To(Equal("0424bd59b807674191e7d77572075f33"))
			Expect(mock.ExpectationsWereMet()).To(BeNil())
		})
	})
	When("no token is cached", func() {
		It("should return an empty token without error", func() {
			mock.ExpectGet(SessionTokenKey).RedisNil()

			token, err := sessions.Get(ctx)
			Expect(err).To(BeNil())
			Expect(token).To(BeEmpty())
			Expect(mock.ExpectationsWereMet()).To(BeNil())
		})
	})
	When("the store fails", func() {
		It("should surface the error", func() {
			mock.ExpectGet(SessionTokenKey).SetErr(errors.New("connection reset"))

			_, err := sessions.Get(ctx)
			Expect(err).To(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(BeNil())
		})
	})
	When("storing a token", func() {
		It("should set it with the configured expiration", func() {
			mock.ExpectSet(SessionTokenKey, "0424bd59b807674191e7d77572075f33", defaultExpiration).SetVal("OK")

			err := sessions.Set(ctx, "0424bd59b807674191e7d77572075f33")
			Expect(err).To(BeNil())
			Expect(mock.ExpectationsWereMet()).To(BeNil())
		})
	})
})

func TestSessionCache(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Zabbix session cache")
}
