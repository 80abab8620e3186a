package zabbix

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"github.com/zabbix-tools/problem-report/internal/types"
)

var _ = Describe("Zabbix client", func() {
	var (
		ctx      context.Context
		logger   *logrus.Logger
		server   *httptest.Server
		requests []string
		respond  func(method string) string
	)
	BeforeEach(func() {
		logger = logrus.New()
		logger.Out = io.Discard
		ctx = context.Background()
		requests = nil
		respond = func(method string) string {
			switch method {
			case "user.login":
				return `{"jsonrpc":"2.0","result":"0424bd59b807674191e7d77572075f33","id":1}`
			case "event.get":
				return `{"jsonrpc":"2.0","result":[{"eventid":"1","clock":"1000","r_eventid":"2","severity":"2","name":"CPU high","hosts":[{"hostid":"10084","host":"hosta"}]}],"id":1}`
			}
			return `{"jsonrpc":"2.0","result":null,"id":1}`
		}
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			requests = append(requests, string(body))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(respond(gjson.GetBytes(body, "method").String())))
		}))
	})
	AfterEach(func() {
		server.Close()
	})
	getClient := func(groupID string) *Client {
		return NewClient(logger, &Config{
			URL:      server.URL,
			Username: "report",
			Password: "hunter2",
			GroupID:  groupID,
		}, nil)
	}
	When("fetching events", func() {
		It("should log in first and pass the session token", func() {
			client := getClient("")
			events, err := client.GetEvents(ctx, 1000, 2000)
			Expect(err).NotTo(HaveOccurred())
			Expect(events).To(Equal([]types.RawEvent{
				{
					EventID:  "1",
					Clock:    "1000",
					REventID: "2",
					Severity: "2",
					Name:     "CPU high",
					Hosts:    []types.HostDescriptor{{HostID: "10084", Host: "hosta"}},
				},
			}))

			Expect(requests).To(HaveLen(2))
			Expect(gjson.Get(requests[0], "method").String()).To(Equal("user.login"))
			Expect(gjson.Get(requests[0], "params.username").String()).To(Equal("report"))
			Expect(gjson.Get(requests[1], "method").String()).To(Equal("event.get"))
			Expect(gjson.Get(requests[1], "auth").String()).To(Equal("0424bd59b807674191e7d77572075f33"))
		})
		It("should request the window sorted by clock and eventid", func() {
			client := getClient("7")
			_, err := client.GetEvents(ctx, 1000, 2000)
			Expect(err).NotTo(HaveOccurred())

			params := gjson.Get(requests[1], "params")
			Expect(params.Get("time_from").Int()).To(Equal(int64(1000)))
			Expect(params.Get("time_till").Int()).To(Equal(int64(2000)))
			Expect(params.Get("groupids.0").String()).To(Equal("7"))
			Expect(params.Get("selectHosts.0").String()).To(Equal("host"))
			Expect(params.Get("output").String()).To(Equal("extend"))
			Expect(params.Get("sortfield").Value()).To(Equal([]interface{}{"clock", "eventid"}))
			Expect(params.Get("sortorder").String()).To(Equal("ASC"))
		})
		It("should reuse the session token across calls", func() {
			client := getClient("")
			_, err := client.GetEvents(ctx, 1000, 2000)
			Expect(err).NotTo(HaveOccurred())
			_, err = client.GetEvents(ctx, 2000, 3000)
			Expect(err).NotTo(HaveOccurred())

			logins := 0
			for _, request := range requests {
				if gjson.Get(request, "method").String() == "user.login" {
					logins++
				}
			}
			Expect(logins).To(Equal(1))
		})
	})
	When("the api returns an error object", func() {
		It("should fail the call", func() {
			respond = func(method string) string {
				return `{"jsonrpc":"2.0","error":{"code":-32602,"message":"Invalid params.","data":"Incorrect user name or password."},"id":1}`
			}
			client := getClient("")
			_, err := client.GetEvents(ctx, 1000, 2000)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Invalid params."))
		})
	})
})

var _ = Describe("Report window", func() {
	It("should cover the trailing seven days ending at the start of the day", func() {
		now := mustParse("2021-03-10T15:42:11Z")
		from, till := ReportWindow(now)
		Expect(till).To(Equal(mustParse("2021-03-10T00:00:00Z").Unix()))
		Expect(from).To(Equal(mustParse("2021-03-03T00:00:00Z").Unix()))
	})
})

func mustParse(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	Expect(err).NotTo(HaveOccurred())
	return t
}
