package opensearch

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	opensearch "github.com/opensearch-project/opensearch-go"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"github.com/zabbix-tools/problem-report/internal/types"
)

var _ = Describe("Report archive", func() {
	var (
		ctx        context.Context
		logger     *logrus.Logger
		server     *httptest.Server
		bulkBodies []string
	)
	BeforeEach(func() {
		logger = logrus.New()
		logger.Out = io.Discard
		ctx = context.Background()
		bulkBodies = nil
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			bulkBodies = append(bulkBodies, string(body))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"took":1,"errors":false,"items":[]}`))
		}))
	})
	AfterEach(func() {
		server.Close()
	})
	getArchive := func() *ReportArchive {
		client, err := opensearch.NewClient(opensearch.Config{
			Addresses: []string{server.URL},
		})
		Expect(err).NotTo(HaveOccurred())
		return NewReportArchive(logger, client, "problems-")
	}
	getProblems := func() []types.ResolvedProblem {
		return []types.ResolvedProblem{
			{EventID: 1, Clock: "03/03/2021 08:15:00", RtsClock: "00:08:20", Severity: "Warning", Hosts: "HOSTA", Name: "CPU high"},
			{EventID: 2, Clock: "02/28/2021 23:59:00", RtsClock: "00:00:10", Severity: "High", Hosts: "HOSTB", Name: "Disk full"},
		}
	}
	// bulk bodies are NDJSON: action metadata on even lines, documents on
	// odd lines
	getActions := func() []gjson.Result {
		actions := []gjson.Result{}
		for _, body := range bulkBodies {
			lines := strings.Split(strings.TrimSpace(body), "\n")
			for i := 0; i+1 < len(lines); i += 2 {
				actions = append(actions, gjson.Get(lines[i], "index"))
			}
		}
		return actions
	}
	getDocuments := func() []gjson.Result {
		documents := []gjson.Result{}
		for _, body := range bulkBodies {
			lines := strings.Split(strings.TrimSpace(body), "\n")
			for i := 1; i < len(lines); i += 2 {
				documents = append(documents, gjson.Parse(lines[i]))
			}
		}
		return documents
	}
	When("archiving a report", func() {
		It("should index one document per record under the record's month", func() {
			archive := getArchive()
			err := archive.Archive(ctx, "a7c64557-b1a4-4a07-95ba-36e9df42b857", getProblems())
			Expect(err).NotTo(HaveOccurred())
			archive.Close(ctx)

			actions := getActions()
			Expect(actions).To(HaveLen(2))
			Expect(actions[0].Get("_index").String()).To(Equal("problems-2021-03"))
			Expect(actions[1].Get("_index").String()).To(Equal("problems-2021-02"))
			Expect(actions[0].Get("_id").String()).NotTo(BeEmpty())
			Expect(actions[1].Get("_id").String()).NotTo(Equal(actions[0].Get("_id").String()))

			documents := getDocuments()
			Expect(documents).To(HaveLen(2))
			Expect(documents[0].Get("report_id").String()).To(Equal("a7c64557-b1a4-4a07-95ba-36e9df42b857"))
			Expect(documents[0].Get("eventid").Int()).To(Equal(int64(1)))
			Expect(documents[0].Get("hosts").String()).To(Equal("HOSTA"))
			Expect(documents[1].Get("eventid").Int()).To(Equal(int64(2)))
		})
	})
	When("archiving the same records again", func() {
		It("should derive the same document ids", func() {
			archive := getArchive()
			err := archive.Archive(ctx, "a7c64557-b1a4-4a07-95ba-36e9df42b857", getProblems())
			Expect(err).NotTo(HaveOccurred())
			archive.Close(ctx)

			firstIDs := []string{}
			for _, action := range getActions() {
				firstIDs = append(firstIDs, action.Get("_id").String())
			}
			Expect(firstIDs).To(HaveLen(2))

			bulkBodies = nil
			archive = getArchive()
			// a later run over the same window carries a new report id
			err = archive.Archive(ctx, "7f29ad94-15c1-43d6-88a7-3a0a6a2dcb1b", getProblems())
			Expect(err).NotTo(HaveOccurred())
			archive.Close(ctx)

			secondIDs := []string{}
			for _, action := range getActions() {
				secondIDs = append(secondIDs, action.Get("_id").String())
			}
			Expect(secondIDs).To(Equal(firstIDs))
		})
	})
})

func TestReportArchive(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Report archive")
}
