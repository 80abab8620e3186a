package jsonedit

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Delete json field", func() {
	When("Delete a simple field", func() {
		It("is deleted successfully", func() {
			input := []byte(`{"foobar":"myvalue"}`)
			paths := []string{
				"foobar",
			}
			output, err := Delete(input, paths)
			Expect(err).NotTo(HaveOccurred())

			Expect(output).To(Equal([]byte("{}")))
		})
	})
	When("Delete a nested field", func() {
		It("deletes only that field", func() {
			input := []byte(`{"method":"user.login","params":{"username":"report","password":"hunter2"}}`)
			paths := []string{
				"params.password",
			}
			output, err := Delete(input, paths)
			Expect(err).NotTo(HaveOccurred())

			Expect(output).To(Equal([]byte(`{"method":"user.login","params":{"username":"report"}}`)))
		})
	})
	When("Delete a missing field", func() {
		It("leaves the document unchanged", func() {
			input := []byte(`{"foobar":"myvalue"}`)
			output, err := Delete(input, []string{"auth"})
			Expect(err).NotTo(HaveOccurred())

			Expect(output).To(Equal(input))
		})
	})
})

var _ = Describe("Redact json field", func() {
	When("Redacting an existing field", func() {
		It("replaces its value with a placeholder", func() {
			input := []byte(`{"method":"user.login","params":{"username":"report","password":"hunter2"}}`)
			paths := []string{
				"params.password",
			}
			output, err := Redact(input, paths)
			Expect(err).NotTo(HaveOccurred())

			Expect(output).To(Equal([]byte(`{"method":"user.login","params":{"username":"report","password":"[REDACTED]"}}`)))
		})
	})
	When("Redacting a missing field", func() {
		It("leaves the document unchanged", func() {
			input := []byte(`{"method":"event.get"}`)
			output, err := Redact(input, []string{"params.password"})
			Expect(err).NotTo(HaveOccurred())

			Expect(output).To(Equal(input))
		})
	})
})

func TestJsonedit(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Jsonedit")
}
