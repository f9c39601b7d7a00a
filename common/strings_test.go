package common_test

import (
	"shopfloor/common"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Strings", func() {
	Describe("StringReader", func() {
		It("should be able to build a bytes.Reader from a string", func() {
			str := "test string"
			reader := common.StringReader(str)
			buf := make([]byte, len(str))
			n, err := reader.Read(buf)
			Expect(n).To(Equal(len(str)))
			Expect(err).To(BeNil())
			Expect(string(buf)).To(Equal(str))
		})
	})

	Describe("ContainsFold", func() {
		It("should match substrings ignoring case", func() {
			Expect(common.ContainsFold("Assembly Line 2", "line")).To(BeTrue())
			Expect(common.ContainsFold("Assembly Line 2", "ASSEMBLY")).To(BeTrue())
			Expect(common.ContainsFold("Assembly Line 2", "paint")).To(BeFalse())
		})
		It("should match everything with an empty keyword", func() {
			Expect(common.ContainsFold("", "")).To(BeTrue())
			Expect(common.ContainsFold("WO-1", "")).To(BeTrue())
		})
	})
})
