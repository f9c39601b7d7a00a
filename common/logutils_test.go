package common_test

import (
	"shopfloor/common"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
)

var _ = Describe("Logging", func() {
	AfterEach(func() {
		Expect(common.ConfigureLogger("info", "text")).To(Succeed())
	})

	It("should apply level and format", func() {
		Expect(common.ConfigureLogger("debug", "JSON")).To(Succeed())
		Expect(logrus.GetLevel()).To(Equal(logrus.DebugLevel))
		Expect(logrus.StandardLogger().Formatter).To(BeAssignableToTypeOf(&logrus.JSONFormatter{}))
	})

	It("should reject unknown levels", func() {
		Expect(common.ConfigureLogger("verbose", "")).ToNot(Succeed())
	})

	It("should stamp service fields on every entry", func() {
		entry := logrus.NewEntry(logrus.StandardLogger())
		entry.Data = logrus.Fields{}
		Expect((&common.DefaultFieldsHook{}).Fire(entry)).To(Succeed())
		Expect(entry.Data["serviceName"]).To(Equal(common.GetServiceName()))
		Expect(entry.Data["serviceInstance"]).ToNot(BeEmpty())
	})
})
