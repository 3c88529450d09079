package drop_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestDropSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Drop Suite")
}
