package viz

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestViz(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Viz Suite")
}
