package mapexpr_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestMapexpr(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Mapexpr Suite")
}
