//go:build integration
// +build integration

package repository

import (
	"os"
	"os/signal"
	"syscall"
	"testing"

	"cricauction-backend/internal/testutils"

	"github.com/sirupsen/logrus"
)

// TestMain removes the shared Postgres container after the integration run,
// including runs stopped with Ctrl+C.
func TestMain(m *testing.M) {
	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupted
		logrus.Warn("Repository integration tests interrupted, purging postgres container")
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}
