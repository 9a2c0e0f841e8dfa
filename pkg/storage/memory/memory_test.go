package memory

import (
	"testing"

	"github.com/Layr-Labs/image-verification-operator/pkg/storage"
)

func TestInMemoryProcessedTaskStore(t *testing.T) {
	suite := &storage.TestSuite{
		NewStore: func() (storage.ProcessedTaskStore, error) {
			return NewInMemoryProcessedTaskStore(), nil
		},
	}
	suite.Run(t)
}
