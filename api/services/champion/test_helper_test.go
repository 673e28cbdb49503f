package championservice

import (
	"bytes"
	"io"
	servicetestutil "leaguecatalog/api/services/testutil"
	"leaguecatalog/pkg/database/models"
	"leaguecatalog/pkg/logger"
	"leaguecatalog/pkg/roles"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const mockBucketURL = "https://champions.s3.us-east-1.amazonaws.com"

// Helper to initialize the service with all of its mocks.
// The locker accepts every acquire unless a test overrides it.
func setupTestService(t *testing.T) (
	*ChampionService,
	*servicetestutil.MockChampionRepository,
	*servicetestutil.MockBlobStore,
	*servicetestutil.MockLocker,
) {
	t.Helper()

	mockRepo := new(servicetestutil.MockChampionRepository)
	mockBlobs := new(servicetestutil.MockBlobStore)
	mockLocker := new(servicetestutil.MockLocker)

	service := &ChampionService{
		blobStore:          mockBlobs,
		locker:             mockLocker,
		logger:             newTestLogger(t),
		ChampionRepository: mockRepo,
	}

	return service, mockRepo, mockBlobs, mockLocker
}

// Logger writing only to its temporary file.
func newTestLogger(t *testing.T) *logger.NewLogger {
	t.Helper()

	l, err := logger.CreateLogger()
	require.NoError(t, err)
	l.SetOutput(io.Discard)
	t.Cleanup(func() { l.Close() })

	return l
}

// Accept every lock request.
func allowLocks(locker *servicetestutil.MockLocker) {
	locker.On("Acquire", mock.Anything, mock.Anything).Return(nil)
}

// Return a stored champion with an image inside the mock bucket.
func getMockChampion() *models.Champion {
	return &models.Champion{
		ID:        "0b5f7c1e-0d6a-4bd4-8f8c-1c1b0b7d9a11",
		Name:      "Ahri",
		Role:      roles.Roles{roles.Mid, roles.Support},
		ImagePath: mockBucketURL + "/ahri-00112233445566778899aabbccddeeff.png",
	}
}

// Return an image upload with the given type and size.
func getMockImage(contentType string, size int64) *ImageFile {
	return &ImageFile{
		Filename:    "ahri.png",
		ContentType: contentType,
		Size:        size,
		Content:     bytes.NewReader([]byte("image-bytes")),
	}
}
