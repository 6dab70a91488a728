package catalogsvc

import (
	"errors"
	"fmt"
	"testing"

	"github.com/InderX84/FarmX/internal/common"
)

func TestDuplicateNameToBadRequest(t *testing.T) {
	t.Run("unique index violation becomes a 400", func(t *testing.T) {
		err := duplicateNameToBadRequest(common.ErrMongoDuplicate, "game")
		var customErr *common.Error
		if !errors.As(err, &customErr) {
			t.Fatalf("duplicateNameToBadRequest() = %v, want *common.Error", err)
		}
		if customErr.StatusCode != common.StatusBadRequest {
			t.Errorf("status = %d, want %d", customErr.StatusCode, common.StatusBadRequest)
		}
		if customErr.Message != "A game with this name already exists" {
			t.Errorf("message = %q", customErr.Message)
		}
	})

	t.Run("other errors pass through", func(t *testing.T) {
		original := fmt.Errorf("connection reset")
		if err := duplicateNameToBadRequest(original, "category"); !errors.Is(err, original) {
			t.Errorf("duplicateNameToBadRequest() = %v, want %v", err, original)
		}
	})

	t.Run("nil stays nil", func(t *testing.T) {
		if err := duplicateNameToBadRequest(nil, "game"); err != nil {
			t.Errorf("duplicateNameToBadRequest(nil) = %v", err)
		}
	})
}
