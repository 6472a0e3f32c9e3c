package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/stridehq/stride/internal/models"
)

// ensureIdentity assigns an id and creation stamp to new records. Existing
// ids are immutable and left alone.
func ensureIdentity(meta *models.Meta) {
	if meta.ID != "" {
		return
	}
	meta.ID = uuid.NewString()
	meta.CreatedAt = time.Now().UTC()
}
