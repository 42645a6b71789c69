package job

import (
	"github.com/DivyaGovardhan/design-ui/logger"
	"github.com/DivyaGovardhan/design-ui/web/service"
)

// OrphanUploadJob removes stored photo files no longer referenced by any
// application row, e.g. after interrupted submissions.
type OrphanUploadJob struct {
	applicationService service.ApplicationService
	storageService     service.StorageService
}

// NewOrphanUploadJob creates a new orphan upload sweep job
func NewOrphanUploadJob() *OrphanUploadJob {
	return &OrphanUploadJob{}
}

// Run deletes unreferenced files from the upload folder.
func (j *OrphanUploadJob) Run() {
	logger.Debug("Orphan upload sweep started")

	referenced, err := j.applicationService.ReferencedPhotos()
	if err != nil {
		logger.Warning("Failed to collect referenced photos:", err)
		return
	}

	stored, err := j.storageService.ListStored()
	if err != nil {
		logger.Warning("Failed to list stored photos:", err)
		return
	}

	removed := 0
	for _, name := range stored {
		if !referenced[name] {
			j.storageService.RemovePhoto(name)
			removed++
		}
	}
	if removed > 0 {
		logger.Infof("Orphan upload sweep removed %d files", removed)
	}
}
