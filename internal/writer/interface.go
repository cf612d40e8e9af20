package writer

import "github.com/nguyentantai21042004/transcript-flow/internal/models"

// Writer persists one output record per transcript and returns it as written
type Writer interface {
	Write(record models.OutputRecord, destination string) (models.OutputRecord, error)
}
