package usecases

import (
	"fmt"

	"github.com/eastsky4dk/youtubeQurator/internal/core/domain"
	"github.com/eastsky4dk/youtubeQurator/internal/core/ports"
)

type curatorUseCase struct {
	list *domain.CuratedList
	sink ports.ExportSink
	log  ports.LoggerPort
}

// Curator manages the shortlist: ordered, deduplicated by identifier, and
// fully independent of search state.
type Curator interface {
	Add(item domain.ResultItem) bool
	Remove(id string) bool
	Clear()
	Contains(id string) bool
	Items() []domain.ResultItem
	Len() int
	Export() string
	ExportToSink() (string, error)
}

func NewCurator(sink ports.ExportSink, logger ports.LoggerPort) Curator {
	return &curatorUseCase{
		list: domain.NewCuratedList(),
		sink: sink,
		log:  logger,
	}
}

func (uc *curatorUseCase) Add(item domain.ResultItem) bool {
	added := uc.list.Add(item)
	if added {
		uc.log.Info(fmt.Sprintf("curated: added %s", item.ID))
	}
	return added
}

func (uc *curatorUseCase) Remove(id string) bool {
	removed := uc.list.Remove(id)
	if removed {
		uc.log.Info(fmt.Sprintf("curated: removed %s", id))
	}
	return removed
}

func (uc *curatorUseCase) Clear() {
	uc.log.Info(fmt.Sprintf("curated: cleared %d item(s)", uc.list.Len()))
	uc.list.Clear()
}

func (uc *curatorUseCase) Contains(id string) bool {
	return uc.list.Contains(id)
}

func (uc *curatorUseCase) Items() []domain.ResultItem {
	return uc.list.Items()
}

func (uc *curatorUseCase) Len() int {
	return uc.list.Len()
}

func (uc *curatorUseCase) Export() string {
	return uc.list.Export()
}

// ExportToSink hands the export payload to the configured sink and returns
// the destination it reports. The list itself is left untouched.
func (uc *curatorUseCase) ExportToSink() (string, error) {
	dest, err := uc.sink.Write(uc.list.Export())
	if err != nil {
		uc.log.Error("curated export failed", err)
		return "", fmt.Errorf("error while exporting curated list: %w", err)
	}
	uc.log.Info(fmt.Sprintf("curated: exported %d item(s) to %s", uc.list.Len(), dest))
	return dest, nil
}
