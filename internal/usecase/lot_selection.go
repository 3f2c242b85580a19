package usecase

import (
	"context"
	"errors"

	"lotes_backoffice/internal/domain/entities"
	"lotes_backoffice/internal/infrastructure/logger"

	"golang.org/x/sync/errgroup"
)

var (
	ErrLotRequiresBlock  = errors.New("a block must be selected before choosing a lot")
	ErrLotNotAvailable   = errors.New("lot is not available for sale")
	ErrLotNotFound       = errors.New("lot not found in the selected block")
	ErrProjectNotFound   = errors.New("project not found or inactive")
	ErrStageNeedsProject = errors.New("a project must be selected before choosing a stage")
	ErrBlockNeedsStage   = errors.New("a stage must be selected before choosing a block")
)

// LotSelection holds the project > stage > block > lot choice.
//
// Changing a level clears every level below it, synchronously, so a child
// selection can never outlive its parent.
type LotSelection struct {
	data entities.Step1Data
}

func NewLotSelection(data entities.Step1Data) *LotSelection {
	return &LotSelection{data: data}
}

// HandleProjectChange sets the project and resets stage, block and lot.
// A zero project clears the whole selection.
func (s *LotSelection) HandleProjectChange(p entities.Project) {
	s.data = entities.Step1Data{
		ProjectID:       p.ID,
		ProjectName:     p.Name,
		ProjectCurrency: p.Currency,
	}
}

// HandleStageChange sets the stage and resets block and lot.
func (s *LotSelection) HandleStageChange(stageID string) {
	s.data.StageID = stageID
	s.data.BlockID = ""
	s.data.SelectedLot = nil
}

// HandleBlockChange sets the block and resets the lot.
func (s *LotSelection) HandleBlockChange(blockID string) {
	s.data.BlockID = blockID
	s.data.SelectedLot = nil
}

// HandleSelectLot sets the lot; nothing else changes.
func (s *LotSelection) HandleSelectLot(lot entities.Lot) error {
	if s.data.BlockID == "" {
		return ErrLotRequiresBlock
	}
	if !lot.IsAvailable() {
		return ErrLotNotAvailable
	}
	s.data.SelectedLot = &lot
	return nil
}

func (s *LotSelection) CanProceed() bool {
	return s.data.SelectedLot != nil
}

// GetFormData returns a copy of the current selection.
func (s *LotSelection) GetFormData() entities.Step1Data {
	out := s.data
	if s.data.SelectedLot != nil {
		lot := *s.data.SelectedLot
		out.SelectedLot = &lot
	}
	return out
}

// LotOptions are the lists a lot selection step renders.
//
// A nil list was either not requested (its parent is empty) or failed; the
// matching error string tells them apart.
type LotOptions struct {
	Projects      []entities.Project `json:"projects"`
	Stages        []entities.Stage   `json:"stages"`
	Blocks        []entities.Block   `json:"blocks"`
	Lots          []entities.Lot     `json:"lots"`
	ProjectsError string             `json:"projectsError,omitempty"`
	StagesError   string             `json:"stagesError,omitempty"`
	BlocksError   string             `json:"blocksError,omitempty"`
	LotsError     string             `json:"lotsError,omitempty"`
	CanProceed    bool               `json:"canProceed"`
}

// LoadLotOptions fetches every list the selection depends on, concurrently.
// A list whose parent is empty is not requested at all; a failed list is left
// nil and does not affect its siblings. There is no retry.
func (q *Queries) LoadLotOptions(ctx context.Context, data entities.Step1Data) LotOptions {
	log := logger.For("wizard.lots")
	var opts LotOptions
	var g errgroup.Group

	g.Go(func() error {
		projects, err := q.Projects(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("projects fetch failed")
			opts.ProjectsError = err.Error()
			return nil
		}
		opts.Projects = projects
		return nil
	})
	if data.ProjectID != "" {
		g.Go(func() error {
			stages, err := q.Stages(ctx, data.ProjectID)
			if err != nil {
				log.Warn().Err(err).Str("project_id", data.ProjectID).Msg("stages fetch failed")
				opts.StagesError = err.Error()
				return nil
			}
			opts.Stages = stages
			return nil
		})
	}
	if data.StageID != "" {
		g.Go(func() error {
			blocks, err := q.Blocks(ctx, data.StageID)
			if err != nil {
				log.Warn().Err(err).Str("stage_id", data.StageID).Msg("blocks fetch failed")
				opts.BlocksError = err.Error()
				return nil
			}
			opts.Blocks = blocks
			return nil
		})
	}
	if data.ProjectID != "" && data.BlockID != "" {
		g.Go(func() error {
			lots, err := q.Lots(ctx, data.ProjectID, data.BlockID)
			if err != nil {
				log.Warn().Err(err).Str("block_id", data.BlockID).Msg("lots fetch failed")
				opts.LotsError = err.Error()
				return nil
			}
			opts.Lots = lots
			return nil
		})
	}
	_ = g.Wait()

	opts.CanProceed = data.SelectedLot != nil
	return opts
}

func findProject(projects []entities.Project, id string) (entities.Project, bool) {
	for _, p := range projects {
		if p.ID == id {
			return p, true
		}
	}
	return entities.Project{}, false
}

func findLot(lots []entities.Lot, id string) (entities.Lot, bool) {
	for _, l := range lots {
		if l.ID == id {
			return l, true
		}
	}
	return entities.Lot{}, false
}
