package studio

import (
	"fmt"
	"math"

	"github.com/alexisbeaulieu97/gridsmith/internal/config"
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/color"
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/design"
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/layout"
	"github.com/alexisbeaulieu97/gridsmith/internal/domain/theme"
	"github.com/alexisbeaulieu97/gridsmith/internal/logger"
	gridsmitherrors "github.com/alexisbeaulieu97/gridsmith/pkg/errors"
)

// OpResult records what happened to one scripted op.
type OpResult struct {
	Index   int
	Op      string
	Applied bool
	Detail  string
}

// RunReport summarises a script run.
type RunReport struct {
	Results []OpResult
}

// Applied counts ops that changed the session.
func (r RunReport) Applied() int {
	n := 0
	for _, res := range r.Results {
		if res.Applied {
			n++
		}
	}
	return n
}

// Ignored counts ops that were valid but had nothing to act on.
func (r RunReport) Ignored() int {
	return len(r.Results) - r.Applied()
}

// Run applies the ops of script in order and stops at the first failure.
// Ops that refer to missing parts are recorded as ignored, not as failures.
func (s *Service) Run(script *config.Script) (RunReport, error) {
	var report RunReport
	if script == nil {
		return report, nil
	}
	for i, op := range script.Ops {
		applied, detail, err := s.Apply(op)
		if err != nil {
			s.log.Warn("script stopped", logger.Fields{"op": op.Op, "index": i, "line": op.Line, "error": err.Error()})
			return report, gridsmitherrors.NewOpError(i, op.Line, op.Op, err)
		}
		report.Results = append(report.Results, OpResult{Index: i, Op: op.Op, Applied: applied, Detail: detail})
	}
	s.log.Info("script applied", logger.Fields{"name": script.Name, "applied": report.Applied(), "ignored": report.Ignored()})
	return report, nil
}

// Apply executes a single op and reports whether it changed the session.
func (s *Service) Apply(op config.Op) (bool, string, error) {
	switch op.Op {
	case config.OpAdd:
		return s.applyAdd(op)
	case config.OpRemove:
		return s.RemovePart(op.ID), op.ID, nil
	case config.OpUpdate:
		return s.UpdatePart(op.ID, design.Patch{Label: op.Label, Props: op.Props}), op.ID, nil
	case config.OpMove:
		index := math.MaxInt32
		if op.Index != nil {
			index = *op.Index
		}
		return s.MovePart(op.ID, layout.AreaID(op.Area), index), op.ID + " -> " + op.Area, nil
	case config.OpDrop:
		return s.Drop(op.ID, op.Over), op.ID + " -> " + op.Over, nil
	case config.OpUndo:
		return s.Undo(), "", nil
	case config.OpRedo:
		return s.Redo(), "", nil
	case config.OpSelect:
		return s.Select(op.ID), op.ID, nil
	case config.OpRandomize:
		var locks color.Locks
		if len(op.Locks) > 0 {
			locks = color.Locks{}
			for _, name := range op.Locks {
				role, err := color.ParseRole(name)
				if err != nil {
					return false, "", err
				}
				locks[role] = true
			}
		}
		result := s.RandomizeColors(locks)
		return true, result.Colors.Primary, nil
	case config.OpSetColor:
		role, err := color.ParseRole(op.Role)
		if err != nil {
			return false, "", err
		}
		if err := s.SetColor(role, op.Hex); err != nil {
			return false, "", err
		}
		return true, op.Role + "=" + op.Hex, nil
	case config.OpSiteType:
		siteType, err := layout.ParseSiteType(op.SiteType)
		if err != nil {
			return false, "", err
		}
		l := s.GenerateLayout(siteType)
		return true, string(l.SiteType), nil
	case config.OpRadius:
		return appliedOrErr(op.Value, s.SetRadius(theme.Radius(op.Value)))
	case config.OpShadow:
		return appliedOrErr(op.Value, s.SetShadow(theme.Shadow(op.Value)))
	case config.OpFonts:
		return appliedOrErr(op.Heading+"/"+op.Body, s.SetFonts(op.Heading, op.Body))
	case config.OpEffect:
		if op.Effect == nil {
			return false, "", fmt.Errorf("effect op without an effect")
		}
		s.SetEffect(*op.Effect)
		return true, op.Effect.Type, nil
	default:
		return false, "", fmt.Errorf("unsupported op %q", op.Op)
	}
}

func (s *Service) applyAdd(op config.Op) (bool, string, error) {
	var edits []PartEdit
	if op.ID != "" {
		edits = append(edits, partID(op.ID))
	}
	if op.Label != nil {
		edits = append(edits, PartLabel(*op.Label))
	}
	if op.Props != nil {
		edits = append(edits, PartProps(op.Props))
	}
	added, err := s.AddCatalogPart(op.Type, layout.AreaID(op.Area), edits...)
	if err != nil {
		return false, "", err
	}
	return true, added.ID, nil
}

func appliedOrErr(detail string, err error) (bool, string, error) {
	if err != nil {
		return false, "", err
	}
	return true, detail, nil
}
