package service

import (
	"context"
	"errors"
	"lintang/pathplanner/pkg/datastructure"
	"lintang/pathplanner/pkg/engine/avoidance"
	"lintang/pathplanner/pkg/engine/routingalgorithm"
	"lintang/pathplanner/pkg/geo"
	"lintang/pathplanner/pkg/kv"
	"lintang/pathplanner/pkg/server"
)

type GridRoutingAlgorithm interface {
	GridAStar(start, goal datastructure.Coordinate, blocked []datastructure.Coordinate) (routingalgorithm.GridPathResult, error)
}

type KVDB interface {
	GetPlan(key []byte) (kv.CachedPlan, bool, error)
	SavePlan(key []byte, plan kv.CachedPlan) error
	GetPlansNear(lat, lon float64) ([]kv.CachedPlan, error)
}

type PlanResult struct {
	Path     []datastructure.Coordinate
	Distance float64
	Expanded int
	Cached   bool
}

type PlannerService struct {
	routing GridRoutingAlgorithm
	KV      KVDB
}

// NewPlannerService kvDB boleh nil, artinya hasil plan tidak di-cache.
func NewPlannerService(routing GridRoutingAlgorithm, kvDB KVDB) *PlannerService {
	return &PlannerService{routing: routing, KV: kvDB}
}

func newPlanResult(path []datastructure.Coordinate, expanded int, cached bool) PlanResult {
	return PlanResult{
		Path:     path,
		Distance: geo.PathLength(path),
		Expanded: expanded,
		Cached:   cached,
	}
}

func errNoPath(err error) error {
	return server.WrapErrorf(err, server.ErrBadParamInput, "no path")
}

// planCacheKey key kv untuk query plan. cacheable false kalau start/goal tidak bisa jadi Cell (planner pasti
// ErrNoPath), supaya koordinat yang overflow tidak berbagi key.
func planCacheKey(start, goal datastructure.Coordinate, blocked []datastructure.Coordinate) ([]byte, bool) {
	from, okFrom := datastructure.NewCellChecked(start)
	to, okTo := datastructure.NewCellChecked(goal)
	if !okFrom || !okTo {
		return nil, false
	}
	blockedCells := make([]datastructure.Cell, 0, len(blocked))
	for _, b := range blocked {
		if cell, ok := datastructure.NewCellChecked(b); ok {
			blockedCells = append(blockedCells, cell)
		}
	}
	return kv.PlanKey(from, to, blockedCells), true
}

// Plan grid A* dari start ke goal. Path yang sudah pernah dihitung diambil dari kv (algoritmanya deterministik).
func (uc *PlannerService) Plan(ctx context.Context, start, goal datastructure.Coordinate,
	blocked []datastructure.Coordinate) (PlanResult, error) {

	key, cacheable := planCacheKey(start, goal, blocked)
	if uc.KV != nil && cacheable {

		cached, ok, err := uc.KV.GetPlan(key)
		if err != nil {
			return PlanResult{}, server.WrapErrorf(err, server.ErrInternalServerError, server.MessageInternalServerError)
		}
		if ok {
			if !cached.Found {
				return PlanResult{}, errNoPath(routingalgorithm.ErrNoPath)
			}
			return newPlanResult(cached.Path, int(cached.Expanded), true), nil
		}
	}

	res, err := uc.routing.GridAStar(start, goal, blocked)
	if errors.Is(err, routingalgorithm.ErrSearchLimit) {
		// batas ekspansi tergantung konfigurasi server, jangan di-cache
		return PlanResult{}, errNoPath(err)
	}
	if err != nil && !errors.Is(err, routingalgorithm.ErrNoPath) {
		return PlanResult{}, server.WrapErrorf(err, server.ErrInternalServerError, server.MessageInternalServerError)
	}

	if uc.KV != nil && cacheable {
		plan := kv.CachedPlan{
			Start:    datastructure.NewCell(start).Coordinate(),
			Goal:     datastructure.NewCell(goal).Coordinate(),
			Path:     res.Path,
			Expanded: int64(res.Expanded),
			Found:    err == nil,
		}
		if saveErr := uc.KV.SavePlan(key, plan); saveErr != nil {
			return PlanResult{}, server.WrapErrorf(saveErr, server.ErrInternalServerError, server.MessageInternalServerError)
		}
	}

	if err != nil {
		return PlanResult{}, errNoPath(err)
	}
	return newPlanResult(res.Path, res.Expanded, false), nil
}

func (uc *PlannerService) Avoid(ctx context.Context, position, obstacle datastructure.Coordinate, heading float64) avoidance.Maneuver {
	return avoidance.Avoid(position, obstacle, heading)
}

func (uc *PlannerService) PlansNear(ctx context.Context, lat, lon float64) ([]kv.CachedPlan, error) {
	if uc.KV == nil {
		return []kv.CachedPlan{}, server.WrapErrorf(errors.New("kv disabled"), server.ErrNotFound, "plan cache is disabled")
	}
	plans, err := uc.KV.GetPlansNear(lat, lon)
	if err != nil {
		return []kv.CachedPlan{}, server.WrapErrorf(err, server.ErrInternalServerError, server.MessageInternalServerError)
	}
	return plans, nil
}
