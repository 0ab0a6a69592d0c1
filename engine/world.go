package engine

import (
	"fmt"

	"github.com/lixenwraith/grid-snake/components"
	"github.com/lixenwraith/grid-snake/core"
)

// Appearance bundles the visual components every tile entity is spawned with
type Appearance struct {
	Size  components.SizeComponent
	Color components.ColorComponent
}

// World is the entity registry: it owns identities and the typed component stores
// Grid-logical stores (Positions, Heads) are written only by fixed-tick and input systems
// Transforms are written only by presentation and motion systems
type World struct {
	nextEntityID core.Entity
	alive        map[core.Entity]struct{}

	// Grid state
	Positions *Store[components.PositionComponent]
	Heads     *Store[components.HeadComponent]
	Segments  *Store[components.SegmentComponent]
	Foods     *Store[components.FoodComponent]

	// Visuals
	Sizes      *Store[components.SizeComponent]
	Colors     *Store[components.ColorComponent]
	Transforms *Store[components.TransformComponent]
	Velocities *Store[components.VelocityComponent]

	// Lifecycle registry - all stores implement AnyStore for uniform cleanup
	allStores []AnyStore
}

// NewWorld creates a world with all component stores initialized
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		alive:        make(map[core.Entity]struct{}),
		Positions:    NewStore[components.PositionComponent](),
		Heads:        NewStore[components.HeadComponent](),
		Segments:     NewStore[components.SegmentComponent](),
		Foods:        NewStore[components.FoodComponent](),
		Sizes:        NewStore[components.SizeComponent](),
		Colors:       NewStore[components.ColorComponent](),
		Transforms:   NewStore[components.TransformComponent](),
		Velocities:   NewStore[components.VelocityComponent](),
	}

	w.allStores = []AnyStore{
		w.Positions,
		w.Heads,
		w.Segments,
		w.Foods,
		w.Sizes,
		w.Colors,
		w.Transforms,
		w.Velocities,
	}

	return w
}

// CreateEntity reserves a new entity ID without adding any components
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	w.alive[id] = struct{}{}
	return id
}

// Exists reports whether the entity was spawned and not destroyed
func (w *World) Exists(e core.Entity) bool {
	_, ok := w.alive[e]
	return ok
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	for _, store := range w.allStores {
		store.Remove(e)
	}
	delete(w.alive, e)
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.nextEntityID = 1
	w.alive = make(map[core.Entity]struct{})
	for _, store := range w.allStores {
		store.Clear()
	}
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return len(w.alive)
}

// spawnTile creates an entity with a grid position and its visuals
func (w *World) spawnTile(pos components.PositionComponent, look Appearance) core.Entity {
	e := w.CreateEntity()
	w.Positions.Add(e, pos)
	w.Sizes.Add(e, look.Size)
	w.Colors.Add(e, look.Color)
	w.Transforms.Add(e, components.Identity())
	return e
}

// SpawnHead creates the snake head, which is also the first body segment
func (w *World) SpawnHead(pos components.PositionComponent, heading core.Heading, look Appearance) core.Entity {
	if w.Heads.Count() > 0 {
		panic("snake head already spawned")
	}
	e := w.spawnTile(pos, look)
	w.Heads.Add(e, components.HeadComponent{Heading: heading, Stepped: heading})
	w.Segments.Add(e, components.SegmentComponent{})
	return e
}

// SpawnSegment creates a trailing body segment
func (w *World) SpawnSegment(pos components.PositionComponent, look Appearance) core.Entity {
	e := w.spawnTile(pos, look)
	w.Segments.Add(e, components.SegmentComponent{})
	return e
}

// SpawnFood creates a food entity
func (w *World) SpawnFood(pos components.PositionComponent, look Appearance) core.Entity {
	e := w.spawnTile(pos, look)
	w.Foods.Add(e, components.FoodComponent{})
	return e
}

// SpawnMover creates a free-moving display-space entity with no grid position
func (w *World) SpawnMover(translation components.TransformComponent, velocity components.VelocityComponent, look Appearance) core.Entity {
	e := w.CreateEntity()
	w.Transforms.Add(e, translation)
	w.Velocities.Add(e, velocity)
	w.Sizes.Add(e, look.Size)
	w.Colors.Add(e, look.Color)
	return e
}

// Position returns the grid position of an entity
// Panics for an identity that was never spawned or has no grid position
func (w *World) Position(e core.Entity) components.PositionComponent {
	w.mustExist(e)
	return w.Positions.MustGet(e)
}

// SetPosition overwrites the grid position of a positioned entity
// Panics for an identity that was never spawned or has no grid position
func (w *World) SetPosition(e core.Entity, pos components.PositionComponent) {
	w.mustExist(e)
	if !w.Positions.Has(e) {
		panic(fmt.Sprintf("entity %d has no grid position", e))
	}
	w.Positions.Add(e, pos)
}

// Heading returns the committed heading of the head entity
func (w *World) Heading(e core.Entity) core.Heading {
	w.mustExist(e)
	return w.Heads.MustGet(e).Heading
}

// SetHeading commits a new heading on the head entity
func (w *World) SetHeading(e core.Entity, h core.Heading) {
	w.mustExist(e)
	head := w.Heads.MustGet(e)
	head.Heading = h
	w.Heads.Add(e, head)
}

// SteppedHeading returns the heading the head last moved with
// Before the first step it is the spawn heading
func (w *World) SteppedHeading(e core.Entity) core.Heading {
	w.mustExist(e)
	return w.Heads.MustGet(e).Stepped
}

// RecordStep stores the heading a step was taken with
func (w *World) RecordStep(e core.Entity, h core.Heading) {
	w.mustExist(e)
	head := w.Heads.MustGet(e)
	head.Stepped = h
	w.Heads.Add(e, head)
}

func (w *World) mustExist(e core.Entity) {
	if _, ok := w.alive[e]; !ok {
		panic(fmt.Sprintf("entity %d was never spawned", e))
	}
}
