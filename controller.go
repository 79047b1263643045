package orbitals

import (
	"errors"
	"fmt"
)

// ControllerKind enumerates the available controllers.
type ControllerKind uint8

const (
	// Gravity is the default controller: the body only falls under gravity.
	Gravity ControllerKind = iota + 1
	// Dynamic applies the control events of the body (spacecraft).
	Dynamic
	// Static freezes the body in place.
	Static
	// Collided slaves the body to the one it collided with.
	Collided
)

func (k ControllerKind) String() string {
	switch k {
	case Gravity:
		return "gravity"
	case Dynamic:
		return "dynamic"
	case Static:
		return "static"
	case Collided:
		return "collided"
	}
	panic("cannot stringify unknown controller kind")
}

// Controller decides how a body begins and ends each step.
// The set of controllers is closed: Gravity, Dynamic, Static and Collided.
type Controller interface {
	Kind() ControllerKind
	// AffectedByForces returns whether the solver accumulates gravity on the body.
	AffectedByForces() bool
	// Attach makes this controller the active controller of b.
	Attach(b *Body)
	// Body returns the body this controller is attached to.
	Body() *Body
	// BeginStep resets the accumulated force and acceleration and runs the step logic.
	BeginStep(ctx *Context) error
	// EndStep moves the body. dependencyCall is set when invoked because the
	// controller this one depends on finished its own step.
	EndStep(ctx *Context, dependencyCall bool) error
	putDependent(d Controller) error
}

// controllerBase holds the dependents queue shared by all controllers.
type controllerBase struct {
	body       *Body
	dependents []Controller
	upToDate   bool
	last       Context
}

func (c *controllerBase) Body() *Body {
	return c.body
}

func (c *controllerBase) attach(self Controller, b *Body) {
	if b == nil {
		panic(fmt.Errorf("cannot attach %s controller to a nil body", self.Kind()))
	}
	c.body = b
	c.upToDate = true
	b.controller = self
}

// reset zeroes force and acceleration and clears the dependents of the previous step.
func (c *controllerBase) reset() {
	c.body.Force = Zero
	c.body.Acceleration = Zero
	c.dependents = nil
	c.upToDate = false
}

// integrate moves the body with a semi-implicit Euler step.
func (c *controllerBase) integrate(ctx *Context) error {
	b := c.body
	if !(b.Mass > 0) || !isFinite(b.Mass) {
		return fmt.Errorf("%w: %s has %g kg", ErrNonPositiveMass, b.Name, b.Mass)
	}
	b.Acceleration = b.Force.Div(b.Mass)
	b.Velocity = b.Velocity.Add(b.Acceleration.Scale(ctx.Dt))
	b.Position = b.Position.Add(b.Velocity.Scale(ctx.Dt))
	return nil
}

// putDependent registers d to be ended once this controller ended its step, or ends d
// right away if this controller is already done for this step.
func (c *controllerBase) putDependent(d Controller) error {
	if c.upToDate {
		ctx := c.last
		return d.EndStep(&ctx, true)
	}
	c.dependents = append(c.dependents, d)
	return nil
}

func (c *controllerBase) invokeDependents(ctx *Context) error {
	c.upToDate = true
	c.last = *ctx
	deps := c.dependents
	c.dependents = nil
	for _, d := range deps {
		if err := d.EndStep(ctx, true); err != nil {
			return err
		}
	}
	return nil
}

// chainLink is the begin step logic of a chained controller.
type chainLink struct {
	kind ControllerKind
	core func(ctx *Context, b *Body) error
}

// chainedBase is a controller which also runs the begin step logic of the chained
// controller it replaced.
type chainedBase struct {
	controllerBase
	chain []chainLink
}

func (c *chainedBase) links() []chainLink {
	return c.chain
}

// attachChained resolves the chain once: the links of the replaced controller, if it is
// chained, followed by own. A kind appears at most once so that events are never applied twice.
func (c *chainedBase) attachChained(self Controller, own chainLink, b *Body) {
	if b == nil {
		panic(fmt.Errorf("cannot attach %s controller to a nil body", own.kind))
	}
	c.chain = nil
	if prev, ok := b.controller.(interface{ links() []chainLink }); ok {
		for _, l := range prev.links() {
			if l.kind != own.kind {
				c.chain = append(c.chain, l)
			}
		}
	}
	c.chain = append(c.chain, own)
	c.attach(self, b)
}

// BeginStep implements the Controller interface.
func (c *chainedBase) BeginStep(ctx *Context) error {
	c.reset()
	for _, l := range c.chain {
		if err := l.core(ctx, c.body); err != nil {
			return err
		}
	}
	return nil
}

// EndStep implements the Controller interface.
func (c *chainedBase) EndStep(ctx *Context, dependencyCall bool) error {
	if err := c.integrate(ctx); err != nil {
		return err
	}
	return c.invokeDependents(ctx)
}

// AffectedByForces implements the Controller interface.
func (c *chainedBase) AffectedByForces() bool {
	return true
}

// GravityController is the default controller. Gravity itself is computed by the solver.
type GravityController struct {
	chainedBase
}

// NewGravityController returns a new gravity controller.
func NewGravityController() *GravityController {
	return &GravityController{}
}

// Kind implements the Controller interface.
func (c *GravityController) Kind() ControllerKind {
	return Gravity
}

// Attach implements the Controller interface.
func (c *GravityController) Attach(b *Body) {
	c.attachChained(c, chainLink{Gravity, func(*Context, *Body) error { return nil }}, b)
}

// DynamicController applies the control events of its body at each step.
type DynamicController struct {
	chainedBase
}

// NewDynamicController returns a new dynamic controller.
func NewDynamicController() *DynamicController {
	return &DynamicController{}
}

// Kind implements the Controller interface.
func (c *DynamicController) Kind() ControllerKind {
	return Dynamic
}

// Attach implements the Controller interface.
func (c *DynamicController) Attach(b *Body) {
	c.attachChained(c, chainLink{Dynamic, applyEvents}, b)
}

func applyEvents(ctx *Context, b *Body) error {
	for _, e := range b.events {
		if err := e.Apply(ctx, b); err != nil {
			return err
		}
	}
	return nil
}

// StaticController keeps its body in place.
type StaticController struct {
	controllerBase
}

// NewStaticController returns a new static controller.
func NewStaticController() *StaticController {
	return &StaticController{}
}

// Kind implements the Controller interface.
func (c *StaticController) Kind() ControllerKind {
	return Static
}

// AffectedByForces implements the Controller interface.
func (c *StaticController) AffectedByForces() bool {
	return false
}

// Attach implements the Controller interface.
func (c *StaticController) Attach(b *Body) {
	c.attach(c, b)
}

// BeginStep implements the Controller interface.
func (c *StaticController) BeginStep(ctx *Context) error {
	c.reset()
	return nil
}

// EndStep implements the Controller interface.
func (c *StaticController) EndStep(ctx *Context, dependencyCall bool) error {
	return c.invokeDependents(ctx)
}

// CollidedController sticks its body to the collider at a fixed relative position.
type CollidedController struct {
	controllerBase
	collider *Body
	offset   Vector
}

// NewCollidedController returns a controller which keeps its body at collider.Position+offset.
func NewCollidedController(collider *Body, offset Vector) *CollidedController {
	if collider == nil {
		panic(errors.New("collided controller requires a collider"))
	}
	return &CollidedController{collider: collider, offset: offset}
}

// Kind implements the Controller interface.
func (c *CollidedController) Kind() ControllerKind {
	return Collided
}

// Collider returns the body this controller's body is stuck to.
func (c *CollidedController) Collider() *Body {
	return c.collider
}

// Offset returns the frozen position relative to the collider.
func (c *CollidedController) Offset() Vector {
	return c.offset
}

// AffectedByForces implements the Controller interface.
func (c *CollidedController) AffectedByForces() bool {
	return false
}

// Attach implements the Controller interface.
func (c *CollidedController) Attach(b *Body) {
	if b == c.collider {
		panic(fmt.Errorf("body %s cannot collide with itself", b.Name))
	}
	c.attach(c, b)
}

// BeginStep implements the Controller interface.
func (c *CollidedController) BeginStep(ctx *Context) error {
	c.reset()
	return nil
}

// EndStep implements the Controller interface. A direct call only registers this controller
// with the collider's, so the body is moved after the collider moved.
func (c *CollidedController) EndStep(ctx *Context, dependencyCall bool) error {
	if !dependencyCall {
		return c.collider.controller.putDependent(c)
	}
	c.body.Position = c.collider.Position.Add(c.offset)
	c.body.Velocity = c.collider.Velocity
	return c.invokeDependents(ctx)
}
