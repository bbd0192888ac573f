package icon

import (
	"sync"

	"github.com/goodnatureofminers/tokenicon-backend/internal/model"
)

// LoadController is the image load state machine of one rendered icon:
// Loading moves to Loaded or Failed, both terminal until the target changes.
type LoadController struct {
	mu     sync.Mutex
	target string
	state  model.LoadState
}

func NewLoadController() *LoadController {
	return &LoadController{state: model.LoadStateLoading}
}

// Target points the controller at src. A new identity restarts the machine in
// Loading when src needs an image fetch, or in Loaded when it does not.
func (c *LoadController) Target(src model.IconSource) model.LoadState {
	c.mu.Lock()
	defer c.mu.Unlock()

	identity := src.Identity()
	if identity == c.target {
		return c.state
	}
	c.target = identity
	if src.NeedsImageFetch() {
		c.state = model.LoadStateLoading
	} else {
		c.state = model.LoadStateLoaded
	}
	return c.state
}

// OnLoaded applies a successful image load for identity. Events for another
// target or after a terminal state are ignored and return false.
func (c *LoadController) OnLoaded(identity string) bool {
	return c.transition(identity, model.LoadStateLoaded)
}

// OnError applies a failed image load for identity.
func (c *LoadController) OnError(identity string) bool {
	return c.transition(identity, model.LoadStateFailed)
}

func (c *LoadController) State() model.LoadState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *LoadController) transition(identity string, to model.LoadState) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if identity != c.target || c.state.Terminal() {
		return false
	}
	c.state = to
	return true
}
