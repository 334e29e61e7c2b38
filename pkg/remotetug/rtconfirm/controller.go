// Package rtconfirm holds at most one destructive action until the user
// confirms or dismisses it.
package rtconfirm

import "fmt"

type Kind string

const KindDelete Kind = "delete"

type Action struct {
	Kind       Kind
	TargetPath string
	TargetName string
}

// Prompt is what the user is asked before an action runs.
type Prompt struct {
	Title       string
	Description string
}

func PromptFor(action Action) Prompt {
	switch action.Kind {
	case KindDelete:
		return Prompt{
			Title:       "Confirm Delete",
			Description: fmt.Sprintf("Are you sure you want to delete %q? This action cannot be undone.", action.TargetName),
		}
	default:
		return Prompt{
			Title:       "Confirm",
			Description: fmt.Sprintf("Are you sure you want to %s %q?", action.Kind, action.TargetName),
		}
	}
}

type Option func(c *Controller)

// WithPrompt sets the callback invoked whenever a confirmation is requested.
func WithPrompt(prompt func(Prompt)) Option {
	return func(c *Controller) {
		c.prompt = prompt
	}
}

// Controller is not safe for concurrent use; it lives on the UI goroutine.
type Controller struct {
	pending *Action
	execute func(Action)
	prompt  func(Prompt)
}

// NewController creates a controller that runs execute for confirmed actions.
func NewController(execute func(Action), o ...Option) *Controller {
	c := &Controller{execute: execute}
	for _, opt := range o {
		opt(c)
	}
	return c
}

// RequestConfirmation replaces any held action with action and prompts.
func (c *Controller) RequestConfirmation(action Action) {
	held := action
	c.pending = &held
	if c.prompt != nil {
		c.prompt(PromptFor(action))
	}
}

// Confirm runs the held action once. Without one it does nothing.
func (c *Controller) Confirm() {
	if c.pending == nil {
		return
	}
	action := *c.pending
	c.pending = nil
	if c.execute != nil {
		c.execute(action)
	}
}

func (c *Controller) Cancel() {
	c.pending = nil
}

func (c *Controller) Pending() (Action, bool) {
	if c.pending == nil {
		return Action{}, false
	}
	return *c.pending, true
}

func (c *Controller) IsAwaiting() bool {
	return c.pending != nil
}
