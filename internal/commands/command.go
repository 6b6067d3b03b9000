package commands

// Command is a single named unit of collaborator work invoked from the
// menu layer.
type Command interface {
	Name() string
	Execute() error
}

type funcCommand struct {
	name string
	run  func() error
}

// NewFuncCommand wraps a closure as a Command.
func NewFuncCommand(name string, run func() error) Command {
	return &funcCommand{name: name, run: run}
}

func (c *funcCommand) Name() string {
	return c.name
}

func (c *funcCommand) Execute() error {
	if c.run == nil {
		return nil
	}
	return c.run()
}
