package cmd

// Middleware wraps a command (e.g. logging, permission check, validation).
// The wrapped value remains a Command, so middlewares compose freely.
type Middleware func(Command) Command

// Apply applies middlewares in order; the last in the list ends up outermost
// and therefore runs first.
func Apply(c Command, mws ...Middleware) Command {
	for _, mw := range mws {
		c = mw(c)
	}
	return c
}
